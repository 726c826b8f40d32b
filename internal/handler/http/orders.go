package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	orderCreatedMessage = "Order created successfully"
	orderUpdatedMessage = "Order updated successfully"
	orderDeletedMessage = "Order deleted successfully"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input models.OrderInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	created, err := h.services.OrderService.CreateOrder(r.Context(), input)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	logWrite(r, "order created", created.ID.String())
	writeJSON(w, r, models.MessageEnvelope{Message: orderCreatedMessage, Data: created}, http.StatusCreated)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	page := paginationFromRequest(r)

	orders, total, err := h.services.OrderService.ListOrders(r.Context(), page)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, models.ListEnvelope{Data: orders, Meta: page.Meta(total)}, http.StatusOK)
}

// getOrder writes the order itself, without the data envelope.
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.services.OrderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, order, http.StatusOK)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var update models.OrderUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := h.services.OrderService.UpdateOrder(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	logWrite(r, "order updated", id)

	writeJSON(w, r, models.MessageEnvelope{Message: orderUpdatedMessage, Data: updated}, http.StatusOK)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.OrderService.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	logWrite(r, "order deleted", id)

	writeJSON(w, r, models.MessageEnvelope{Message: orderDeletedMessage}, http.StatusOK)
}
