package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/go-chi/chi/v5"
)

const customerDeletedMessage = "Customer deleted successfully"

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := decodeJSON(r, &customer); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	created, err := h.services.CustomerService.CreateCustomer(r.Context(), customer)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	logWrite(r, "customer created", created.ID.String())
	writeJSON(w, r, models.DataEnvelope{Data: created}, http.StatusCreated)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	page := paginationFromRequest(r)

	customers, total, err := h.services.CustomerService.ListCustomers(r.Context(), page)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, models.ListEnvelope{Data: customers, Meta: page.Meta(total)}, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.services.CustomerService.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, r, models.DataEnvelope{Data: customer}, http.StatusOK)
}

// updateCustomer answers {"data": null} when no customer has the id.
func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var update models.CustomerUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := h.services.CustomerService.UpdateCustomer(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	if updated != nil {
		logWrite(r, "customer updated", id)
	}

	writeJSON(w, r, models.DataEnvelope{Data: updated}, http.StatusOK)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	logWrite(r, "customer deleted", id)

	writeJSON(w, r, models.DataEnvelope{Data: customerDeletedMessage}, http.StatusOK)
}

func paginationFromRequest(r *http.Request) models.Pagination {
	query := r.URL.Query()
	return models.NewPagination(query.Get("page"), query.Get("pageSize"))
}
