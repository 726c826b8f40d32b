package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	writeJSON(w, r, models.DataEnvelope{Data: models.AppInfo{Version: serverVersion}}, http.StatusOK)
}

func (h *Handler) checkHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		writeError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, r, models.DataEnvelope{Data: "ok"}, http.StatusOK)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errMethodNotAllowed, http.StatusMethodNotAllowed)
}
