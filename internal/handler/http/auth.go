package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Stringer("id", registeredUser.ID).Msg("user registered")

	writeJSON(w, r, models.DataEnvelope{Data: models.UserInfo{
		ID:    registeredUser.ID,
		Email: registeredUser.Email,
	}}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Debug().Stringer("id", foundUser.ID).Msg("user successfully logged in")

	writeJSON(w, r, models.DataEnvelope{Data: models.LoginResult{
		Token: token.String(),
		User: models.UserInfo{
			ID:    foundUser.ID,
			Email: foundUser.Email,
		},
	}}, http.StatusOK)
}
