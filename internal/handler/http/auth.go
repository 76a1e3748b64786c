package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", resp.ID).Str("username", resp.Username).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.AuthService.Me(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
