package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/service"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
)

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	admin, token, err := h.services.AdminService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnknownAccount) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no admin was found/wrong password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("admin_id", admin.AdminID).Msg("admin successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, map[string]string{
		"token": token.SignedString,
		"name":  admin.Name,
		"email": admin.Email,
	}, http.StatusOK)
}

// adminVerify reports the claims of the presented admin token. The
// admin gate has already validated the token; this handler only echoes
// what the gate stored in the context.
func (h *Handler) adminVerify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetAdminFromContext(r.Context())
	if !ok {
		log.Error().Msg("no admin claims in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"admin_id": claims.AdminID,
		"email":    claims.Email,
	}, http.StatusOK)
}
