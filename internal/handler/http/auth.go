package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/service"
	"github.com/akarpov/go-music-library/internal/store"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("account_id", account.AccountID).Msg("account registered")

	utils.WriteJSON(w, map[string]string{
		"message": "registered, verification code sent",
		"email":   account.Email,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnknownAccount) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no account was found/wrong password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrAccountNotVerified):
			// steer the client back into the verification flow
			log.Err(err).Msg("account needs email verification")
			utils.WriteJSON(w, map[string]any{
				"error":              "email not verified",
				"needs_verification": true,
			}, http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("account_id", account.AccountID).Msg("account successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, map[string]string{
		"token":    token.SignedString,
		"username": account.Username,
		"email":    account.Email,
	}, http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.CheckVerification(ctx, req.Email, req.Code); err != nil {
		log.Err(err).Str("email", req.Email).Msg("email verification failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "email verified successfully"}, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.IssueVerification(ctx, req.Email); err != nil {
		log.Err(err).Str("email", req.Email).Msg("issuing verification code failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "verification code sent"}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status":  "ok",
		"version": h.version,
	}, http.StatusOK)
}
