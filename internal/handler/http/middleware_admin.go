package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/service"
	"github.com/akarpov/go-music-library/internal/utils"
)

// adminAuth is an HTTP middleware that guards administrative routes.
//
// It mirrors [Handler.auth] but validates tokens against
// [service.AdminService.ParseToken], so listener session tokens are
// rejected even when their signature is valid. On success the decoded
// admin claims are stored in the request context under
// [utils.AdminCtxKey]. On any failure the wrapped handler never runs
// and the middleware responds with HTTP 401 Unauthorized.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AdminService.ParseToken(ctx, tokenString)

		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("admin token expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing admin token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		ctx = context.WithValue(ctx, utils.AdminCtxKey, token.Admin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
