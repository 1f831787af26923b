package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/go-music-library/internal/config"
	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/store"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// adminService is the concrete implementation of AdminService.
// Admin sessions are self-contained signed tokens; no server-side
// session state exists and issued tokens cannot be revoked before
// their expiry.
type adminService struct {
	adminRepository store.AdminRepository

	// tokenSignKey is the HMAC secret used to sign and verify admin tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAdminService constructs an AdminService wired to the given
// AdminRepository and populated with security parameters from cfg.
func NewAdminService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login authenticates an administrator and issues a signed session
// token embedding the admin's ID and email.
//
// Returns the admin record and the token or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrUnknownAccount if no admin matches the email.
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *adminService) Login(ctx context.Context, req models.LoginRequest) (models.Admin, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid admin login data provided")
		return models.Admin{}, models.Token{}, ErrInvalidDataProvided
	}

	admin, err := a.adminRepository.FindAdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoAdminFound) {
			return models.Admin{}, models.Token{}, ErrUnknownAccount
		}

		log.Err(err).Str("email", req.Email).Msg("admin lookup failed")
		return models.Admin{}, models.Token{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		log.Error().Int64("admin_id", admin.AdminID).Msg("wrong admin password")
		return models.Admin{}, models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateAdminToken(a.tokenIssuer, admin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Admin{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return admin, token, nil
}

// ParseToken validates and parses a raw admin session token.
//
// An expired token maps to ErrTokenIsExpired; any other failure (bad
// signature, wrong issuer, missing claims, garbage input) maps to
// ErrTokenMalformed. The two stay distinct so the transport layer can
// tell the caller whether to re-authenticate or to fix the request.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseAdminToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenMalformed
	}

	return token, nil
}
