package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akarpov/go-music-library/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdminToken creates a signed HMAC-SHA256 session token for an
// administrator.
//
// The token carries the standard registered claims plus the admin's
// numeric ID and email:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the admin ID encoded as a string
//   - IssuedAt  (iat): the issue instant
//   - ExpiresAt (exp): the issue instant plus tokenDuration
//
// All parameters are required. Returns an error if any of them are
// empty or zero.
func GenerateAdminToken(issuer string, admin models.Admin, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(admin.AdminID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AdminID: admin.AdminID,
		Email:   admin.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Admin: claims}, nil
}

// ValidateAndParseAdminToken validates an admin session token string
// and extracts its claims.
//
// Validation covers the HMAC-SHA256 signature, the issuer claim, and
// the expiry claim. Expiry failures keep [jwt.ErrTokenExpired] in the
// error chain so callers can tell an expired token from a malformed or
// forged one with errors.Is.
func ValidateAndParseAdminToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.AdminClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.AdminID == 0 {
		return models.Token{}, errors.New("missing admin_id claim")
	}

	return models.Token{SignedString: tokenString, Admin: claims}, nil
}

// GenerateUserToken creates a signed HMAC-SHA256 session token for a
// listener account. Claims mirror [GenerateAdminToken] with the
// account ID in place of the admin ID.
func GenerateUserToken(issuer string, account models.Account, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(account.AccountID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AccountID: account.AccountID,
		Email:     account.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, User: claims}, nil
}

// ValidateAndParseUserToken validates a listener session token string
// and extracts its claims. See [ValidateAndParseAdminToken] for the
// validation rules.
func ValidateAndParseUserToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.UserClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.AccountID == 0 {
		return models.Token{}, errors.New("missing account_id claim")
	}

	return models.Token{SignedString: tokenString, User: claims}, nil
}

// ParseBearerToken extracts the raw token from an
// "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
