package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/akarpov/go-music-library/internal/config"
	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/store"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// codeDigits is the length of an email verification code.
const codeDigits = 6

// authService is the concrete implementation of AuthService.
// It owns the listener account lifecycle: registration, login, and the
// email-verification code flow, using an AccountRepository for
// persistence, bcrypt for password hashing, and a Notifier for
// delivering codes.
type authService struct {
	// accountRepository is the data-access layer used to create and
	// look up accounts and to drive the code lifecycle.
	accountRepository store.AccountRepository

	// notifier delivers verification codes. Delivery is best-effort:
	// a send failure is logged and swallowed, never surfaced to callers.
	notifier Notifier

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// codeTTL controls how long an issued verification code remains valid.
	codeTTL time.Duration

	// now supplies the current instant. Overridable in tests.
	now func() time.Time

	// generateCode produces a fresh verification code. Overridable in tests.
	generateCode func() string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// AccountRepository and Notifier, populated with security parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(accountRepository store.AccountRepository, notifier Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		notifier:          notifier,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		codeTTL:           cfg.CodeTTL,
		now:               time.Now,
		generateCode:      generateVerificationCode,
		logger:            logger,
	}
}

// generateVerificationCode produces a code of exactly codeDigits
// decimal digits. Each digit is drawn independently and uniformly, so
// leading zeros are as likely as any other digit and are preserved.
func generateVerificationCode() string {
	digits := make([]byte, codeDigits)
	for i := range digits {
		digits[i] = byte('0' + rand.IntN(10))
	}
	return string(digits)
}

// Register creates a new unverified account.
//
// The password is hashed with bcrypt, a verification code and its
// expiry are stored together with the account row in a single insert,
// and the code is mailed best-effort.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if email, username, or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Username == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	code := a.generateCode()
	expiresAt := a.now().Add(a.codeTTL)

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Email:            req.Email,
		Username:         req.Username,
		PasswordHash:     string(passwordHash),
		VerificationCode: &code,
		CodeExpiresAt:    &expiresAt,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	a.sendCode(ctx, account.Email, account.Username, code)

	return account, nil
}

// IssueVerification stores a fresh verification code for an unverified
// account and mails it best-effort. Re-issuing replaces any previously
// stored code and restarts its validity window.
//
// Returns ErrUnknownAccount when the account is absent or already
// verified; both cases are reported identically.
func (a *authService) IssueVerification(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			return ErrUnknownAccount
		}

		log.Err(err).Str("email", email).Msg("account lookup failed")
		return fmt.Errorf("account lookup failed: %w", err)
	}
	if account.EmailVerified {
		return ErrUnknownAccount
	}

	code := a.generateCode()
	expiresAt := a.now().Add(a.codeTTL)

	if err := a.accountRepository.SetVerificationCode(ctx, email, code, expiresAt); err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			return ErrUnknownAccount
		}

		log.Err(err).Str("email", email).Msg("storing verification code failed")
		return fmt.Errorf("storing verification code failed: %w", err)
	}

	a.sendCode(ctx, account.Email, account.Username, code)

	return nil
}

// CheckVerification validates the submitted code against the account's
// pending one and, on success, atomically marks the account verified
// and consumes the code.
//
// Failures are reported in a fixed precedence:
//  1. ErrUnknownAccount — account absent or already verified.
//  2. ErrNoCodeIssued   — no code is pending.
//  3. ErrCodeExpired    — the pending code's expiry lies strictly in
//     the past. A code checked at exactly its expiry instant is still
//     valid.
//  4. ErrCodeMismatch   — the submitted code differs from the pending one.
//
// The success path is a single conditional update that re-checks code
// and expiry, so of two concurrent checks only one can win; the loser
// observes ErrNoCodeIssued.
func (a *authService) CheckVerification(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	if email == "" || code == "" {
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			return ErrUnknownAccount
		}

		log.Err(err).Str("email", email).Msg("account lookup failed")
		return fmt.Errorf("account lookup failed: %w", err)
	}

	switch {
	case account.EmailVerified:
		return ErrUnknownAccount
	case account.VerificationCode == nil || account.CodeExpiresAt == nil:
		return ErrNoCodeIssued
	case a.now().After(*account.CodeExpiresAt):
		return ErrCodeExpired
	case *account.VerificationCode != code:
		return ErrCodeMismatch
	}

	if err := a.accountRepository.ConfirmVerification(ctx, email, code, a.now()); err != nil {
		if errors.Is(err, store.ErrNoPendingCode) {
			// a concurrent check consumed the code first
			return ErrNoCodeIssued
		}

		log.Err(err).Str("email", email).Msg("confirming verification failed")
		return fmt.Errorf("confirming verification failed: %w", err)
	}

	return nil
}

// Login authenticates a listener account.
//
// Returns the account and a signed session token or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrUnknownAccount if no account matches the email.
//   - ErrWrongPassword if the bcrypt comparison fails.
//   - ErrAccountNotVerified if the account's email is not yet verified,
//     so callers can steer the user back into the verification flow.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Account, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.Account{}, models.Token{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			return models.Account{}, models.Token{}, ErrUnknownAccount
		}

		log.Err(err).Str("email", req.Email).Msg("account lookup failed")
		return models.Account{}, models.Token{}, fmt.Errorf("account lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Error().Int64("account_id", account.AccountID).Msg("wrong password")
		return models.Account{}, models.Token{}, ErrWrongPassword
	}

	if !account.EmailVerified {
		return models.Account{}, models.Token{}, ErrAccountNotVerified
	}

	token, err := utils.GenerateUserToken(a.tokenIssuer, account, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Account{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return account, token, nil
}

// ParseToken validates and parses a raw listener session token.
//
// Expired tokens are reported as ErrTokenIsExpired; every other
// validation failure (bad signature, wrong issuer, garbage input) is
// normalised to ErrTokenMalformed.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseUserToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenMalformed
	}

	return token, nil
}

// sendCode delivers the verification code without letting a transport
// failure surface to the caller.
func (a *authService) sendCode(ctx context.Context, email, username, code string) {
	log := logger.FromContext(ctx)

	if err := a.notifier.SendVerificationCode(ctx, email, username, code); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("verification code delivery failed")
	}
}
