package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrUnknownAccount deliberately covers both absent and
	// already-verified accounts so the verification flow does not leak
	// which addresses are registered.
	ErrUnknownAccount     = errors.New("unknown account")
	ErrAccountNotVerified = errors.New("account email is not verified")
	ErrNoCodeIssued       = errors.New("no verification code issued")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrCodeMismatch       = errors.New("verification code mismatch")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenMalformed      = errors.New("token is malformed")

	ErrQueryTooShort = errors.New("search query is too short")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrUnknownBand   = errors.New("unknown rating band")
)
