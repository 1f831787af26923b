package models

import "time"

// Account represents a listener account used for authentication and
// review submission. Sensitive fields must never be exposed outside
// trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	AccountID int64 `json:"-"`

	// Email is the unique account identifier used during authentication
	// and verification.
	Email string `json:"email"`

	// Username is the display name shown next to comments.
	Username string `json:"username"`

	// PasswordHash stores the one-way hash of the account password.
	// This value MUST be a bcrypt digest, never plaintext.
	PasswordHash string `json:"-"`

	// EmailVerified reports whether the account completed email
	// verification. Unverified accounts cannot log in.
	EmailVerified bool `json:"email_verified"`

	// VerificationCode is the pending six-digit verification code, if any.
	// Invariant: VerificationCode and CodeExpiresAt are either both set
	// or both null; once EmailVerified is true, both are null.
	VerificationCode *string `json:"-"`

	// CodeExpiresAt is the absolute expiry instant of VerificationCode.
	CodeExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// RegisterRequest is the inbound payload for account registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the inbound payload for account login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest is the inbound payload for email verification:
// the (email, code) pair presented by the user.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
