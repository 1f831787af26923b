package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the claim set embedded in administrative session
// tokens. The token is self-contained: validation relies on the
// signature and the registered expiry claim alone, with no server-side
// session state.
type AdminClaims struct {
	jwt.RegisteredClaims

	// AdminID is the numeric identifier of the admin principal.
	AdminID int64 `json:"admin_id"`

	// Email is the admin's email, carried for display and audit logging.
	Email string `json:"email"`
}

// UserClaims is the claim set embedded in listener session tokens.
type UserClaims struct {
	jwt.RegisteredClaims

	// AccountID is the numeric identifier of the account.
	AccountID int64 `json:"account_id"`

	// Email is the account email the token was issued for.
	Email string `json:"email"`
}

// Token wraps a signed JWT together with its decoded claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// Exactly one of Admin and User is set, depending on which authority
// issued or parsed the token.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Admin holds the decoded claims of an admin token.
	Admin *AdminClaims `json:"-"`

	// User holds the decoded claims of a listener token.
	User *UserClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
