// Package utils provides general-purpose helper utilities used across
// different parts of the application. Includes tools for working with
// context, type-safe keys, HTTP response writing, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/akarpov/go-music-library/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated listener's
// account identifier in the context. Set by the user-auth middleware,
// read back with GetAccountIDFromContext.
var AccountIDCtxKey = contextKey("accountID")

// AdminCtxKey is the key used to store the authenticated admin's token
// claims in the context. Set by the admin-auth middleware, read back
// with GetAdminFromContext.
var AdminCtxKey = contextKey("admin")

// GetAccountIDFromContext retrieves the listener account identifier
// from the context.
//
// Returns the account ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetAdminFromContext retrieves the admin claims from the context.
func GetAdminFromContext(ctx context.Context) (*models.AdminClaims, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(*models.AdminClaims)
	if !ok || admin == nil {
		return nil, false
	}
	return admin, true
}
