// Package utils provides general-purpose helpers used across the client:
// type-safe context keys, session token inspection, UUID generation, and
// HTTP client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string-based keys from other packages.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key under which the signed-in account identifier is
// stored in the context. The session service attaches it after sign-in; record
// services read it to scope every operation to the current account.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, "a2f1...")
var OwnerIDCtxKey = contextKey("ownerID")

// ContextWithOwnerID returns a child context carrying the account identifier.
func ContextWithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext retrieves the account identifier from the context.
//
// Returns the owner ID and an ok flag:
//   - ok == true: value is present and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	if ownerID == "" {
		return "", false
	}
	return ownerID, ok
}
