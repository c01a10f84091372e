package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the session JWT handed out by the remote record store after
// sign-in. The client never verifies the signature itself (it does not hold
// the sign key); it only inspects claims to know who the session belongs to
// and when it expires. Verification happens server-side on every request.
type Token struct {
	// Token is the parsed JWT used for claim inspection. Excluded from JSON
	// because only the compact string form travels.
	*jwt.Token `json:"-"`

	// RegisteredClaims exposes the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature) as
	// received from the server, sent back in the Authorization header.
	SignedString string `json:"-"`

	// OwnerID is the account identifier cached from the "sub" claim.
	OwnerID string `json:"-"`
}

// GetOwnerID extracts the account identifier from the token's "sub" claim.
func (t *Token) GetOwnerID() (string, error) {
	ownerID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting owner ID from token: %w", err)
	}
	if ownerID == "" {
		return "", fmt.Errorf("token has empty subject")
	}
	return ownerID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
