package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-doc-vault/models"
)

// ParseSessionToken parses the compact session JWT received from the remote
// record store and extracts the owner identifier from its "sub" claim.
//
// The signature is deliberately NOT verified here: the client does not hold
// the sign key, and the server re-verifies the token on every request. The
// parsed claims are used only locally, to know whose session this is and when
// it expires.
func ParseSessionToken(tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, errors.New("empty token string")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Token{}, errors.New("invalid token claims")
	}

	parsed := models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
	}

	ownerID, err := parsed.GetOwnerID()
	if err != nil {
		return models.Token{}, err
	}
	parsed.OwnerID = ownerID

	return parsed, nil
}

// TokenExpired reports whether the session token's "exp" claim lies within
// leeway of now (or has already passed). Tokens without an expiry claim are
// treated as expired so a malformed token can never pin a session open.
func TokenExpired(token models.Token, leeway time.Duration) bool {
	expiry, err := token.GetExpirationTime()
	if err != nil || expiry == nil {
		return true
	}
	return !time.Now().Add(leeway).Before(expiry.Time)
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
