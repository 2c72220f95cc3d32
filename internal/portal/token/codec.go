// Package token decodes the gateway-issued bearer token into typed claims.
//
// The codec reads the payload segment only and performs no signature
// verification: issuing and verifying tokens is the gateway's job, and the
// client reads claims solely to drive screen routing. The gateway
// re-authorizes every request independently of anything decoded here.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when a token is not a well-formed compact JWT or
// its payload segment is not valid JSON. Callers must treat it as "no valid
// session" and discard any persisted copy of the token.
var ErrMalformed = errors.New("malformed token")

// Claims is the set of fields the portal reads from a decoded token.
//
// The subject claim is the fallback user id when the profile response did
// not supply one. ExpiresAt is surfaced but deliberately never checked:
// an expired-but-well-formed token stays in effect until the gateway
// rejects a request carrying it.
type Claims struct {
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CollegeName string `json:"collegeName,omitempty"`
	Department  string `json:"department,omitempty"`
	jwt.RegisteredClaims
}

// Decode parses the payload of a three-segment compact token without
// verifying the signature.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return claims, nil
}
