// Package token issues and verifies the bearer tokens used by the API.
// Verification is stateless: integrity and expiry come from the HS256
// signature alone, never from a store lookup.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification:
// malformed, expired, wrong signing method, bad signature, or missing the
// tenant claim. Callers must not distinguish between these cases.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by a bearer token. TenantID is the one
// claim required downstream.
type Claims struct {
	jwt.RegisteredClaims
	TenantID string `json:"tenant_id"`
}

// Verifier validates bearer tokens against a shared HMAC secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a bearer token string and returns its claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if strings.TrimSpace(claims.TenantID) == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Issuer signs tenant-scoped bearer tokens with the same shared secret.
// Used by cmd/mktoken and by tests; the service itself never issues tokens.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue signs a token carrying the given tenant identity, valid for ttl.
func (i *Issuer) Issue(tenantID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TenantID: tenantID,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}
