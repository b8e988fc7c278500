package tokens

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken creates a signed HS256 JWT for the admin session.
func GenerateAccessToken(secret, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   "admin",
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(secret))
}

// Verifier validates access tokens for the HTTP middleware.
type Verifier struct {
	Secret string
}

// Verify parses and validates a raw token, returning its claims. Expiry is
// enforced by the parser.
func (v *Verifier) Verify(ctx context.Context, raw string) (map[string]interface{}, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(v.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
