// Package authtoken validates identity-provider session tokens.
//
// Sessions are HS256 JWTs signed with a secret shared with the auth
// provider. The server only checks signature and expiry; the claims are
// otherwise treated as an already-validated credential.
package authtoken

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken indicates a malformed, unsigned, or tampered token.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrExpiredToken indicates an expired session token.
	ErrExpiredToken = errors.New("session token has expired")
)

// Claims are the session claims issued by the identity provider.
type Claims struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Picture       string `json:"picture"`
	EmailVerified *bool  `json:"email_verified,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the authenticated user extracted from a session token.
type Identity struct {
	ID            string
	Name          string
	Email         string
	Image         string
	EmailVerified *bool
}

// Validator validates session tokens.
type Validator struct {
	secret []byte
}

// NewValidator creates a validator using the shared provider secret.
func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

// Validate parses a session token and returns the identity it carries.
func (v *Validator) Validate(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{
		ID:            claims.Subject,
		Name:          claims.Name,
		Email:         claims.Email,
		Image:         claims.Picture,
		EmailVerified: claims.EmailVerified,
	}, nil
}
