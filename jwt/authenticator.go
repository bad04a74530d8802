// Package jwt implements pagebrief.Authenticator with HS256 bearer tokens
// using github.com/golang-jwt/jwt/v5.
package jwt

import (
	"context"
	"time"

	"github.com/fwojciec/pagebrief"
	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest accepted HMAC secret, in bytes.
const MinSecretLength = 32

// Ensure Authenticator implements pagebrief.Authenticator at compile time.
var _ pagebrief.Authenticator = (*Authenticator)(nil)

// Authenticator validates HS256 tokens signed with a shared secret.
// Tokens must carry an expiry.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(secret []byte) (*Authenticator, error) {
	if len(secret) < MinSecretLength {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "JWT secret must be at least %d bytes", MinSecretLength)
	}
	return &Authenticator{secret: secret, now: time.Now}, nil
}

// Authenticate verifies token and returns the subject it was issued to.
func (a *Authenticator) Authenticate(_ context.Context, token string) (*pagebrief.Identity, error) {
	if token == "" {
		return nil, pagebrief.Errorf(pagebrief.EUNAUTHORIZED, "bearer token required")
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !parsed.Valid {
		return nil, pagebrief.Errorf(pagebrief.EUNAUTHORIZED, "invalid bearer token")
	}

	return &pagebrief.Identity{Subject: claims.Subject}, nil
}

// Issue signs a token for subject that expires after ttl.
func (a *Authenticator) Issue(subject string, ttl time.Duration) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}
