package pagebrief

import "context"

// Identity is the caller established by an Authenticator.
type Identity struct {
	Subject string
}

// Authenticator verifies bearer credentials on behalf of an external
// identity provider.
type Authenticator interface {
	// Authenticate returns the identity behind token.
	// Returns EUNAUTHORIZED if the token is missing or invalid.
	Authenticate(ctx context.Context, token string) (*Identity, error)
}
