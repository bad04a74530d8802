package mock

import (
	"context"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.Authenticator = (*Authenticator)(nil)

// Authenticator is a mock implementation of pagebrief.Authenticator.
type Authenticator struct {
	AuthenticateFn func(ctx context.Context, token string) (*pagebrief.Identity, error)
}

func (a *Authenticator) Authenticate(ctx context.Context, token string) (*pagebrief.Identity, error) {
	return a.AuthenticateFn(ctx, token)
}
