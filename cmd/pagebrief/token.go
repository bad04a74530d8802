package main

import (
	"fmt"

	"github.com/fwojciec/pagebrief/jwt"
)

// Run executes the token command.
func (c *TokenCmd) Run(deps *Dependencies) error {
	issuer, ok := deps.Authenticator.(*jwt.Authenticator)
	if !ok {
		fmt.Fprintln(deps.Stderr, "Hint: set PAGEBRIEF_JWT_SECRET to a secret of at least 32 bytes")
		return fmt.Errorf("token signing requires --jwt-secret")
	}

	token, err := issuer.Issue(c.Subject, c.TTL)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	fmt.Fprintln(deps.Stdout, token)
	return nil
}
