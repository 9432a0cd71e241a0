package service

import "context"

// TokenProvider supplies the current bearer credential for remote calls.
// Credential lifecycle (login, refresh, storage) belongs to the external
// identity service; consumers only ever ask for the current token.
type TokenProvider interface {
	// Token returns the bearer token to attach to the next request.
	Token(ctx context.Context) (string, error)
}
