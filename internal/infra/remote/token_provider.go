package remote

import (
	"context"

	"homiio/config"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/service"
)

// staticTokenProvider serves a fixed bearer token from configuration.
// Refresh flows belong to the external identity service; a deployment that
// rotates tokens swaps in a different TokenProvider.
type staticTokenProvider struct {
	token string
}

// NewStaticTokenProvider is the constructor for staticTokenProvider.
func NewStaticTokenProvider(cfg *config.Config) service.TokenProvider {
	var token string
	if cfg.SavedAPI != nil {
		token = cfg.SavedAPI.Token
	}

	return &staticTokenProvider{token: token}
}

func (p *staticTokenProvider) Token(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", domainerrors.ErrAuthenticationRequired.WithDetails("no bearer token configured")
	}

	return p.token, nil
}
