package static

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/blueputty01/swiftnotes/pkg/auth"
)

var _ auth.Provider = &Provider{}

type Provider struct {
	name  string
	token string
}

// New accepts requests carrying token as bearer credential and attributes
// them to name. An empty token accepts every request.
func New(name, token string) (*Provider, error) {
	if name == "" {
		name = "default"
	}

	return &Provider{
		name:  name,
		token: token,
	}, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	if p.token == "" {
		return ctx, nil
	}

	header := r.Header.Get("Authorization")

	if header == "" {
		return ctx, errors.Join(auth.ErrUnauthorized, errors.New("missing authorization header"))
	}

	token, ok := strings.CutPrefix(header, "Bearer ")

	if !ok {
		return ctx, errors.Join(auth.ErrUnauthorized, errors.New("invalid authorization header"))
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(p.token)) != 1 {
		return ctx, errors.Join(auth.ErrUnauthorized, errors.New("invalid token"))
	}

	ctx = context.WithValue(ctx, auth.UserContextKey, p.name)

	return ctx, nil
}
