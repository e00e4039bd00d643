package static_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/blueputty01/swiftnotes/pkg/auth"
	"github.com/blueputty01/swiftnotes/pkg/auth/static"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	p, err := static.New("tablet", "secret")
	require.NoError(t, err)

	tests := map[string]bool{
		"":              false,
		"secret":        false,
		"Basic secret":  false,
		"Bearer wrong":  false,
		"Bearer secret": true,
	}

	for header, valid := range tests {
		r := httptest.NewRequest("POST", "/v1/export", nil)

		if header != "" {
			r.Header.Set("Authorization", header)
		}

		ctx, err := p.Authenticate(context.Background(), r)

		if !valid {
			require.ErrorIs(t, err, auth.ErrUnauthorized, header)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, "tablet", ctx.Value(auth.UserContextKey))
	}
}

func TestAuthenticateOpen(t *testing.T) {
	p, err := static.New("", "")
	require.NoError(t, err)

	_, err = p.Authenticate(context.Background(), httptest.NewRequest("POST", "/v1/export", nil))
	require.NoError(t, err)
}
