package simpletex_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blueputty01/swiftnotes/pkg/formula"
	"github.com/blueputty01/swiftnotes/pkg/formula/simpletex"

	"github.com/stretchr/testify/require"
)

type capture struct {
	token       string
	fields      []string
	filename    string
	contentType string
	content     []byte
}

func newServer(t *testing.T, status int, body string, c *capture) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.token = r.Header.Get("token")

		reader, err := r.MultipartReader()

		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		for {
			part, err := reader.NextPart()

			if err != nil {
				break
			}

			c.fields = append(c.fields, part.FormName())
			c.filename = part.FileName()
			c.contentType = part.Header.Get("Content-Type")
			c.content, _ = io.ReadAll(part)
		}

		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
}

func TestRecognize(t *testing.T) {
	var c capture

	server := newServer(t, http.StatusOK, `{"status":true,"res":{"latex":"x^2","conf":0.9},"request_id":"abc"}`, &c)
	defer server.Close()

	client, err := simpletex.New(server.URL, simpletex.WithToken("secret"), simpletex.WithClient(server.Client()))
	require.NoError(t, err)

	result, err := client.Recognize(context.Background(), formula.File{Content: []byte("jpeg")}, nil)
	require.NoError(t, err)
	require.Equal(t, "x^2", result.LaTeX)

	require.Equal(t, "secret", c.token)
	require.Equal(t, []string{"file"}, c.fields)
	require.True(t, strings.HasSuffix(c.filename, ".jpg"))
	require.Equal(t, "image/jpeg", c.contentType)
	require.Equal(t, []byte("jpeg"), c.content)
}

func TestRecognizeWithoutToken(t *testing.T) {
	var c capture

	server := newServer(t, http.StatusOK, `{"res":{"latex":"a+b"}}`, &c)
	defer server.Close()

	client, err := simpletex.New(server.URL, simpletex.WithClient(server.Client()))
	require.NoError(t, err)

	result, err := client.Recognize(context.Background(), formula.File{Name: "image.jpg", Content: []byte("jpeg")}, nil)
	require.NoError(t, err)
	require.Equal(t, "a+b", result.LaTeX)
	require.Empty(t, c.token)
	require.Equal(t, "image.jpg", c.filename)
}

func TestRecognizeMalformed(t *testing.T) {
	for _, body := range []string{
		`not json`,
		`{"latex":"x^2"}`,
		`{"res":"x^2"}`,
	} {
		var c capture

		server := newServer(t, http.StatusOK, body, &c)

		client, err := simpletex.New(server.URL, simpletex.WithClient(server.Client()))
		require.NoError(t, err)

		_, err = client.Recognize(context.Background(), formula.File{Content: []byte("jpeg")}, nil)
		require.ErrorIs(t, err, formula.ErrMalformedResponse, body)

		server.Close()
	}
}

func TestRecognizeStatusError(t *testing.T) {
	var c capture

	server := newServer(t, http.StatusUnauthorized, `invalid token`, &c)
	defer server.Close()

	client, err := simpletex.New(server.URL, simpletex.WithClient(server.Client()))
	require.NoError(t, err)

	_, err = client.Recognize(context.Background(), formula.File{Content: []byte("jpeg")}, nil)
	require.EqualError(t, err, "invalid token")
}
