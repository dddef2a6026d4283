package shell

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_AuthURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth-url", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://accounts.example.com/o/oauth2/auth?prompt=consent"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", server.Client(), newDiscardLogger())

	url, err := client.AuthURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.example.com/o/oauth2/auth?prompt=consent", url)
}

func TestClient_LatestTokens(t *testing.T) {
	t.Run("before login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"refreshToken":null,"accessToken":null,"idToken":null,"expiryDate":null,"createdAt":null}`))
		}))
		defer server.Close()

		tokens, err := NewClient(server.URL, server.Client(), newDiscardLogger()).LatestTokens(context.Background())
		require.NoError(t, err)
		assert.False(t, tokens.HasAccessToken())
		assert.True(t, tokens.Expiry.IsZero())
		assert.True(t, tokens.CreatedAt.IsZero())
	})

	t.Run("after login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"refreshToken":"r1","accessToken":"a1","idToken":null,"expiryDate":1714568400000,"createdAt":1714564800123}`))
		}))
		defer server.Close()

		tokens, err := NewClient(server.URL, server.Client(), newDiscardLogger()).LatestTokens(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "a1", tokens.AccessToken)
		assert.Equal(t, "r1", tokens.RefreshToken)
		assert.Empty(t, tokens.IDToken)
		assert.True(t, tokens.Expiry.Equal(time.UnixMilli(1714568400000)))
		assert.True(t, tokens.CreatedAt.Equal(time.UnixMilli(1714564800123)))
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, server.Client(), newDiscardLogger()).LatestTokens(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "boom")
	})
}
