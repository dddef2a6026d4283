package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"eventdesk/config"
	"eventdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(tokenURL string) *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_secret",
			RedirectURI:  "http://localhost:8080/oauth2callback",
			Scopes:       config.DefaultScopes(),
			TokenURL:     tokenURL,
			Timeout:      5 * time.Second,
		},
	}
}

// newTokenServer fakes the provider's token endpoint.
func newTokenServer(t *testing.T, handle func(form url.Values) (int, map[string]any)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		status, body := handle(r.PostForm)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestOAuthProvider_AuthCodeURL(t *testing.T) {
	provider := NewOAuthProvider(newTestConfig(""))

	tests := []struct {
		name   string
		scopes []string
		want   string
	}{
		{
			name:   "configured scopes",
			scopes: nil,
			want:   "https://www.googleapis.com/auth/userinfo.email https://www.googleapis.com/auth/userinfo.profile https://www.googleapis.com/auth/drive.file",
		},
		{
			name:   "explicit scopes keep their order",
			scopes: []string{"profile", "email"},
			want:   "profile email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := provider.AuthCodeURL(tt.scopes)

			parsed, err := url.Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, "accounts.google.com", parsed.Host)

			query := parsed.Query()
			assert.Equal(t, "offline", query.Get("access_type"))
			assert.Equal(t, "consent", query.Get("prompt"))
			assert.Equal(t, "code", query.Get("response_type"))
			assert.Equal(t, "test_client_id", query.Get("client_id"))
			assert.Equal(t, "http://localhost:8080/oauth2callback", query.Get("redirect_uri"))
			assert.Equal(t, tt.want, query.Get("scope"))

			// Deterministic for a given configuration.
			assert.Equal(t, raw, provider.AuthCodeURL(tt.scopes))
		})
	}
}

func TestOAuthProvider_Exchange(t *testing.T) {
	server := newTokenServer(t, func(form url.Values) (int, map[string]any) {
		assert.Equal(t, "authorization_code", form.Get("grant_type"))
		assert.Equal(t, "validcode", form.Get("code"))
		assert.Equal(t, "test_client_id", form.Get("client_id"))
		assert.Equal(t, "test_secret", form.Get("client_secret"))

		return http.StatusOK, map[string]any{
			"access_token":  "a1",
			"refresh_token": "r1",
			"id_token":      "header.payload.signature",
			"token_type":    "Bearer",
			"expires_in":    3600,
		}
	})
	provider := NewOAuthProvider(newTestConfig(server.URL))

	before := time.Now()
	tokens, err := provider.Exchange(context.Background(), "validcode")
	require.NoError(t, err)
	assert.Equal(t, "a1", tokens.AccessToken)
	assert.Equal(t, "r1", tokens.RefreshToken)
	assert.Equal(t, "header.payload.signature", tokens.IDToken)
	assert.WithinDuration(t, before.Add(time.Hour), tokens.Expiry, 5*time.Second)
}

func TestOAuthProvider_Exchange_InvalidGrant(t *testing.T) {
	server := newTokenServer(t, func(url.Values) (int, map[string]any) {
		return http.StatusBadRequest, map[string]any{
			"error":             "invalid_grant",
			"error_description": "Malformed auth code.",
		}
	})
	provider := NewOAuthProvider(newTestConfig(server.URL))

	tokens, err := provider.Exchange(context.Background(), "badcode")
	require.Error(t, err)
	assert.Nil(t, tokens)

	var providerErr *service.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "exchange", providerErr.Op)
	assert.Equal(t, "invalid_grant", providerErr.Code)
	assert.Equal(t, "Malformed auth code.", providerErr.Description)
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
	assert.True(t, providerErr.Rejected())
}

func TestOAuthProvider_Exchange_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	tokenURL := server.URL
	server.Close()

	provider := NewOAuthProvider(newTestConfig(tokenURL))

	_, err := provider.Exchange(context.Background(), "validcode")
	require.Error(t, err)

	var providerErr *service.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Empty(t, providerErr.Code)
	assert.False(t, providerErr.Rejected())
}

func TestOAuthProvider_Refresh(t *testing.T) {
	server := newTokenServer(t, func(form url.Values) (int, map[string]any) {
		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "r1", form.Get("refresh_token"))

		return http.StatusOK, map[string]any{
			"access_token": "a2",
			"token_type":   "Bearer",
			"expires_in":   3600,
		}
	})
	provider := NewOAuthProvider(newTestConfig(server.URL))

	tokens, err := provider.Refresh(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "a2", tokens.AccessToken)
	assert.Equal(t, "r1", tokens.RefreshToken)
}

func TestOAuthProvider_Refresh_EmptyToken(t *testing.T) {
	provider := NewOAuthProvider(newTestConfig(""))

	_, err := provider.Refresh(context.Background(), "")
	assert.Error(t, err)
}

func signIDToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return signed
}

func TestOAuthProvider_ParseIDToken(t *testing.T) {
	provider := NewOAuthProvider(newTestConfig(""))

	tests := []struct {
		name    string
		claims  IDTokenClaims
		wantErr bool
	}{
		{
			name: "valid google token",
			claims: IDTokenClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:   "https://accounts.google.com",
					Subject:  "1234567890",
					Audience: jwt.ClaimStrings{"test_client_id"},
				},
				Email:         "user@example.com",
				EmailVerified: true,
				Name:          "Test User",
				Picture:       "https://example.com/avatar.png",
			},
		},
		{
			name: "wrong audience",
			claims: IDTokenClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:   "https://accounts.google.com",
					Subject:  "1234567890",
					Audience: jwt.ClaimStrings{"someone_else"},
				},
			},
			wantErr: true,
		},
		{
			name: "wrong issuer",
			claims: IDTokenClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:   "https://evil.example.com",
					Subject:  "1234567890",
					Audience: jwt.ClaimStrings{"test_client_id"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := provider.ParseIDToken(signIDToken(t, tt.claims))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "1234567890", user.ID)
			assert.Equal(t, "user@example.com", user.Email)
			assert.Equal(t, "Test User", user.Name)
			assert.Equal(t, "https://example.com/avatar.png", user.AvatarURL)
			assert.True(t, user.EmailVerified)
		})
	}
}

func TestOAuthProvider_ParseIDToken_Malformed(t *testing.T) {
	provider := NewOAuthProvider(newTestConfig(""))

	_, err := provider.ParseIDToken("not-a-jwt")
	assert.Error(t, err)

	_, err = provider.ParseIDToken("")
	assert.Error(t, err)
}
