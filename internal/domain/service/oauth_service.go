package service

import (
	"context"
	"fmt"

	"eventdesk/internal/domain/entity"
)

// OAuthUser represents the signed-in user as described by the provider's ID token
type OAuthUser struct {
	ID            string `json:"userId"`  // Provider-specific user ID (Google's 'sub' claim)
	Email         string `json:"email"`   // User's email address
	Name          string `json:"name"`    // User's display name
	AvatarURL     string `json:"picture"` // URL to user's profile picture
	EmailVerified bool   `json:"emailVerified"`
}

// IdentityProvider is the external OAuth2 provider that issues and renews credentials
type IdentityProvider interface {
	// AuthCodeURL builds the consent URL for the given scopes, always requesting
	// offline access and forcing the consent prompt.
	AuthCodeURL(scopes []string) string

	// Exchange converts a one-time authorization code into a token set.
	Exchange(ctx context.Context, code string) (*entity.TokenSet, error)

	// Refresh mints a new access token from a refresh token.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenSet, error)

	// ParseIDToken extracts the user described by an ID token issued to this client.
	ParseIDToken(idToken string) (*OAuthUser, error)
}

// ProviderError carries the detail an identity or storage provider reported, so callers
// can tell a rejected request (e.g. invalid_grant) from an outage.
type ProviderError struct {
	Op          string // Operation that failed, e.g. "exchange" or "refresh"
	Code        string // Provider error code, e.g. "invalid_grant"; empty for transport failures
	Description string // Provider error description
	StatusCode  int    // HTTP status returned by the provider; zero when no response arrived
	Err         error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("%s: provider rejected request: %s (%s)", e.Op, e.Code, e.Description)
	case e.Code != "":
		return fmt.Sprintf("%s: provider rejected request: %s", e.Op, e.Code)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: provider returned status %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: provider unreachable: %v", e.Op, e.Err)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Rejected reports whether the provider answered and refused the request, as opposed
// to a network failure or provider outage.
func (e *ProviderError) Rejected() bool {
	return e.Code != "" || (e.StatusCode >= 400 && e.StatusCode < 500)
}
