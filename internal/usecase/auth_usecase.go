// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"eventdesk/internal/domain/entity"
	"eventdesk/internal/domain/service"
)

// AuthUsecase drives the OAuth2 authorization-code flow and keeps the credential
// store supplied with a usable access token.
type AuthUsecase interface {
	// ConsentURL builds the provider consent URL for the configured scopes.
	ConsentURL() string

	// ExchangeCode trades a one-time authorization code for tokens and stores them.
	// A failed exchange leaves the held tokens untouched.
	ExchangeCode(ctx context.Context, code string) (*entity.TokenSet, error)

	// CurrentTokens returns the held token set; fields are empty before login.
	CurrentTokens(ctx context.Context) entity.TokenSet

	// AccessToken returns a usable access token, refreshing it when it is missing or
	// about to expire. Concurrent callers share one refresh.
	AccessToken(ctx context.Context) (string, error)

	// CurrentUser describes the signed-in user from the held ID token.
	CurrentUser(ctx context.Context) (*service.OAuthUser, error)
}
