// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"eventdesk/config"
	deliverycontext "eventdesk/internal/delivery/context"
	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/domain/service"
	"eventdesk/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// accessTokenExpirySkew treats an access token as expired slightly early so it does not
// lapse while a storage call is in flight.
const accessTokenExpirySkew = 30 * time.Second

// authService implements the AuthUsecase interface.
type authService struct {
	provider     service.IdentityProvider
	tokens       repository.TokenRepository
	scopes       []string
	refreshGroup singleflight.Group
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Provider service.IdentityProvider
	Tokens   repository.TokenRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	scopes := config.DefaultScopes()
	if params.Config != nil && params.Config.GoogleOAuth != nil && len(params.Config.GoogleOAuth.Scopes) > 0 {
		scopes = params.Config.GoogleOAuth.Scopes
	}

	return &authService{
		provider: params.Provider,
		tokens:   params.Tokens,
		scopes:   scopes,
		now:      time.Now,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConsentURL builds the provider consent URL for the configured scopes.
func (srv *authService) ConsentURL() string {
	return srv.provider.AuthCodeURL(srv.scopes)
}

// ExchangeCode trades an authorization code for tokens. Nothing is stored unless the
// whole exchange succeeds.
func (srv *authService) ExchangeCode(ctx context.Context, code string) (*entity.TokenSet, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("authorization code is required")
	}

	tokens, err := srv.provider.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Authorization code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrExchangeFailed.WithCause(err)
	}

	// The provider may answer without an access token; mint one from the new refresh token.
	if tokens.AccessToken == "" {
		if tokens.RefreshToken == "" {
			return nil, domainerrors.ErrExchangeFailed.WithDetails("provider returned neither an access token nor a refresh token")
		}

		refreshed, err := srv.provider.Refresh(ctx, tokens.RefreshToken)
		if err != nil {
			srv.log(ctx).Warn("Minting access token after exchange failed", slog.Any("error", err))

			return nil, domainerrors.ErrExchangeFailed.WithCause(err)
		}
		tokens.AccessToken = refreshed.AccessToken
		tokens.Expiry = refreshed.Expiry
		if tokens.IDToken == "" {
			tokens.IDToken = refreshed.IDToken
		}
	}

	previous := srv.tokens.Current(ctx)
	if !previous.CreatedAt.IsZero() {
		srv.log(ctx).Warn("Authorization code exchanged again, overwriting tokens from earlier login",
			slog.Time("previous_created_at", previous.CreatedAt),
		)
	}

	// A new login replaces the whole set so the ID token and expiry of an earlier
	// account cannot outlive it.
	tokens.CreatedAt = srv.now()
	srv.tokens.Replace(ctx, *tokens)

	srv.log(ctx).Info("Authorization code exchanged",
		slog.Bool("has_refresh_token", tokens.RefreshToken != ""),
		slog.Time("expiry", tokens.Expiry),
	)

	current := srv.tokens.Current(ctx)

	return &current, nil
}

// CurrentTokens returns the held token set.
func (srv *authService) CurrentTokens(ctx context.Context) entity.TokenSet {
	return srv.tokens.Current(ctx)
}

// AccessToken returns a usable access token, refreshing it through a single flight
// keyed by the refresh token.
func (srv *authService) AccessToken(ctx context.Context) (string, error) {
	current := srv.tokens.Current(ctx)
	if current.AccessTokenValid(srv.now(), accessTokenExpirySkew) {
		return current.AccessToken, nil
	}

	if current.RefreshToken == "" {
		return "", domainerrors.ErrNoCredentials
	}

	result, err, shared := srv.refreshGroup.Do(current.RefreshToken, func() (any, error) {
		// Another flight may have finished between the check above and this one starting.
		latest := srv.tokens.Current(ctx)
		if latest.AccessTokenValid(srv.now(), accessTokenExpirySkew) {
			return latest.AccessToken, nil
		}

		// The refresh is shared, so one caller going away must not cancel it for the rest.
		refreshed, err := srv.provider.Refresh(context.WithoutCancel(ctx), latest.RefreshToken)
		if err != nil {
			return "", domainerrors.ErrRefreshFailed.WithCause(err)
		}

		srv.tokens.Set(ctx, entity.TokenSet{
			AccessToken:  refreshed.AccessToken,
			RefreshToken: refreshed.RefreshToken,
			IDToken:      refreshed.IDToken,
			Expiry:       refreshed.Expiry,
		})
		srv.log(ctx).Info("Access token refreshed", slog.Time("expiry", refreshed.Expiry))

		return refreshed.AccessToken, nil
	})
	if err != nil {
		srv.log(ctx).Warn("Access token refresh failed", slog.Any("error", err), slog.Bool("shared", shared))

		return "", err
	}

	return result.(string), nil
}

// CurrentUser describes the signed-in user from the held ID token.
func (srv *authService) CurrentUser(ctx context.Context) (*service.OAuthUser, error) {
	idToken := srv.tokens.Current(ctx).IDToken
	if idToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.provider.ParseIDToken(idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithCause(err)
	}

	return user, nil
}
