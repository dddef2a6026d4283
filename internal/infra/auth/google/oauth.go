// Package google implements the identity provider port against Google's OAuth2 endpoints.
package google

import (
	"context"
	"net/http"
	"time"

	"eventdesk/config"
	"eventdesk/internal/domain/entity"
	"eventdesk/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleendpoint "golang.org/x/oauth2/google"
)

const idTokenField = "id_token"

// OAuthProvider handles Google OAuth infrastructure operations
type OAuthProvider struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
	timeout     time.Duration
	issuers     []string
}

// NewOAuthProvider creates a Google identity provider from the googleOAuth configuration.
// AuthURL and TokenURL replace Google's endpoints when set.
func NewOAuthProvider(cfg *config.Config) service.IdentityProvider {
	oauthCfg := cfg.GoogleOAuth
	if oauthCfg == nil {
		oauthCfg = &config.GoogleOAuthConfig{}
	}

	endpoint := googleendpoint.Endpoint
	issuers := []string{"https://accounts.google.com", "accounts.google.com"}
	if oauthCfg.AuthURL != "" || oauthCfg.TokenURL != "" {
		if oauthCfg.AuthURL != "" {
			endpoint.AuthURL = oauthCfg.AuthURL
		}
		if oauthCfg.TokenURL != "" {
			endpoint.TokenURL = oauthCfg.TokenURL
		}
		endpoint.AuthStyle = oauth2.AuthStyleInParams
		issuers = nil
	}

	return &OAuthProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     oauthCfg.ClientID,
			ClientSecret: oauthCfg.ClientSecret,
			RedirectURL:  oauthCfg.RedirectURI,
			Scopes:       oauthCfg.Scopes,
			Endpoint:     endpoint,
		},
		httpClient: &http.Client{},
		timeout:    oauthCfg.Timeout,
		issuers:    issuers,
	}
}

// AuthCodeURL constructs the consent URL. Offline access and the consent prompt are always
// requested so a refresh token comes back even on repeat logins.
func (p *OAuthProvider) AuthCodeURL(scopes []string) string {
	conf := *p.oauthConfig
	if len(scopes) > 0 {
		conf.Scopes = scopes
	}

	return conf.AuthCodeURL("", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange exchanges an authorization code for a token set
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*entity.TokenSet, error) {
	ctx, cancel := p.withClient(ctx)
	defer cancel()

	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, providerError("exchange", err)
	}

	return toTokenSet(token), nil
}

// Refresh mints a new access token from a refresh token
func (p *OAuthProvider) Refresh(ctx context.Context, refreshToken string) (*entity.TokenSet, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token is empty")
	}

	ctx, cancel := p.withClient(ctx)
	defer cancel()

	token, err := p.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, providerError("refresh", err)
	}

	return toTokenSet(token), nil
}

// withClient bounds the provider call by the configured timeout and routes it through
// the provider's HTTP client.
func (p *OAuthProvider) withClient(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, p.timeout)
}

func toTokenSet(token *oauth2.Token) *entity.TokenSet {
	tokens := &entity.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	if idToken, ok := token.Extra(idTokenField).(string); ok {
		tokens.IDToken = idToken
	}

	return tokens
}

// providerError keeps the provider's error code and description so callers can tell a
// rejected grant from an outage.
func providerError(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		providerErr := &service.ProviderError{
			Op:          op,
			Code:        retrieveErr.ErrorCode,
			Description: retrieveErr.ErrorDescription,
			Err:         err,
		}
		if retrieveErr.Response != nil {
			providerErr.StatusCode = retrieveErr.Response.StatusCode
		}

		return providerErr
	}

	return &service.ProviderError{Op: op, Err: err}
}
