// Package shell is the desktop side of the login flow: it asks the server for a consent
// URL, opens it in the user's browser and waits for the server to hold tokens.
package shell

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventdesk/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	authURLPath      = "/auth-url"
	latestTokensPath = "/get-latest-tokens"

	// maxErrorBody bounds how much of a failed response is kept for the error message.
	maxErrorBody = 4 << 10
)

// Client calls the eventdesk server on behalf of the shell.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type authURLResponse struct {
	URL string `json:"url"`
}

type tokensResponse struct {
	RefreshToken *string `json:"refreshToken"`
	AccessToken  *string `json:"accessToken"`
	IDToken      *string `json:"idToken"`
	ExpiryDate   *int64  `json:"expiryDate"`
	CreatedAt    *int64  `json:"createdAt"`
}

// AuthURL asks the server for the provider consent URL.
func (c *Client) AuthURL(ctx context.Context) (string, error) {
	var resp authURLResponse
	if err := c.getJSON(ctx, authURLPath, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", errors.New("server returned an empty consent URL")
	}

	return resp.URL, nil
}

// LatestTokens fetches the token set the server currently holds. Fields the server
// reports as null come back empty.
func (c *Client) LatestTokens(ctx context.Context) (entity.TokenSet, error) {
	var resp tokensResponse
	if err := c.getJSON(ctx, latestTokensPath, &resp); err != nil {
		return entity.TokenSet{}, err
	}

	tokens := entity.TokenSet{
		AccessToken:  deref(resp.AccessToken),
		RefreshToken: deref(resp.RefreshToken),
		IDToken:      deref(resp.IDToken),
	}
	if resp.ExpiryDate != nil {
		tokens.Expiry = time.UnixMilli(*resp.ExpiryDate)
	}
	if resp.CreatedAt != nil {
		tokens.CreatedAt = time.UnixMilli(*resp.CreatedAt)
	}

	return tokens, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("GET %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", path)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
