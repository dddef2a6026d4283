package shell

import (
	"context"
	"log/slog"
	"time"

	"eventdesk/internal/domain/entity"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

// DefaultPollInterval is how often WatchTokens asks the server for tokens.
const DefaultPollInterval = time.Second

// Opener opens a URL outside the application, normally in the default browser.
type Opener func(url string) error

// TokenSource is the part of the server the shell talks to.
type TokenSource interface {
	AuthURL(ctx context.Context) (string, error)
	LatestTokens(ctx context.Context) (entity.TokenSet, error)
}

// Shell exposes the two operations the desktop UI needs: request login and watch for
// tokens.
type Shell struct {
	server   TokenSource
	open     Opener
	interval time.Duration
	logger   *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithOpener replaces the browser launcher.
func WithOpener(open Opener) Option {
	return func(s *Shell) {
		s.open = open
	}
}

// WithPollInterval changes how often WatchTokens polls.
func WithPollInterval(interval time.Duration) Option {
	return func(s *Shell) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// New creates a Shell talking to server.
func New(server TokenSource, logger *slog.Logger, opts ...Option) *Shell {
	s := &Shell{
		server:   server,
		open:     browser.OpenURL,
		interval: DefaultPollInterval,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RequestLogin fetches the consent URL and opens it in the external browser. The URL
// is returned so the caller can show it when no browser could be opened.
func (s *Shell) RequestLogin(ctx context.Context) (string, error) {
	url, err := s.server.AuthURL(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get consent URL")
	}

	s.logger.Info("Opening consent page in browser", slog.String("url", url))
	if err := s.open(url); err != nil {
		return url, errors.Wrap(err, "failed to open browser")
	}

	return url, nil
}

// WatchTokens polls the server until it holds an access token, hands that token set to
// onToken exactly once and returns. Poll failures are logged and the next tick retries.
// Cancelling ctx stops the watch with ctx's error.
func (s *Shell) WatchTokens(ctx context.Context, onToken func(entity.TokenSet)) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		tokens, err := s.server.LatestTokens(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("Polling for tokens failed", slog.Any("error", err))

			continue
		}

		if tokens.HasAccessToken() {
			s.logger.Info("Access token available", slog.Time("expiry", tokens.Expiry))
			onToken(tokens)

			return nil
		}
	}
}
