// Package memory contains process-lifetime implementations of the persistence layer.
package memory

import (
	"context"
	"sync"

	"eventdesk/config"
	"eventdesk/internal/domain/entity"
	"eventdesk/internal/domain/repository"
)

// tokenStore implements the repository.TokenRepository interface.
type tokenStore struct {
	mu     sync.RWMutex
	tokens entity.TokenSet
}

// NewTokenStore is the constructor for tokenStore. A refresh token configured under
// googleOAuth.refreshToken seeds the store so the interactive login can be skipped.
func NewTokenStore(cfg *config.Config) repository.TokenRepository {
	store := &tokenStore{}
	if cfg != nil && cfg.GoogleOAuth != nil && cfg.GoogleOAuth.RefreshToken != "" {
		store.tokens.RefreshToken = cfg.GoogleOAuth.RefreshToken
	}

	return store
}

// Current returns a copy of the held token set.
func (s *tokenStore) Current(_ context.Context) entity.TokenSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens
}

// Set merges the non-empty fields of tokens over the held set.
func (s *tokenStore) Set(_ context.Context, tokens entity.TokenSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = s.tokens.Merge(tokens)
}

// Replace swaps in a new token set, carrying the held refresh token over when tokens
// has none.
func (s *tokenStore) Replace(_ context.Context, tokens entity.TokenSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tokens.RefreshToken == "" {
		tokens.RefreshToken = s.tokens.RefreshToken
	}
	s.tokens = tokens
}
