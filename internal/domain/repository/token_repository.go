// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"eventdesk/internal/domain/entity"
)

// TokenRepository is the process-wide credential store holding the current token set.
type TokenRepository interface {
	// Current returns whatever is held; fields are empty before the first login.
	Current(ctx context.Context) entity.TokenSet

	// Set merges the non-empty fields of tokens over the held set.
	Set(ctx context.Context, tokens entity.TokenSet)

	// Replace swaps in tokens as the whole held set. An empty refresh token keeps the
	// held one.
	Replace(ctx context.Context, tokens entity.TokenSet)
}
