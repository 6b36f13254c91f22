package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Load fetches and decodes the session stored under key.
// A missing session is reported as domain.ErrNoActiveSession.
func Load[T any](ctx context.Context, store repository.Sessions, key domain.SessionKey) (*T, error) {
	raw, found, err := store.LoadSession(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s session: %w", key.GameType, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoActiveSession, key.GameType)
	}

	var state T
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode %s session: %w", key.GameType, err)
	}
	return &state, nil
}

// Save encodes state and stores it under key
func Save[T any](ctx context.Context, store repository.Sessions, key domain.SessionKey, state *T) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode %s session: %w", key.GameType, err)
	}
	if err := store.SaveSession(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s session: %w", key.GameType, err)
	}
	return nil
}
