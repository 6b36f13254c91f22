package repository

import (
	"context"

	"github.com/osse101/Casino_Go/internal/domain"
)

// Sessions defines the interface for transient game session storage.
// State is opaque serialized bytes; a missing or expired session loads as found=false.
type Sessions interface {
	LoadSession(ctx context.Context, key domain.SessionKey) (state []byte, found bool, err error)
	SaveSession(ctx context.Context, key domain.SessionKey, state []byte) error
	ClearSession(ctx context.Context, key domain.SessionKey) error
}
