package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/session"
)

// SessionStore keeps transient game sessions in game_sessions. Rows past expires_at
// read as missing and are deleted by PurgeExpired; the bet they held is forfeit.
type SessionStore struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

var _ repository.Sessions = (*SessionStore)(nil)

// NewSessionStore creates a session store whose saves live for ttl
func NewSessionStore(db *pgxpool.Pool, ttl time.Duration) *SessionStore {
	return &SessionStore{db: db, ttl: ttl}
}

// LoadSession returns the live state for key. Rows from another schema version read as missing.
func (s *SessionStore) LoadSession(ctx context.Context, key domain.SessionKey) ([]byte, bool, error) {
	var (
		state   []byte
		version string
	)
	err := s.db.QueryRow(ctx, `
		SELECT state, version FROM game_sessions
		WHERE session_key = $1 AND expires_at > NOW()
	`, key.String()).Scan(&state, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrContextLoadSession, err)
	}
	if version != session.SchemaVersion {
		return nil, false, s.ClearSession(ctx, key)
	}
	return state, true, nil
}

// SaveSession upserts state for key and pushes its expiry out by the TTL
func (s *SessionStore) SaveSession(ctx context.Context, key domain.SessionKey, state []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO game_sessions (session_key, state, version, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW() + make_interval(secs => $4), NOW())
		ON CONFLICT (session_key) DO UPDATE
		SET state = EXCLUDED.state, version = EXCLUDED.version,
		    expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`, key.String(), state, session.SchemaVersion, s.ttl.Seconds())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveSession, err)
	}
	return nil
}

// ClearSession deletes the session for key. Clearing a missing session is not an error.
func (s *SessionStore) ClearSession(ctx context.Context, key domain.SessionKey) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM game_sessions WHERE session_key = $1`, key.String()); err != nil {
		return fmt.Errorf("%s: %w", ErrContextClearSession, err)
	}
	return nil
}

// PurgeExpired deletes every session past its expiry and returns how many were removed
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM game_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextPurgeSessions, err)
	}
	if n := tag.RowsAffected(); n > 0 {
		logger.FromContext(ctx).Info(LogMsgSessionsPurged, "count", n)
	}
	return tag.RowsAffected(), nil
}
