package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/Casino_Go/internal/domain"
)

// querier is the statement surface shared by *pgxpool.Pool and pgx.Tx,
// so every query helper runs unchanged inside or outside a transaction
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// parseUserUUID parses a user ID. A malformed ID can never match a row,
// so it reports ErrUserNotFound rather than a syntax error.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	return hasCode(err, pgCodeUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, pgCodeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// notFound maps pgx.ErrNoRows onto ErrUserNotFound and wraps anything else as a database error
func notFound(err error, userID, ctxMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return fmt.Errorf("%s: %w", ctxMsg, errors.Join(domain.ErrDatabaseError, err))
}
