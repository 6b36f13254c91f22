package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Casino_Go/internal/domain"
)

func (s *Store) AppendHistory(ctx context.Context, record *domain.GameHistory) error {
	return appendHistory(ctx, s.db, record)
}

// QueryHistory returns matching records ordered by creation time; insertion order breaks ties
func (s *Store) QueryHistory(ctx context.Context, filter domain.HistoryFilter, order domain.SortOrder, limit int) ([]domain.GameHistory, error) {
	var (
		where []string
		args  []any
	)
	if filter.UserID != "" {
		id, err := parseUserUUID(filter.UserID)
		if err != nil {
			return []domain.GameHistory{}, nil
		}
		args = append(args, id)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.GameType != "" {
		args = append(args, string(filter.GameType))
		where = append(where, fmt.Sprintf("game_type = $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id::text, user_id::text, game_type, bet_amount, result, profit, multiplier, details, created_at FROM game_history`)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	if order == domain.NewestFirst {
		sb.WriteString(" ORDER BY created_at DESC, seq DESC")
	} else {
		sb.WriteString(" ORDER BY created_at ASC, seq ASC")
	}
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := s.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryHistory, err)
	}
	defer rows.Close()

	out := make([]domain.GameHistory, 0)
	for rows.Next() {
		var (
			h        domain.GameHistory
			gameType string
			result   string
			details  []byte
		)
		if err := rows.Scan(&h.ID, &h.UserID, &gameType, &h.BetAmount, &result, &h.Profit, &h.Multiplier, &details, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextQueryHistory, err)
		}
		h.GameType = domain.GameType(gameType)
		h.Result = domain.GameResult(result)
		h.Details = details
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryHistory, err)
	}
	return out, nil
}

// appendHistory assigns an ID and timestamp when unset, then inserts the record
func appendHistory(ctx context.Context, q querier, record *domain.GameHistory) error {
	userID, err := parseUserUUID(record.UserID)
	if err != nil {
		return err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	var details []byte
	if len(record.Details) > 0 {
		details = record.Details
	}

	_, err = q.Exec(ctx, `
		INSERT INTO game_history (id, user_id, game_type, bet_amount, result, profit, multiplier, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, record.ID, userID, string(record.GameType), record.BetAmount, string(record.Result),
		record.Profit, record.Multiplier, details, record.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, record.UserID)
		}
		return fmt.Errorf("%s: %w", ErrContextInsertHistory, err)
	}
	return nil
}
