package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/Casino_Go/internal/domain"
)

// IncrementCounter adds delta to key, creating the row on first use
func (s *Store) IncrementCounter(ctx context.Context, key string, delta int64) (int64, error) {
	var v int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO global_stats (stat_key, stat_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (stat_key) DO UPDATE
		SET stat_value = global_stats.stat_value + EXCLUDED.stat_value, updated_at = NOW()
		RETURNING stat_value
	`, key, delta).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextCounter, err)
	}
	return v, nil
}

// GetCounter returns the value of key, zero when unset
func (s *Store) GetCounter(ctx context.Context, key string) (int64, error) {
	var v int64
	err := s.db.QueryRow(ctx, `SELECT stat_value FROM global_stats WHERE stat_key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextCounter, err)
	}
	return v, nil
}

func (s *Store) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, icon, reward, condition_type, condition_value
		FROM achievements ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAchievements, err)
	}
	defer rows.Close()

	out := make([]domain.Achievement, 0)
	for rows.Next() {
		var (
			a              domain.Achievement
			conditionType  pgtype.Text
			conditionValue pgtype.Int4
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Reward, &conditionType, &conditionValue); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextAchievements, err)
		}
		a.ConditionType = conditionType.String
		a.ConditionValue = int(conditionValue.Int32)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAchievements, err)
	}
	return out, nil
}

func (s *Store) ListUserAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT user_id::text, achievement_id, unlocked_at
		FROM user_achievements WHERE user_id = $1 ORDER BY unlocked_at
	`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAchievements, err)
	}
	defer rows.Close()

	out := make([]domain.UserAchievement, 0)
	for rows.Next() {
		var ua domain.UserAchievement
		if err := rows.Scan(&ua.UserID, &ua.AchievementID, &ua.UnlockedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextAchievements, err)
		}
		out = append(out, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAchievements, err)
	}
	return out, nil
}
