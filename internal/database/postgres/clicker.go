package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
)

func (s *Store) GetClickerData(ctx context.Context, userID string) (*domain.ClickerData, error) {
	return getClickerData(ctx, s.db, userID, false)
}

func (s *Store) UpdateClickerData(ctx context.Context, data *domain.ClickerData) error {
	return updateClickerData(ctx, s.db, data)
}

// getClickerData reads a user's clicker row; forUpdate locks it until the transaction ends
func getClickerData(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.ClickerData, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT user_id::text, click_power, click_level, auto_level, factory_level, bank_level,
		       click_cost, auto_cost, factory_cost, bank_cost, total_clicks, total_earned
		FROM clicker_data WHERE user_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var d domain.ClickerData
	err = q.QueryRow(ctx, query, id).Scan(
		&d.UserID, &d.ClickPower, &d.ClickLevel, &d.AutoLevel, &d.FactoryLevel, &d.BankLevel,
		&d.ClickCost, &d.AutoCost, &d.FactoryCost, &d.BankCost, &d.TotalClicks, &d.TotalEarned,
	)
	if err != nil {
		return nil, notFound(err, userID, ErrContextGetClicker)
	}
	return &d, nil
}

func updateClickerData(ctx context.Context, q querier, d *domain.ClickerData) error {
	id, err := parseUserUUID(d.UserID)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, `
		UPDATE clicker_data SET
			click_power = $2, click_level = $3, auto_level = $4, factory_level = $5, bank_level = $6,
			click_cost = $7, auto_cost = $8, factory_cost = $9, bank_cost = $10,
			total_clicks = $11, total_earned = $12
		WHERE user_id = $1
	`, id, d.ClickPower, d.ClickLevel, d.AutoLevel, d.FactoryLevel, d.BankLevel,
		d.ClickCost, d.AutoCost, d.FactoryCost, d.BankCost, d.TotalClicks, d.TotalEarned)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextUpdateClicker, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, d.UserID)
	}
	return nil
}
