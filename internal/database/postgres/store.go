// Package postgres implements repository.Store and repository.Sessions on PostgreSQL with raw pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// BeginTx starts a transaction exposing the engine's transactional operations
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	return &pgTx{tx: tx}, nil
}

// CreateUser inserts the user and their default clicker row in one transaction
func (s *Store) CreateUser(ctx context.Context, username string, startingBalance int) (*domain.User, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	u := &domain.User{Username: username}
	err = tx.QueryRow(ctx, `
		INSERT INTO users (user_id, username, money)
		VALUES (gen_random_uuid(), $1, $2)
		RETURNING user_id::text, money, created_at
	`, username, startingBalance).Scan(&u.ID, &u.Money, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextInsertUser, err)
	}

	d := domain.NewClickerData(u.ID)
	_, err = tx.Exec(ctx, `
		INSERT INTO clicker_data (user_id, click_power, click_level, click_cost, auto_cost, factory_cost, bank_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, d.ClickPower, d.ClickLevel, d.ClickCost, d.AutoCost, d.FactoryCost, d.BankCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInsertClicker, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCommit, err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	return scanUser(s.db.QueryRow(ctx, `
		SELECT user_id::text, username, money, created_at FROM users WHERE user_id = $1
	`, id), userID)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(s.db.QueryRow(ctx, `
		SELECT user_id::text, username, money, created_at FROM users WHERE username = $1
	`, username), username)
}

func (s *Store) GetBalance(ctx context.Context, userID string) (int, error) {
	return getBalance(ctx, s.db, userID)
}

func (s *Store) Debit(ctx context.Context, userID string, amount int) (int, error) {
	return debit(ctx, s.db, userID, amount)
}

func (s *Store) Credit(ctx context.Context, userID string, amount int) (int, error) {
	return credit(ctx, s.db, userID, amount)
}

func scanUser(row pgx.Row, lookup string) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Money, &u.CreatedAt); err != nil {
		return nil, notFound(err, lookup, ErrContextGetUser)
	}
	return &u, nil
}

func getBalance(ctx context.Context, q querier, userID string) (int, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}
	var money int
	if err := q.QueryRow(ctx, `SELECT money FROM users WHERE user_id = $1`, id).Scan(&money); err != nil {
		return 0, notFound(err, userID, ErrContextGetUser)
	}
	return money, nil
}

// debit subtracts amount only while the balance covers it. The guard lives in the
// UPDATE itself so concurrent debits can never take the balance negative.
func debit(ctx context.Context, q querier, userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	id, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var money int
	err = q.QueryRow(ctx, `
		UPDATE users SET money = money - $2
		WHERE user_id = $1 AND money >= $2
		RETURNING money
	`, id, amount).Scan(&money)
	if err == nil {
		return money, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", ErrContextDebit, err)
	}

	// no row updated: either the user is missing or the balance is short
	current, err := getBalance(ctx, q, userID)
	if err != nil {
		return 0, err
	}
	return current, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, current)
}

func credit(ctx context.Context, q querier, userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	id, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var money int
	err = q.QueryRow(ctx, `
		UPDATE users SET money = money + $2 WHERE user_id = $1 RETURNING money
	`, id, amount).Scan(&money)
	if err != nil {
		return 0, notFound(err, userID, ErrContextCredit)
	}
	return money, nil
}
