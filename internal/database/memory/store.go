// Package memory is an in-process implementation of repository.Store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Store keeps users, clicker data, history and counters in maps guarded by one mutex.
// A transaction holds the mutex from BeginTx until Commit or Rollback.
type Store struct {
	mu               sync.Mutex
	users            map[string]*domain.User
	usernames        map[string]string
	clicker          map[string]domain.ClickerData
	history          []domain.GameHistory
	counters         map[string]int64
	achievements     []domain.Achievement
	userAchievements map[string][]domain.UserAchievement
	now              func() time.Time
}

var _ repository.Store = (*Store)(nil)

// NewStore creates an empty store seeded with the achievement catalog
func NewStore() *Store {
	return &Store{
		users:            make(map[string]*domain.User),
		usernames:        make(map[string]string),
		clicker:          make(map[string]domain.ClickerData),
		counters:         make(map[string]int64),
		achievements:     append([]domain.Achievement(nil), domain.AchievementCatalog...),
		userAchievements: make(map[string][]domain.UserAchievement),
		now:              time.Now,
	}
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error { return nil }

// CreateUser registers username with startingBalance and default clicker data
func (s *Store) CreateUser(_ context.Context, username string, startingBalance int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[username]; taken {
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	}

	u := &domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		Money:     startingBalance,
		CreatedAt: s.now().UTC(),
	}
	s.users[u.ID] = u
	s.usernames[username] = u.ID
	s.clicker[u.ID] = *domain.NewClickerData(u.ID)

	copied := *u
	return &copied, nil
}

// GetUserByID returns a copy of the user
func (s *Store) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.userLocked(userID)
	if err != nil {
		return nil, err
	}
	copied := *u
	return &copied, nil
}

// GetUserByUsername returns a copy of the user registered under username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	id, ok := s.usernames[username]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return s.GetUserByID(ctx, id)
}

// GetBalance returns the user's money
func (s *Store) GetBalance(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.userLocked(userID)
	if err != nil {
		return 0, err
	}
	return u.Money, nil
}

// Debit removes amount from the user's balance and returns the new balance
func (s *Store) Debit(_ context.Context, userID string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debitLocked(userID, amount)
}

// Credit adds amount to the user's balance and returns the new balance
func (s *Store) Credit(_ context.Context, userID string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creditLocked(userID, amount)
}

// AppendHistory stores a copy of record, assigning an ID and timestamp when unset
func (s *Store) AppendHistory(_ context.Context, record *domain.GameHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendHistoryLocked(record)
}

// QueryHistory returns matching records in the requested order
func (s *Store) QueryHistory(_ context.Context, filter domain.HistoryFilter, order domain.SortOrder, limit int) ([]domain.GameHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.GameHistory, 0)
	for _, h := range s.history {
		if filter.UserID != "" && h.UserID != filter.UserID {
			continue
		}
		if filter.GameType != "" && h.GameType != filter.GameType {
			continue
		}
		out = append(out, h)
	}

	// history is kept in insertion order, which breaks CreatedAt ties
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if order == domain.NewestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetClickerData returns a copy of the user's clicker data
func (s *Store) GetClickerData(_ context.Context, userID string) (*domain.ClickerData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clickerLocked(userID)
}

// UpdateClickerData replaces the user's clicker data
func (s *Store) UpdateClickerData(_ context.Context, data *domain.ClickerData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateClickerLocked(data)
}

// IncrementCounter adds delta to key and returns the new value
func (s *Store) IncrementCounter(_ context.Context, key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key] += delta
	return s.counters[key], nil
}

// GetCounter returns the value of key, zero when unset
func (s *Store) GetCounter(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[key], nil
}

// ListAchievements returns the catalog
func (s *Store) ListAchievements(context.Context) ([]domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Achievement(nil), s.achievements...), nil
}

// ListUserAchievements returns the achievements held by userID
func (s *Store) ListUserAchievements(_ context.Context, userID string) ([]domain.UserAchievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.UserAchievement{}, s.userAchievements[userID]...), nil
}

// BeginTx locks the store for the lifetime of the transaction
func (s *Store) BeginTx(context.Context) (repository.Tx, error) {
	s.mu.Lock()
	return &tx{s: s}, nil
}

// ---- locked helpers; callers hold s.mu ----

func (s *Store) userLocked(userID string) (*domain.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return u, nil
}

func (s *Store) debitLocked(userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	u, err := s.userLocked(userID)
	if err != nil {
		return 0, err
	}
	if amount > u.Money {
		return u.Money, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, u.Money)
	}
	u.Money -= amount
	return u.Money, nil
}

func (s *Store) creditLocked(userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	u, err := s.userLocked(userID)
	if err != nil {
		return 0, err
	}
	u.Money += amount
	return u.Money, nil
}

func (s *Store) appendHistoryLocked(record *domain.GameHistory) error {
	if _, err := s.userLocked(record.UserID); err != nil {
		return err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now().UTC()
	}
	s.history = append(s.history, *record)
	return nil
}

func (s *Store) clickerLocked(userID string) (*domain.ClickerData, error) {
	d, ok := s.clicker[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return &d, nil
}

func (s *Store) updateClickerLocked(data *domain.ClickerData) error {
	if _, ok := s.clicker[data.UserID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, data.UserID)
	}
	s.clicker[data.UserID] = *data
	return nil
}

// tx records an undo step per mutation so Rollback can restore the store
type tx struct {
	s    *Store
	undo []func()
	done bool
}

func (t *tx) Debit(_ context.Context, userID string, amount int) (int, error) {
	if t.done {
		return 0, domain.ErrTxClosed
	}
	balance, err := t.s.debitLocked(userID, amount)
	if err == nil {
		t.undo = append(t.undo, func() { t.s.users[userID].Money += amount })
	}
	return balance, err
}

func (t *tx) Credit(_ context.Context, userID string, amount int) (int, error) {
	if t.done {
		return 0, domain.ErrTxClosed
	}
	balance, err := t.s.creditLocked(userID, amount)
	if err == nil {
		t.undo = append(t.undo, func() { t.s.users[userID].Money -= amount })
	}
	return balance, err
}

func (t *tx) AppendHistory(_ context.Context, record *domain.GameHistory) error {
	if t.done {
		return domain.ErrTxClosed
	}
	n := len(t.s.history)
	if err := t.s.appendHistoryLocked(record); err != nil {
		return err
	}
	t.undo = append(t.undo, func() { t.s.history = t.s.history[:n] })
	return nil
}

func (t *tx) GetClickerData(_ context.Context, userID string) (*domain.ClickerData, error) {
	if t.done {
		return nil, domain.ErrTxClosed
	}
	return t.s.clickerLocked(userID)
}

func (t *tx) UpdateClickerData(_ context.Context, data *domain.ClickerData) error {
	if t.done {
		return domain.ErrTxClosed
	}
	prev, ok := t.s.clicker[data.UserID]
	if err := t.s.updateClickerLocked(data); err != nil {
		return err
	}
	if ok {
		t.undo = append(t.undo, func() { t.s.clicker[data.UserID] = prev })
	}
	return nil
}

func (t *tx) Commit(context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	t.undo = nil
	t.s.mu.Unlock()
	return nil
}

func (t *tx) Rollback(context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.done = true
	t.undo = nil
	t.s.mu.Unlock()
	return nil
}
