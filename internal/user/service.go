// Package user handles account registration and lookup.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CacheStats() CacheStats
}

type service struct {
	repo     repository.Account
	bus      event.Bus
	cache    *idCache
	validate *validator.Validate
}

// NewService creates a new user service. bus may be nil.
func NewService(repo repository.Account, bus event.Bus, cacheCfg CacheConfig) Service {
	return &service{
		repo:     repo,
		bus:      bus,
		cache:    newIDCache(cacheCfg),
		validate: validator.New(),
	}
}

// Register creates an account holding the starting balance
func (s *service) Register(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if err := s.validate.Var(username, usernameRules); err != nil {
		return nil, fmt.Errorf("%w: username must be 3-80 printable characters without spaces", domain.ErrInvalidParameters)
	}

	u, err := s.repo.CreateUser(ctx, username, domain.StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateUser, err)
	}
	s.cache.Set(u.Username, u.ID)

	log := logger.FromContext(ctx)
	log.Info(LogMsgUserRegistered, "user_id", u.ID, "username", u.Username)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewUserRegisteredEvent(u)); err != nil {
			log.Warn(LogMsgPublishFailed, "user_id", u.ID, "error", err)
		}
	}
	return u, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	return u, nil
}

// GetUserByUsername resolves the ID through the cache, then reads the live record
func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if id, ok := s.cache.Get(username); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "username", username)
		u, err := s.repo.GetUserByID(ctx, id)
		if err == nil {
			return u, nil
		}
		s.cache.Invalidate(username)
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	s.cache.Set(u.Username, u.ID)
	return u, nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}
