package settlement

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
)

type MockSnapshotter struct {
	mock.Mock
}

func (m *MockSnapshotter) GlobalSnapshot(ctx context.Context) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
