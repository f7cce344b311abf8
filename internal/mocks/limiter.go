package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLimiter is a mock implementation of the middleware.Limiter interface
type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) IsAllowed(ctx context.Context, key string) (bool, int, time.Time, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Int(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockLimiter) Limit() int {
	return m.Called().Int(0)
}

func (m *MockLimiter) Window() time.Duration {
	return m.Called().Get(0).(time.Duration)
}
