package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nadir/hifztrack/internal/models"
)

// MockReviewEventRepository is a mock implementation of repository.ReviewEventRepository
type MockReviewEventRepository struct {
	mock.Mock
}

func (m *MockReviewEventRepository) Insert(ctx context.Context, ev models.ReviewEvent) (int64, error) {
	args := m.Called(ctx, ev)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewEventRepository) ListByStudent(ctx context.Context, studentID int64, limit int) ([]models.ReviewEvent, error) {
	args := m.Called(ctx, studentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewEvent), args.Error(1)
}

func (m *MockReviewEventRepository) ReviewDays(ctx context.Context, studentID int64) ([]time.Time, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}
