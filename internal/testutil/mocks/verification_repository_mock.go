package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nadir/hifztrack/internal/models"
)

// MockVerificationRepository is a mock implementation of repository.VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Insert(ctx context.Context, v models.Verification) (int64, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVerificationRepository) ListForRecord(ctx context.Context, studentID, unitID int64) ([]models.Verification, error) {
	args := m.Called(ctx, studentID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Verification), args.Error(1)
}
