package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nadir/hifztrack/internal/models"
)

// MockRecordRepository is a mock implementation of repository.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Get(ctx context.Context, studentID, unitID int64) (*models.MemorizationRecord, error) {
	args := m.Called(ctx, studentID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MemorizationRecord), args.Error(1)
}

func (m *MockRecordRepository) Insert(ctx context.Context, rec models.MemorizationRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordRepository) UpdateVersioned(ctx context.Context, rec models.MemorizationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecordRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.MemorizationRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MemorizationRecord), args.Error(1)
}

func (m *MockRecordRepository) OverdueVerified(ctx context.Context, cutoff time.Time) ([]models.MemorizationRecord, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MemorizationRecord), args.Error(1)
}

func (m *MockRecordRepository) ArchiveUnits(ctx context.Context, studentID int64, unitIDs []int64, at time.Time) error {
	args := m.Called(ctx, studentID, unitIDs, at)
	return args.Error(0)
}
