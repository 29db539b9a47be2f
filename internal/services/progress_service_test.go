package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nadir/hifztrack/internal/catalog"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/services"
	"github.com/nadir/hifztrack/internal/testutil/mocks"
)

func newProgressService(records *mocks.MockRecordRepository, events *mocks.MockReviewEventRepository, enrollments *mocks.MockEnrollmentRepository, ttl time.Duration) services.ProgressService {
	return services.NewProgressService(records, events, enrollments, catalog.New(), ttl)
}

// tenUnitRecords is a cohort of ten tracked surahs: four verified, three
// in learning, three never started.
func tenUnitRecords() []models.MemorizationRecord {
	var records []models.MemorizationRecord
	for unitID := int64(1); unitID <= 10; unitID++ {
		status := models.StatusNotStarted
		switch {
		case unitID <= 4:
			status = models.StatusVerified
		case unitID <= 7:
			status = models.StatusLearning
		}
		records = append(records, models.MemorizationRecord{
			StudentID: 1,
			UnitID:    unitID,
			Status:    status,
			DueAt:     time.Now().AddDate(0, 0, 30),
		})
	}
	return records
}

func TestStudentProgress_Rollup(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return(tenUnitRecords(), nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{}, nil)

	progress, err := svc.StudentProgress(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 10, progress.TotalUnits)
	assert.Equal(t, 4, progress.UnitsVerified)
	assert.Equal(t, 3, progress.UnitsInProgress)
	assert.Equal(t, 0, progress.UnitsPending)
	assert.Equal(t, 0, progress.UnitsLapsed)
	assert.InDelta(t, 40.0, progress.PercentComplete, 0.001, "4 of 10 units verified")
	assert.False(t, progress.Incomplete)
}

func TestStudentProgress_VerseWeightedPercent(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	// Al-Fatihah (7 verses) verified, Al-Baqarah (286 verses) in learning.
	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return([]models.MemorizationRecord{
		{StudentID: 1, UnitID: 1, Status: models.StatusVerified, DueAt: time.Now().AddDate(0, 0, 30)},
		{StudentID: 1, UnitID: 2, Status: models.StatusLearning, DueAt: time.Now().AddDate(0, 0, 30)},
	}, nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{}, nil)

	progress, err := svc.StudentProgress(context.Background(), 1)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, progress.PercentComplete, 0.001)
	assert.InDelta(t, 100.0*7.0/293.0, progress.VersePercentComplete, 0.001,
		"verse weighting reflects that the short surah is done, the long one is not")
}

func TestStudentProgress_NoRecords(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return([]models.MemorizationRecord{}, nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{}, nil)

	progress, err := svc.StudentProgress(context.Background(), 1)

	require.NoError(t, err, "an untracked student reports zero progress, not an error")
	assert.Equal(t, 0, progress.TotalUnits)
	assert.Zero(t, progress.PercentComplete)
}

func TestStudentProgress_DueToday(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return([]models.MemorizationRecord{
		{StudentID: 1, UnitID: 1, Status: models.StatusLearning, DueAt: time.Now().Add(-time.Hour)},
		{StudentID: 1, UnitID: 2, Status: models.StatusVerified, DueAt: time.Now().Add(-48 * time.Hour)},
		{StudentID: 1, UnitID: 3, Status: models.StatusLearning, DueAt: time.Now().AddDate(0, 0, 5)},
		{StudentID: 1, UnitID: 4, Status: models.StatusNotStarted},
	}, nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{}, nil)

	progress, err := svc.StudentProgress(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, progress.UnitsDueToday, "overdue learning and verified units count, future and untracked do not")
}

func TestStudentProgress_UnknownUnitFlagsIncomplete(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return([]models.MemorizationRecord{
		{StudentID: 1, UnitID: 1, Status: models.StatusVerified, DueAt: time.Now().AddDate(0, 0, 30)},
		{StudentID: 1, UnitID: 9999, Status: models.StatusLearning},
	}, nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{}, nil)

	progress, err := svc.StudentProgress(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, progress.Incomplete, "a record pointing at no catalog unit degrades, not fails")
	assert.Equal(t, 1, progress.TotalUnits, "the unknown unit is excluded from the rollup")
}

func TestStudentProgress_Streak(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return([]models.MemorizationRecord{}, nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{
		today,
		today.AddDate(0, 0, -1),
		today.AddDate(0, 0, -2),
		// Gap: the day before that is missing.
		today.AddDate(0, 0, -4),
	}, nil)

	progress, err := svc.StudentProgress(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 3, progress.CurrentStreakDays, "the streak stops at the first missing day")
}

func TestStudentProgress_StreakSurvivesNoReviewYetToday(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return([]models.MemorizationRecord{}, nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{
		today.AddDate(0, 0, -1),
		today.AddDate(0, 0, -2),
	}, nil)

	progress, err := svc.StudentProgress(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, progress.CurrentStreakDays, "a streak ending yesterday is still alive")
}

func TestStudentProgress_CacheAndInvalidate(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, time.Minute)

	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return(tenUnitRecords(), nil)
	events.On("ReviewDays", mock.Anything, int64(1)).Return([]time.Time{}, nil)

	ctx := context.Background()
	_, err := svc.StudentProgress(ctx, 1)
	require.NoError(t, err)
	_, err = svc.StudentProgress(ctx, 1)
	require.NoError(t, err)
	records.AssertNumberOfCalls(t, "List", 1)

	svc.Invalidate(1)
	_, err = svc.StudentProgress(ctx, 1)
	require.NoError(t, err)
	records.AssertNumberOfCalls(t, "List", 2)
}

func TestClassProgress(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	enrollments.On("StudentIDs", mock.Anything, int64(10)).Return([]int64{1, 2}, nil)

	// Student 1: 4 of 10 verified. Student 2: 1 of 2 verified.
	records.On("List", mock.Anything, models.RecordFilter{StudentID: 1}).Return(tenUnitRecords(), nil)
	records.On("List", mock.Anything, models.RecordFilter{StudentID: 2}).Return([]models.MemorizationRecord{
		{StudentID: 2, UnitID: 1, Status: models.StatusVerified, DueAt: time.Now().AddDate(0, 0, 30)},
		{StudentID: 2, UnitID: 2, Status: models.StatusLapsed},
	}, nil)
	events.On("ReviewDays", mock.Anything, mock.Anything).Return([]time.Time{}, nil)

	progress, err := svc.ClassProgress(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 2, progress.StudentCount)
	assert.InDelta(t, 45.0, progress.AvgPercentComplete, 0.001, "mean of 40% and 50%")
	assert.Equal(t, 5, progress.StatusHistogram[models.StatusVerified])
	assert.Equal(t, 3, progress.StatusHistogram[models.StatusLearning])
	assert.Equal(t, 1, progress.StatusHistogram[models.StatusLapsed])
	assert.Equal(t, 3, progress.StatusHistogram[models.StatusNotStarted])
}

func TestClassProgress_EmptyCourse(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	enrollments.On("StudentIDs", mock.Anything, int64(10)).Return([]int64{}, nil)

	progress, err := svc.ClassProgress(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 0, progress.StudentCount)
	assert.Zero(t, progress.AvgPercentComplete)
}

func TestDueQueue(t *testing.T) {
	records := new(mocks.MockRecordRepository)
	events := new(mocks.MockReviewEventRepository)
	enrollments := new(mocks.MockEnrollmentRepository)
	svc := newProgressService(records, events, enrollments, 0)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	records.On("List", mock.Anything, mock.MatchedBy(func(f models.RecordFilter) bool {
		return f.StudentID == 1 && f.DueBefore != nil && f.DueBefore.Equal(now)
	})).Return([]models.MemorizationRecord{
		{StudentID: 1, UnitID: 1, Status: models.StatusLearning, IntervalDays: 3, DueAt: now.AddDate(0, 0, -1)},
		{StudentID: 1, UnitID: 2, Status: models.StatusNotStarted},
	}, nil)

	queue, err := svc.DueQueue(context.Background(), 1, now)

	require.NoError(t, err)
	require.Len(t, queue, 1, "not-started units have nothing to review")
	assert.Equal(t, int64(1), queue[0].UnitID)
	assert.Equal(t, "Al-Fatihah", queue[0].UnitName)
	assert.Equal(t, 7, queue[0].VerseCount)
}
