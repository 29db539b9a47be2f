package services

import (
	"context"
	"sync"
	"time"

	"github.com/nadir/hifztrack/internal/catalog"
	apperrors "github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
)

// ProgressService is the read-side aggregator. Snapshots are recomputed
// from records and review events, never hand-edited, and served from a
// short-lived cache invalidated on write.
type ProgressService interface {
	StudentProgress(ctx context.Context, studentID int64) (*models.StudentProgress, error)
	ClassProgress(ctx context.Context, courseID int64) (*models.ClassProgress, error)
	DueQueue(ctx context.Context, studentID int64, now time.Time) ([]models.DueUnit, error)
	Invalidate(studentID int64)
}

type cachedSnapshot struct {
	snapshot  *models.StudentProgress
	expiresAt time.Time
}

type progressService struct {
	records     repository.RecordRepository
	events      repository.ReviewEventRepository
	enrollments repository.EnrollmentRepository
	catalog     *catalog.Catalog
	ttl         time.Duration
	now         func() time.Time

	mu    sync.Mutex
	cache map[int64]cachedSnapshot
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	records repository.RecordRepository,
	events repository.ReviewEventRepository,
	enrollments repository.EnrollmentRepository,
	cat *catalog.Catalog,
	cacheTTL time.Duration,
) ProgressService {
	return &progressService{
		records:     records,
		events:      events,
		enrollments: enrollments,
		catalog:     cat,
		ttl:         cacheTTL,
		now:         time.Now,
		cache:       make(map[int64]cachedSnapshot),
	}
}

// Invalidate drops the cached snapshot for a student after a write.
func (s *progressService) Invalidate(studentID int64) {
	s.mu.Lock()
	delete(s.cache, studentID)
	s.mu.Unlock()
}

func (s *progressService) StudentProgress(ctx context.Context, studentID int64) (*models.StudentProgress, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if c, ok := s.cache[studentID]; ok && s.now().Before(c.expiresAt) {
		s.mu.Unlock()
		log.Debug("serving cached progress: student_id=%d", studentID)
		return c.snapshot, nil
	}
	s.mu.Unlock()

	snapshot, err := s.computeStudentProgress(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if s.ttl > 0 {
		s.mu.Lock()
		s.cache[studentID] = cachedSnapshot{snapshot: snapshot, expiresAt: s.now().Add(s.ttl)}
		s.mu.Unlock()
	}
	return snapshot, nil
}

func (s *progressService) computeStudentProgress(ctx context.Context, studentID int64) (*models.StudentProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing student progress: student_id=%d", studentID)

	now := s.now()
	snapshot := &models.StudentProgress{
		StudentID:  studentID,
		ComputedAt: now,
	}

	records, err := s.records.List(ctx, models.RecordFilter{StudentID: studentID})
	if err != nil {
		log.Error("failed to list records: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	// A student with zero records reports 0% complete, not an error.
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	var verifiedVerses, totalVerses int
	for _, rec := range records {
		unit, ok := s.catalog.Get(rec.UnitID)
		if !ok {
			// Unknown catalog unit: skip and flag rather than fail
			// the whole rollup.
			log.Warn("record references unknown unit %d, flagging snapshot incomplete", rec.UnitID)
			snapshot.Incomplete = true
			continue
		}
		snapshot.TotalUnits++
		totalVerses += unit.VerseCount

		switch rec.Status {
		case models.StatusVerified:
			snapshot.UnitsVerified++
			verifiedVerses += unit.VerseCount
		case models.StatusLearning:
			snapshot.UnitsInProgress++
		case models.StatusPendingVerification:
			snapshot.UnitsPending++
		case models.StatusLapsed:
			snapshot.UnitsLapsed++
		}

		if rec.Status == models.StatusLearning || rec.Status == models.StatusVerified {
			if !rec.DueAt.IsZero() && !rec.DueAt.After(endOfToday) {
				snapshot.UnitsDueToday++
			}
		}
	}

	if snapshot.TotalUnits > 0 {
		snapshot.PercentComplete = float64(snapshot.UnitsVerified) / float64(snapshot.TotalUnits) * 100
	}
	if totalVerses > 0 {
		snapshot.VersePercentComplete = float64(verifiedVerses) / float64(totalVerses) * 100
	}

	streak, err := s.currentStreak(ctx, studentID, now)
	if err != nil {
		// Streaks are cosmetic; degrade instead of failing the rollup.
		log.Warn("failed to compute streak: %v", err)
		snapshot.Incomplete = true
	} else {
		snapshot.CurrentStreakDays = streak
	}

	return snapshot, nil
}

// currentStreak counts consecutive calendar days with at least one review,
// ending today or yesterday. Any day with zero submissions breaks it.
func (s *progressService) currentStreak(ctx context.Context, studentID int64, now time.Time) (int, error) {
	days, err := s.events.ReviewDays(ctx, studentID)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}

	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	expected := today
	if !days[0].Equal(today) {
		// No review yet today; a streak ending yesterday still counts.
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak, nil
}

func (s *progressService) ClassProgress(ctx context.Context, courseID int64) (*models.ClassProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing class progress: course_id=%d", courseID)

	studentIDs, err := s.enrollments.StudentIDs(ctx, courseID)
	if err != nil {
		log.Error("failed to list course students: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	out := &models.ClassProgress{
		CourseID:        courseID,
		StudentCount:    len(studentIDs),
		StatusHistogram: make(map[models.Status]int),
		ComputedAt:      s.now(),
	}
	if len(studentIDs) == 0 {
		return out, nil
	}

	var sum float64
	for _, studentID := range studentIDs {
		sp, err := s.StudentProgress(ctx, studentID)
		if err != nil {
			return nil, err
		}
		sum += sp.PercentComplete
		out.UnitsDueToday += sp.UnitsDueToday
		out.StatusHistogram[models.StatusVerified] += sp.UnitsVerified
		out.StatusHistogram[models.StatusLearning] += sp.UnitsInProgress
		out.StatusHistogram[models.StatusPendingVerification] += sp.UnitsPending
		out.StatusHistogram[models.StatusLapsed] += sp.UnitsLapsed
		out.StatusHistogram[models.StatusNotStarted] += sp.TotalUnits - sp.UnitsVerified - sp.UnitsInProgress - sp.UnitsPending - sp.UnitsLapsed
		if sp.Incomplete {
			out.Incomplete = true
		}
	}
	out.AvgPercentComplete = sum / float64(len(studentIDs))
	return out, nil
}

func (s *progressService) DueQueue(ctx context.Context, studentID int64, now time.Time) ([]models.DueUnit, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching due queue: student_id=%d", studentID)

	records, err := s.records.List(ctx, models.RecordFilter{StudentID: studentID, DueBefore: &now})
	if err != nil {
		log.Error("failed to list due records: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	queue := make([]models.DueUnit, 0, len(records))
	for _, rec := range records {
		if rec.Status == models.StatusNotStarted {
			continue
		}
		due := models.DueUnit{
			UnitID:       rec.UnitID,
			Status:       rec.Status,
			IntervalDays: rec.IntervalDays,
			DueAt:        rec.DueAt,
		}
		if unit, ok := s.catalog.Get(rec.UnitID); ok {
			due.UnitName = unit.Name
			due.VerseCount = unit.VerseCount
		}
		queue = append(queue, due)
	}
	log.Debug("%d units due", len(queue))
	return queue, nil
}
