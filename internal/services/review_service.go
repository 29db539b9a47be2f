package services

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
	"github.com/nadir/hifztrack/internal/scheduler"
	"github.com/nadir/hifztrack/internal/workflow"
)

// Invalidator drops cached progress snapshots after a write.
type Invalidator interface {
	Invalidate(studentID int64)
}

// ReviewService handles review submissions: scheduling, workflow
// transitions and persistence as a single read-modify-CAS-write.
type ReviewService interface {
	SubmitReview(ctx context.Context, studentID, unitID int64, grade models.Grade) (*models.MemorizationRecord, error)
	RecentReviews(ctx context.Context, studentID int64, limit int) ([]models.ReviewEvent, error)
}

type reviewService struct {
	records  repository.RecordRepository
	events   repository.ReviewEventRepository
	policy   scheduler.Policy
	rules    workflow.Rules
	progress Invalidator
	now      func() time.Time
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	records repository.RecordRepository,
	events repository.ReviewEventRepository,
	policy scheduler.Policy,
	rules workflow.Rules,
	progress Invalidator,
) ReviewService {
	return &reviewService{
		records:  records,
		events:   events,
		policy:   policy,
		rules:    rules,
		progress: progress,
		now:      time.Now,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, studentID, unitID int64, grade models.Grade) (*models.MemorizationRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting review: student_id=%d, unit_id=%d, grade=%s", studentID, unitID, grade)

	if !grade.Valid() {
		return nil, apperrors.NewValidationError("grade", "must be one of fail, hard, good, easy")
	}

	rec, err := s.records.Get(ctx, studentID, unitID)
	if err != nil {
		log.Error("failed to load record: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	if rec == nil {
		return nil, apperrors.NewUnitNotStartedError(studentID, unitID)
	}
	if rec.Archived() {
		return nil, apperrors.NewUnitArchivedError(studentID, unitID)
	}

	now := s.now()
	updated := *rec

	// The first self-reported review starts the unit.
	if updated.Status == models.StatusNotStarted {
		updated, err = s.rules.Begin(updated)
		if err != nil {
			return nil, apperrors.NewStateConflictError(err.Error())
		}
	}

	updated, err = s.policy.Apply(updated, grade, now)
	if err != nil {
		if errors.Is(err, scheduler.ErrArchived) {
			return nil, apperrors.NewUnitArchivedError(studentID, unitID)
		}
		if errors.Is(err, scheduler.ErrNotStarted) {
			return nil, apperrors.NewUnitNotStartedError(studentID, unitID)
		}
		return nil, apperrors.NewInternalError(err)
	}

	updated = s.rules.AfterReview(updated, grade)

	log.Debug("applied review, status=%s, interval=%d days, strength=%.2f", updated.Status, updated.IntervalDays, updated.Strength)

	if err := s.records.UpdateVersioned(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrVersionMismatch) {
			log.Warn("concurrent modification on student=%d unit=%d", studentID, unitID)
			return nil, apperrors.NewConcurrentModificationError(studentID, unitID)
		}
		log.Error("failed to persist record: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	updated.Version++

	// The review log drives streak metrics and audit. Failing to append
	// it does not undo a committed review.
	if _, err := s.events.Insert(ctx, models.ReviewEvent{
		StudentID:    studentID,
		UnitID:       unitID,
		Grade:        grade,
		IntervalDays: updated.IntervalDays,
		ReviewedAt:   now,
	}); err != nil {
		log.Warn("failed to append review event: %v", err)
	}

	if s.progress != nil {
		s.progress.Invalidate(studentID)
	}

	log.Info("review recorded: student=%d unit=%d grade=%s next_due=%s", studentID, unitID, grade, updated.DueAt.Format("2006-01-02"))
	return &updated, nil
}

func (s *reviewService) RecentReviews(ctx context.Context, studentID int64, limit int) ([]models.ReviewEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	events, err := s.events.ListByStudent(ctx, studentID, limit)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return events, nil
}
