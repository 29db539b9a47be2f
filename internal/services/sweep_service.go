package services

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/repository"
	"github.com/nadir/hifztrack/internal/workflow"
)

// SweepService demotes overdue Verified records to Lapsed. The sweep is
// idempotent: it only compares due_at against the given time, so an
// interrupted run can safely be repeated.
type SweepService interface {
	RunLapseSweep(ctx context.Context, now time.Time) (int, error)
}

type sweepService struct {
	records  repository.RecordRepository
	rules    workflow.Rules
	progress Invalidator
}

// NewSweepService creates a new SweepService
func NewSweepService(records repository.RecordRepository, rules workflow.Rules, progress Invalidator) SweepService {
	return &sweepService{records: records, rules: rules, progress: progress}
}

func (s *sweepService) RunLapseSweep(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("lapse_sweep")

	cutoff := now.AddDate(0, 0, -s.rules.LapseGraceDays)
	log.Info("running lapse sweep: cutoff=%s", cutoff.Format(time.RFC3339))

	overdue, err := s.records.OverdueVerified(ctx, cutoff)
	if err != nil {
		log.Error("failed to scan overdue records: %v", err)
		return 0, apperrors.NewInternalError(err)
	}

	lapsed := 0
	for _, rec := range overdue {
		updated, err := s.rules.Lapse(rec, now)
		if err != nil {
			// The scan query and ShouldLapse use the same cutoff, so
			// this only happens if the rules change between them.
			log.Warn("record id=%d not eligible to lapse: %v", rec.ID, err)
			continue
		}
		if err := s.records.UpdateVersioned(ctx, updated); err != nil {
			if errors.Is(err, repository.ErrVersionMismatch) {
				// A review landed concurrently; that record is no
				// longer overdue. Skip it, the next sweep re-checks.
				log.Debug("record id=%d changed during sweep, skipping", rec.ID)
				continue
			}
			log.Error("failed to lapse record id=%d: %v", rec.ID, err)
			return lapsed, apperrors.NewInternalError(err)
		}
		lapsed++
		if s.progress != nil {
			s.progress.Invalidate(rec.StudentID)
		}
	}

	log.Info("lapse sweep complete: %d records lapsed out of %d overdue", lapsed, len(overdue))
	return lapsed, nil
}
