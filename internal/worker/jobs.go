package worker

import (
	"context"
	"time"

	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/services"
)

// LapseSweepJob runs the idempotent daily lapse sweep.
type LapseSweepJob struct {
	Sweep services.SweepService
	Now   time.Time
}

func (j *LapseSweepJob) Name() string { return "lapse_sweep" }

func (j *LapseSweepJob) Run(ctx context.Context) error {
	now := j.Now
	if now.IsZero() {
		now = time.Now()
	}
	lapsed, err := j.Sweep.RunLapseSweep(ctx, now)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("lapse sweep lapsed %d records", lapsed)
	return nil
}

// RefreshProgressJob warms progress snapshots for a set of students so
// dashboard reads after a sweep or bulk change stay fast.
type RefreshProgressJob struct {
	Progress   services.ProgressService
	StudentIDs []int64
}

func (j *RefreshProgressJob) Name() string { return "refresh_progress" }

func (j *RefreshProgressJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	for _, studentID := range j.StudentIDs {
		if _, err := j.Progress.StudentProgress(ctx, studentID); err != nil {
			log.Warn("failed to refresh progress for student %d: %v", studentID, err)
		}
	}
	return nil
}
