// Package sweep schedules the daily lapse sweep. An external cron can
// also trigger the sweep through the admin endpoint; both paths submit
// the same idempotent job.
package sweep

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/services"
	"github.com/nadir/hifztrack/internal/worker"
)

// Scheduler triggers the lapse sweep once a day at a fixed UTC hour.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pool      *worker.Pool
	sweepSvc  services.SweepService
	hourUTC   int
	log       *logger.Logger
}

// New creates a sweep scheduler.
func New(pool *worker.Pool, sweepSvc services.SweepService, hourUTC int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		pool:      pool,
		sweepSvc:  sweepSvc,
		hourUTC:   hourUTC,
		log:       logger.Default().WithPrefix("sweep"),
	}
}

// Start begins the daily schedule in a non-blocking manner.
func (s *Scheduler) Start() error {
	at := fmt.Sprintf("%02d:00", s.hourUTC)
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.enqueue); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.log.Info("daily lapse sweep scheduled at %s UTC", at)
	return nil
}

// Stop terminates the schedule.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) enqueue() {
	s.log.Debug("enqueueing lapse sweep job")
	if !s.pool.TrySubmit(&worker.LapseSweepJob{Sweep: s.sweepSvc}) {
		s.log.Warn("lapse sweep skipped, worker queue full")
	}
}
