// Package workflow is the state machine gating a unit from "claimed
// memorized" to "teacher-verified". All transition functions are pure;
// invalid transitions return an error without mutating the input.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/nadir/hifztrack/internal/models"
)

var (
	// ErrNotPending is returned when a verification targets a record that
	// is not awaiting teacher confirmation.
	ErrNotPending = errors.New("record is not pending verification")
	// ErrAlreadyStarted is returned when Begin is applied twice.
	ErrAlreadyStarted = errors.New("record already started")
)

// Rules holds the workflow thresholds.
type Rules struct {
	// MasteryThresholdDays is the interval at which a Learning unit is
	// considered memorized and handed to a teacher for confirmation.
	MasteryThresholdDays int
	// ConsecutiveFailLimit demotes a Learning unit to Lapsed.
	ConsecutiveFailLimit int
	// LapseGraceDays is how far past due a Verified unit may go before
	// the sweep marks it Lapsed.
	LapseGraceDays int
	// BaselineStrength seeds a record entering Learning.
	BaselineStrength float64
}

// DefaultRules returns the stock thresholds.
func DefaultRules() Rules {
	return Rules{
		MasteryThresholdDays: 14,
		ConsecutiveFailLimit: 3,
		LapseGraceDays:       30,
		BaselineStrength:     2.0,
	}
}

// Begin moves a NotStarted record into Learning on the student's first
// review submission, seeding the strength baseline.
func (r Rules) Begin(rec models.MemorizationRecord) (models.MemorizationRecord, error) {
	if rec.Status != models.StatusNotStarted {
		return rec, ErrAlreadyStarted
	}
	rec.Status = models.StatusLearning
	rec.Strength = r.BaselineStrength
	return rec, nil
}

// AfterReview applies the post-scheduling transitions: promotion to
// PendingVerification once the interval crosses the mastery threshold on a
// successful outcome, and demotion to Lapsed on repeated fails.
func (r Rules) AfterReview(rec models.MemorizationRecord, grade models.Grade) models.MemorizationRecord {
	if rec.Status == models.StatusLearning {
		if grade.Success() && rec.IntervalDays >= r.MasteryThresholdDays {
			rec.Status = models.StatusPendingVerification
		} else if rec.ConsecutiveFails >= r.ConsecutiveFailLimit {
			rec.Status = models.StatusLapsed
		}
	}
	return rec
}

// Verify applies a teacher verdict to a PendingVerification record.
// A pass promotes to Verified; a fail demotes to Learning with the
// interval reset to the fail seed.
func (r Rules) Verify(rec models.MemorizationRecord, verdict models.Verdict, now time.Time) (models.MemorizationRecord, error) {
	if rec.Status != models.StatusPendingVerification {
		return rec, fmt.Errorf("%w: status is %s", ErrNotPending, rec.Status)
	}
	switch verdict {
	case models.VerdictPass:
		rec.Status = models.StatusVerified
	case models.VerdictFail:
		rec.Status = models.StatusLearning
		rec.IntervalDays = 1
		rec.DueAt = now.AddDate(0, 0, 1)
	default:
		return rec, fmt.Errorf("unknown verdict %q", verdict)
	}
	return rec, nil
}

// ShouldLapse reports whether a Verified record has gone unreviewed past
// its grace window. Depends only on DueAt vs now, so the sweep that uses
// it is idempotent.
func (r Rules) ShouldLapse(rec models.MemorizationRecord, now time.Time) bool {
	if rec.Status != models.StatusVerified || rec.Archived() {
		return false
	}
	return now.After(rec.DueAt.AddDate(0, 0, r.LapseGraceDays))
}

// Lapse demotes an overdue Verified record. Models forgetting.
func (r Rules) Lapse(rec models.MemorizationRecord, now time.Time) (models.MemorizationRecord, error) {
	if !r.ShouldLapse(rec, now) {
		return rec, fmt.Errorf("record is not eligible to lapse (status %s, due %s)", rec.Status, rec.DueAt.Format(time.RFC3339))
	}
	rec.Status = models.StatusLapsed
	return rec, nil
}
