// Package scheduler implements the spaced-repetition interval policy.
// Apply is a pure function: no I/O, no clock reads, callers persist the
// returned record.
package scheduler

import (
	"errors"
	"math"
	"time"

	"github.com/nadir/hifztrack/internal/models"
)

var (
	// ErrNotStarted is returned when a unit is reviewed before it was started.
	ErrNotStarted = errors.New("record has not been started")
	// ErrArchived is returned when a review targets an archived record.
	ErrArchived = errors.New("record is archived")
)

// Policy holds the tunable interval constants. Zero values are replaced by
// defaults via Default; see config for the environment mapping.
type Policy struct {
	BaselineStrength float64
	MaxIntervalDays  int

	// Seed intervals for the very first review, which has no prior
	// interval to multiply.
	SeedFailDays int
	SeedHardDays int
	SeedGoodDays int
	SeedEasyDays int

	MinFactor float64
	MaxFactor float64
}

// Default returns the stock policy.
func Default() Policy {
	return Policy{
		BaselineStrength: 2.0,
		MaxIntervalDays:  180,
		SeedFailDays:     1,
		SeedHardDays:     1,
		SeedGoodDays:     3,
		SeedEasyDays:     5,
		MinFactor:        1.3,
		MaxFactor:        2.5,
	}
}

// factor maps strength to an interval multiplier, increasing with strength
// and clamped to [MinFactor, MaxFactor].
func (p Policy) factor(strength float64) float64 {
	f := p.MinFactor + 0.4*(strength-p.BaselineStrength)
	if f < p.MinFactor {
		f = p.MinFactor
	}
	if f > p.MaxFactor {
		f = p.MaxFactor
	}
	return f
}

// Apply computes the next scheduling state for a review outcome.
// The input record is not mutated; on error it is returned unchanged.
func (p Policy) Apply(rec models.MemorizationRecord, grade models.Grade, now time.Time) (models.MemorizationRecord, error) {
	if rec.Archived() {
		return rec, ErrArchived
	}
	if rec.Status == models.StatusNotStarted {
		return rec, ErrNotStarted
	}

	// A lapsed unit must be re-established before normal scheduling
	// resumes: Fail-style reset regardless of the submitted grade.
	effective := grade
	if rec.Status == models.StatusLapsed {
		effective = models.GradeFail
	}

	first := rec.LastReviewedAt == nil || rec.IntervalDays == 0

	switch effective {
	case models.GradeFail:
		rec.Strength = math.Max(p.BaselineStrength, rec.Strength*0.5)
		if first {
			rec.IntervalDays = p.SeedFailDays
		} else {
			rec.IntervalDays = 1
		}
		if rec.Status == models.StatusVerified {
			rec.Status = models.StatusLapsed
		} else {
			rec.Status = models.StatusLearning
		}
		// Lapse recovery resets the interval but only a genuine Fail
		// counts against the consecutive-fail limit.
		if grade == models.GradeFail {
			rec.ConsecutiveFails++
		} else {
			rec.ConsecutiveFails = 0
		}
	case models.GradeHard:
		rec.Strength *= 0.85
		if first {
			rec.IntervalDays = p.SeedHardDays
		} else {
			rec.IntervalDays = maxInt(1, roundDays(float64(rec.IntervalDays)*1.2))
		}
		rec.ConsecutiveFails = 0
	case models.GradeGood:
		if first {
			rec.IntervalDays = p.SeedGoodDays
		} else {
			rec.IntervalDays = maxInt(1, roundDays(float64(rec.IntervalDays)*p.factor(rec.Strength)))
		}
		rec.ConsecutiveFails = 0
	case models.GradeEasy:
		rec.Strength *= 1.15
		if first {
			rec.IntervalDays = p.SeedEasyDays
		} else {
			rec.IntervalDays = maxInt(1, roundDays(float64(rec.IntervalDays)*(p.factor(rec.Strength)+0.3)))
		}
		rec.ConsecutiveFails = 0
	default:
		return rec, errors.New("unknown grade")
	}

	// Cap forces periodic re-exposure even for long-mastered units.
	if rec.IntervalDays > p.MaxIntervalDays {
		rec.IntervalDays = p.MaxIntervalDays
	}

	reviewedAt := now
	rec.LastReviewedAt = &reviewedAt
	rec.LastOutcome = grade
	rec.DueAt = now.AddDate(0, 0, rec.IntervalDays)
	return rec, nil
}

func roundDays(f float64) int {
	return int(math.Round(f))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
