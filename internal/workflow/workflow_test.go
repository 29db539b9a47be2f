package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/workflow"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestBegin(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{Status: models.StatusNotStarted}

	started, err := rules.Begin(rec)

	require.NoError(t, err)
	assert.Equal(t, models.StatusLearning, started.Status)
	assert.Equal(t, rules.BaselineStrength, started.Strength, "begin seeds the baseline strength")
}

func TestBegin_AlreadyStarted(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{Status: models.StatusLearning}

	_, err := rules.Begin(rec)

	assert.ErrorIs(t, err, workflow.ErrAlreadyStarted)
}

func TestAfterReview_PromotesAtMasteryThreshold(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status:       models.StatusLearning,
		IntervalDays: rules.MasteryThresholdDays,
	}

	updated := rules.AfterReview(rec, models.GradeGood)

	assert.Equal(t, models.StatusPendingVerification, updated.Status,
		"crossing the mastery threshold on a success hands the unit to a teacher")
}

func TestAfterReview_NoPromotionBelowThreshold(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status:       models.StatusLearning,
		IntervalDays: rules.MasteryThresholdDays - 1,
	}

	updated := rules.AfterReview(rec, models.GradeGood)

	assert.Equal(t, models.StatusLearning, updated.Status)
}

func TestAfterReview_NoPromotionOnHard(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status:       models.StatusLearning,
		IntervalDays: rules.MasteryThresholdDays + 5,
	}

	updated := rules.AfterReview(rec, models.GradeHard)

	assert.Equal(t, models.StatusLearning, updated.Status,
		"only good or easy outcomes can promote")
}

func TestAfterReview_LapsesOnRepeatedFails(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status:           models.StatusLearning,
		IntervalDays:     1,
		ConsecutiveFails: rules.ConsecutiveFailLimit,
	}

	updated := rules.AfterReview(rec, models.GradeFail)

	assert.Equal(t, models.StatusLapsed, updated.Status)
}

func TestAfterReview_IgnoresNonLearning(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status:       models.StatusVerified,
		IntervalDays: 100,
	}

	updated := rules.AfterReview(rec, models.GradeGood)

	assert.Equal(t, models.StatusVerified, updated.Status)
}

func TestVerify_Pass(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status:       models.StatusPendingVerification,
		IntervalDays: 14,
	}

	updated, err := rules.Verify(rec, models.VerdictPass, now)

	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, updated.Status)
	assert.Equal(t, 14, updated.IntervalDays, "a pass keeps the earned interval")
}

func TestVerify_FailDemotes(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status:       models.StatusPendingVerification,
		IntervalDays: 14,
	}

	updated, err := rules.Verify(rec, models.VerdictFail, now)

	require.NoError(t, err)
	assert.Equal(t, models.StatusLearning, updated.Status)
	assert.Equal(t, 1, updated.IntervalDays, "a failed verification resets the interval")
	assert.Equal(t, now.AddDate(0, 0, 1), updated.DueAt)
}

func TestVerify_RejectsNonPending(t *testing.T) {
	rules := workflow.DefaultRules()

	for _, status := range []models.Status{
		models.StatusNotStarted,
		models.StatusLearning,
		models.StatusVerified,
		models.StatusLapsed,
	} {
		rec := models.MemorizationRecord{Status: status}
		_, err := rules.Verify(rec, models.VerdictPass, now)
		assert.ErrorIs(t, err, workflow.ErrNotPending, "status %s", status)
	}
}

func TestShouldLapse(t *testing.T) {
	rules := workflow.DefaultRules()

	overdue := models.MemorizationRecord{
		Status: models.StatusVerified,
		DueAt:  now.AddDate(0, 0, -(rules.LapseGraceDays + 1)),
	}
	assert.True(t, rules.ShouldLapse(overdue, now))

	withinGrace := models.MemorizationRecord{
		Status: models.StatusVerified,
		DueAt:  now.AddDate(0, 0, -(rules.LapseGraceDays - 1)),
	}
	assert.False(t, rules.ShouldLapse(withinGrace, now), "grace window protects recently-due units")

	learning := overdue
	learning.Status = models.StatusLearning
	assert.False(t, rules.ShouldLapse(learning, now), "only verified units lapse via the sweep")

	archived := overdue
	archivedAt := now
	archived.ArchivedAt = &archivedAt
	assert.False(t, rules.ShouldLapse(archived, now), "archived units are ignored")
}

func TestLapse(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status: models.StatusVerified,
		DueAt:  now.AddDate(0, 0, -(rules.LapseGraceDays + 10)),
	}

	updated, err := rules.Lapse(rec, now)

	require.NoError(t, err)
	assert.Equal(t, models.StatusLapsed, updated.Status)
}

func TestLapse_RejectsIneligible(t *testing.T) {
	rules := workflow.DefaultRules()
	rec := models.MemorizationRecord{
		Status: models.StatusVerified,
		DueAt:  now.AddDate(0, 0, 1),
	}

	_, err := rules.Lapse(rec, now)

	assert.Error(t, err)
}
