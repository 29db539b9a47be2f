package models

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a memorization record.
type Status string

const (
	StatusNotStarted          Status = "not_started"
	StatusLearning            Status = "learning"
	StatusPendingVerification Status = "pending_verification"
	StatusVerified            Status = "verified"
	StatusLapsed              Status = "lapsed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusLearning, StatusPendingVerification, StatusVerified, StatusLapsed:
		return true
	}
	return false
}

// ParseStatus parses a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Grade is a review outcome.
type Grade string

const (
	GradeFail Grade = "fail"
	GradeHard Grade = "hard"
	GradeGood Grade = "good"
	GradeEasy Grade = "easy"
)

// Valid reports whether g is one of the known grades.
func (g Grade) Valid() bool {
	switch g {
	case GradeFail, GradeHard, GradeGood, GradeEasy:
		return true
	}
	return false
}

// ParseGrade parses a wire string into a Grade.
func ParseGrade(s string) (Grade, error) {
	g := Grade(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown grade %q", s)
	}
	return g, nil
}

// Success reports whether the grade counts as a successful recall.
func (g Grade) Success() bool {
	return g == GradeGood || g == GradeEasy
}

// Verdict is a teacher's judgement on a pending verification.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// Valid reports whether v is one of the known verdicts.
func (v Verdict) Valid() bool {
	return v == VerdictPass || v == VerdictFail
}

// ParseVerdict parses a wire string into a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	v := Verdict(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown verdict %q", s)
	}
	return v, nil
}

// MemorizationRecord is the per-(student, unit) scheduling state.
// Version is an optimistic lock counter incremented on every write.
type MemorizationRecord struct {
	ID               int64      `json:"id"`
	StudentID        int64      `json:"student_id"`
	UnitID           int64      `json:"unit_id"`
	Status           Status     `json:"status"`
	Strength         float64    `json:"strength"`
	IntervalDays     int        `json:"interval_days"`
	DueAt            time.Time  `json:"due_at"`
	LastReviewedAt   *time.Time `json:"last_reviewed_at"`
	LastOutcome      Grade      `json:"last_outcome,omitempty"`
	ConsecutiveFails int        `json:"consecutive_fails"`
	Version          int64      `json:"version"`
	ArchivedAt       *time.Time `json:"archived_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Archived reports whether the record has been soft-archived.
func (r MemorizationRecord) Archived() bool {
	return r.ArchivedAt != nil
}

// Due reports whether the record is due for review at the given time.
func (r MemorizationRecord) Due(now time.Time) bool {
	return r.Status != StatusNotStarted && !r.DueAt.After(now)
}

// ReviewEvent is an append-only audit row for a single review submission.
type ReviewEvent struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"student_id"`
	UnitID       int64     `json:"unit_id"`
	Grade        Grade     `json:"grade"`
	IntervalDays int       `json:"interval_days"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

// Verification is one teacher verification event in a record's history.
type Verification struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	UnitID    int64     `json:"unit_id"`
	TeacherID int64     `json:"teacher_id"`
	Verdict   Verdict   `json:"verdict"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordFilter selects records for listing.
type RecordFilter struct {
	StudentID       int64
	Status          Status
	DueBefore       *time.Time
	IncludeArchived bool
	Limit           int
	Offset          int
}
