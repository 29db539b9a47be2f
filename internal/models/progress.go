package models

import "time"

// Enrollment ties a student to a course's unit list. The engine tracks one
// NotStarted record per unit when notified of a new enrollment.
type Enrollment struct {
	ID         int64      `json:"id"`
	StudentID  int64      `json:"student_id"`
	CourseID   int64      `json:"course_id"`
	UnitIDs    []int64    `json:"unit_ids,omitempty"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// StudentProgress is a recomputed per-student rollup. Never authoritative;
// regenerated entirely by the aggregator.
type StudentProgress struct {
	StudentID            int64     `json:"student_id"`
	TotalUnits           int       `json:"total_units"`
	UnitsVerified        int       `json:"units_verified"`
	UnitsInProgress      int       `json:"units_in_progress"`
	UnitsPending         int       `json:"units_pending"`
	UnitsLapsed          int       `json:"units_lapsed"`
	PercentComplete      float64   `json:"percent_complete"`
	VersePercentComplete float64   `json:"verse_percent_complete"`
	UnitsDueToday        int       `json:"units_due_today"`
	CurrentStreakDays    int       `json:"current_streak_days"`
	Incomplete           bool      `json:"incomplete"`
	ComputedAt           time.Time `json:"computed_at"`
}

// ClassProgress aggregates StudentProgress across a course's enrolled students.
type ClassProgress struct {
	CourseID           int64          `json:"course_id"`
	StudentCount       int            `json:"student_count"`
	AvgPercentComplete float64        `json:"avg_percent_complete"`
	StatusHistogram    map[Status]int `json:"status_histogram"`
	UnitsDueToday      int            `json:"units_due_today"`
	Incomplete         bool           `json:"incomplete"`
	ComputedAt         time.Time      `json:"computed_at"`
}

// DueUnit is one entry in a student's review queue.
type DueUnit struct {
	UnitID       int64     `json:"unit_id"`
	UnitName     string    `json:"unit_name"`
	VerseCount   int       `json:"verse_count"`
	Status       Status    `json:"status"`
	IntervalDays int       `json:"interval_days"`
	DueAt        time.Time `json:"due_at"`
}
