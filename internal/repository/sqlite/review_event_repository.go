package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
)

type reviewEventRepository struct {
	db *sql.DB
}

// NewReviewEventRepository creates a new ReviewEventRepository implementation
func NewReviewEventRepository(db *sql.DB) repository.ReviewEventRepository {
	return &reviewEventRepository{db: db}
}

func (r *reviewEventRepository) Insert(ctx context.Context, ev models.ReviewEvent) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("review_event_repo")
	log.Debug("inserting review event: student_id=%d, unit_id=%d, grade=%s", ev.StudentID, ev.UnitID, ev.Grade)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO review_events (student_id, unit_id, grade, interval_days, reviewed_at)
VALUES (?, ?, ?, ?, ?)
`, ev.StudentID, ev.UnitID, ev.Grade, ev.IntervalDays, ev.ReviewedAt)
	if err != nil {
		log.Error("failed to insert review event: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *reviewEventRepository) ListByStudent(ctx context.Context, studentID int64, limit int) ([]models.ReviewEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("review_event_repo")
	log.Debug("listing review events: student_id=%d, limit=%d", studentID, limit)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, student_id, unit_id, grade, interval_days, reviewed_at
FROM review_events
WHERE student_id = ?
ORDER BY reviewed_at DESC
LIMIT ?
`, studentID, limit)
	if err != nil {
		log.Error("failed to query review events: %v", err)
		return nil, err
	}
	defer rows.Close()

	var events []models.ReviewEvent
	for rows.Next() {
		var ev models.ReviewEvent
		if err := rows.Scan(&ev.ID, &ev.StudentID, &ev.UnitID, &ev.Grade, &ev.IntervalDays, &ev.ReviewedAt); err != nil {
			log.Error("failed to scan review event: %v", err)
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *reviewEventRepository) ReviewDays(ctx context.Context, studentID int64) ([]time.Time, error) {
	log := logger.FromContext(ctx).WithPrefix("review_event_repo")
	log.Debug("fetching distinct review days: student_id=%d", studentID)

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT date(reviewed_at)
FROM review_events
WHERE student_id = ?
ORDER BY date(reviewed_at) DESC
`, studentID)
	if err != nil {
		log.Error("failed to query review days: %v", err)
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			log.Error("failed to scan review day: %v", err)
			return nil, err
		}
		t, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			log.Warn("skipping unparseable review day %q: %v", day, err)
			continue
		}
		days = append(days, t)
	}
	log.Debug("found %d distinct review days", len(days))
	return days, rows.Err()
}
