package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
)

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository implementation
func NewEnrollmentRepository(db *sql.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, e models.Enrollment) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("enrollment_repo")
	log.Debug("creating enrollment: student_id=%d, course_id=%d, units=%d", e.StudentID, e.CourseID, len(e.UnitIDs))

	var id int64
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		res, err := t.ExecContext(ctx, `
INSERT INTO enrollments (student_id, course_id) VALUES (?, ?)
`, e.StudentID, e.CourseID)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}
		for _, unitID := range e.UnitIDs {
			if _, err := t.ExecContext(ctx, `
INSERT INTO enrollment_units (enrollment_id, unit_id) VALUES (?, ?)
`, id, unitID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create enrollment: %v", err)
		return 0, err
	}
	log.Debug("enrollment created: id=%d", id)
	return id, nil
}

func (r *enrollmentRepository) Get(ctx context.Context, id int64) (*models.Enrollment, error) {
	log := logger.FromContext(ctx).WithPrefix("enrollment_repo")

	var e models.Enrollment
	var archivedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT id, student_id, course_id, archived_at, created_at
FROM enrollments
WHERE id = ?
`, id).Scan(&e.ID, &e.StudentID, &e.CourseID, &archivedAt, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("enrollment not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get enrollment: %v", err)
		return nil, err
	}
	if archivedAt.Valid {
		t := archivedAt.Time
		e.ArchivedAt = &t
	}

	rows, err := r.db.QueryContext(ctx, `SELECT unit_id FROM enrollment_units WHERE enrollment_id = ? ORDER BY unit_id`, id)
	if err != nil {
		log.Error("failed to query enrollment units: %v", err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var unitID int64
		if err := rows.Scan(&unitID); err != nil {
			return nil, err
		}
		e.UnitIDs = append(e.UnitIDs, unitID)
	}
	return &e, rows.Err()
}

func (r *enrollmentRepository) Archive(ctx context.Context, id int64, at time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("enrollment_repo")
	log.Debug("archiving enrollment: id=%d", id)

	_, err := r.db.ExecContext(ctx, `
UPDATE enrollments SET archived_at = ? WHERE id = ? AND archived_at IS NULL
`, at, id)
	if err != nil {
		log.Error("failed to archive enrollment: %v", err)
	}
	return err
}

func (r *enrollmentRepository) ActiveUnitIDs(ctx context.Context, studentID int64) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("enrollment_repo")
	log.Debug("fetching active unit ids: student_id=%d", studentID)

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT eu.unit_id
FROM enrollment_units eu
JOIN enrollments e ON e.id = eu.enrollment_id
WHERE e.student_id = ? AND e.archived_at IS NULL
ORDER BY eu.unit_id
`, studentID)
	if err != nil {
		log.Error("failed to query active unit ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *enrollmentRepository) StudentIDs(ctx context.Context, courseID int64) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("enrollment_repo")
	log.Debug("fetching students in course: course_id=%d", courseID)

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT student_id
FROM enrollments
WHERE course_id = ? AND archived_at IS NULL
ORDER BY student_id
`, courseID)
	if err != nil {
		log.Error("failed to query course students: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
