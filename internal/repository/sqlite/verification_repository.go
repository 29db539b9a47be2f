package sqlite

import (
	"context"
	"database/sql"

	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
)

type verificationRepository struct {
	db *sql.DB
}

// NewVerificationRepository creates a new VerificationRepository implementation
func NewVerificationRepository(db *sql.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Insert(ctx context.Context, v models.Verification) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("verification_repo")
	log.Debug("inserting verification: student_id=%d, unit_id=%d, teacher_id=%d, verdict=%s",
		v.StudentID, v.UnitID, v.TeacherID, v.Verdict)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO verifications (student_id, unit_id, teacher_id, verdict, note)
VALUES (?, ?, ?, ?, ?)
`, v.StudentID, v.UnitID, v.TeacherID, v.Verdict, v.Note)
	if err != nil {
		log.Error("failed to insert verification: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *verificationRepository) ListForRecord(ctx context.Context, studentID, unitID int64) ([]models.Verification, error) {
	log := logger.FromContext(ctx).WithPrefix("verification_repo")
	log.Debug("listing verifications: student_id=%d, unit_id=%d", studentID, unitID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, student_id, unit_id, teacher_id, verdict, note, created_at
FROM verifications
WHERE student_id = ? AND unit_id = ?
ORDER BY created_at ASC, id ASC
`, studentID, unitID)
	if err != nil {
		log.Error("failed to query verifications: %v", err)
		return nil, err
	}
	defer rows.Close()

	var history []models.Verification
	for rows.Next() {
		var v models.Verification
		if err := rows.Scan(&v.ID, &v.StudentID, &v.UnitID, &v.TeacherID, &v.Verdict, &v.Note, &v.CreatedAt); err != nil {
			log.Error("failed to scan verification: %v", err)
			return nil, err
		}
		history = append(history, v)
	}
	return history, rows.Err()
}
