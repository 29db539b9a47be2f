package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var recordColumns = []string{
	"id", "student_id", "unit_id", "status", "strength", "interval_days",
	"due_at", "last_reviewed_at", "last_outcome", "consecutive_fails",
	"version", "archived_at", "created_at", "updated_at",
}

type recordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new RecordRepository implementation
func NewRecordRepository(db *sql.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

func scanRecord(row interface {
	Scan(dest ...any) error
}) (*models.MemorizationRecord, error) {
	var r models.MemorizationRecord
	var dueAt, lastReviewedAt, archivedAt sql.NullTime
	var lastOutcome sql.NullString
	err := row.Scan(&r.ID, &r.StudentID, &r.UnitID, &r.Status, &r.Strength, &r.IntervalDays,
		&dueAt, &lastReviewedAt, &lastOutcome, &r.ConsecutiveFails,
		&r.Version, &archivedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if dueAt.Valid {
		r.DueAt = dueAt.Time
	}
	if lastReviewedAt.Valid {
		t := lastReviewedAt.Time
		r.LastReviewedAt = &t
	}
	if lastOutcome.Valid {
		r.LastOutcome = models.Grade(lastOutcome.String)
	}
	if archivedAt.Valid {
		t := archivedAt.Time
		r.ArchivedAt = &t
	}
	return &r, nil
}

func (r *recordRepository) Get(ctx context.Context, studentID, unitID int64) (*models.MemorizationRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("record_repo")
	log.Debug("getting record: student_id=%d, unit_id=%d", studentID, unitID)

	row := r.db.QueryRowContext(ctx, `
SELECT id, student_id, unit_id, status, strength, interval_days, due_at, last_reviewed_at,
       last_outcome, consecutive_fails, version, archived_at, created_at, updated_at
FROM memorization_records
WHERE student_id = ? AND unit_id = ?
`, studentID, unitID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("record not found: student_id=%d, unit_id=%d", studentID, unitID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get record: %v", err)
		return nil, err
	}
	return rec, nil
}

func (r *recordRepository) Insert(ctx context.Context, rec models.MemorizationRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("record_repo")
	log.Debug("inserting record: student_id=%d, unit_id=%d, status=%s", rec.StudentID, rec.UnitID, rec.Status)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO memorization_records (student_id, unit_id, status, strength, interval_days, due_at, consecutive_fails, version)
VALUES (?, ?, ?, ?, ?, ?, ?, 1)
`, rec.StudentID, rec.UnitID, rec.Status, rec.Strength, rec.IntervalDays, nullTime(rec.DueAt), rec.ConsecutiveFails)
	if err != nil {
		log.Error("failed to insert record: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get record id: %v", err)
		return 0, err
	}
	log.Debug("record inserted: id=%d", id)
	return id, nil
}

func (r *recordRepository) UpdateVersioned(ctx context.Context, rec models.MemorizationRecord) error {
	log := logger.FromContext(ctx).WithPrefix("record_repo")
	log.Debug("updating record: id=%d, status=%s, interval=%d, version=%d", rec.ID, rec.Status, rec.IntervalDays, rec.Version)

	res, err := r.db.ExecContext(ctx, `
UPDATE memorization_records
SET status = ?, strength = ?, interval_days = ?, due_at = ?, last_reviewed_at = ?,
    last_outcome = ?, consecutive_fails = ?, archived_at = ?,
    version = version + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND version = ?
`, rec.Status, rec.Strength, rec.IntervalDays, nullTime(rec.DueAt), rec.LastReviewedAt,
		nullString(string(rec.LastOutcome)), rec.ConsecutiveFails, rec.ArchivedAt,
		rec.ID, rec.Version)
	if err != nil {
		log.Error("failed to update record: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Debug("version mismatch on record id=%d (version %d)", rec.ID, rec.Version)
		return repository.ErrVersionMismatch
	}
	return nil
}

func (r *recordRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.MemorizationRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("record_repo")
	log.Debug("listing records: student_id=%d, status=%s", filter.StudentID, filter.Status)

	query := sqlBuilder.Select(recordColumns...).From("memorization_records")

	if filter.StudentID != 0 {
		query = query.Where(squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.DueBefore != nil {
		query = query.Where(squirrel.LtOrEq{"due_at": *filter.DueBefore})
	}
	if !filter.IncludeArchived {
		query = query.Where(squirrel.Eq{"archived_at": nil})
	}
	query = query.OrderBy("unit_id ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build record query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query records: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.MemorizationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Error("failed to scan record row: %v", err)
			return nil, err
		}
		records = append(records, *rec)
	}
	log.Debug("found %d records", len(records))
	return records, rows.Err()
}

func (r *recordRepository) OverdueVerified(ctx context.Context, cutoff time.Time) ([]models.MemorizationRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("record_repo")
	log.Debug("scanning overdue verified records: cutoff=%s", cutoff.Format(time.RFC3339))

	rows, err := r.db.QueryContext(ctx, `
SELECT id, student_id, unit_id, status, strength, interval_days, due_at, last_reviewed_at,
       last_outcome, consecutive_fails, version, archived_at, created_at, updated_at
FROM memorization_records
WHERE status = ? AND archived_at IS NULL AND due_at < ?
ORDER BY due_at ASC
`, models.StatusVerified, cutoff)
	if err != nil {
		log.Error("failed to query overdue records: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.MemorizationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Error("failed to scan overdue record: %v", err)
			return nil, err
		}
		records = append(records, *rec)
	}
	log.Debug("found %d overdue verified records", len(records))
	return records, rows.Err()
}

func (r *recordRepository) ArchiveUnits(ctx context.Context, studentID int64, unitIDs []int64, at time.Time) error {
	if len(unitIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx).WithPrefix("record_repo")
	log.Debug("archiving %d units for student %d", len(unitIDs), studentID)

	query := sqlBuilder.Update("memorization_records").
		Set("archived_at", at).
		Set("updated_at", at).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"student_id": studentID, "unit_id": unitIDs}).
		Where(squirrel.Eq{"archived_at": nil})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		log.Error("failed to archive records: %v", err)
		return err
	}
	return nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
