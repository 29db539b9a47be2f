package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nadir/hifztrack/internal/models"
)

// ErrVersionMismatch is returned by UpdateVersioned when the record's
// version no longer matches the one read, i.e. a concurrent writer won.
var ErrVersionMismatch = errors.New("record version mismatch")

// RecordRepository handles memorization record data access
type RecordRepository interface {
	Get(ctx context.Context, studentID, unitID int64) (*models.MemorizationRecord, error)
	Insert(ctx context.Context, rec models.MemorizationRecord) (int64, error)
	// UpdateVersioned persists rec only if the stored version equals
	// rec.Version, incrementing it on success (compare-and-swap).
	UpdateVersioned(ctx context.Context, rec models.MemorizationRecord) error
	List(ctx context.Context, filter models.RecordFilter) ([]models.MemorizationRecord, error)
	// OverdueVerified returns active Verified records with due_at before
	// the cutoff, for the lapse sweep.
	OverdueVerified(ctx context.Context, cutoff time.Time) ([]models.MemorizationRecord, error)
	ArchiveUnits(ctx context.Context, studentID int64, unitIDs []int64, at time.Time) error
}

// ReviewEventRepository handles the append-only review log
type ReviewEventRepository interface {
	Insert(ctx context.Context, ev models.ReviewEvent) (int64, error)
	ListByStudent(ctx context.Context, studentID int64, limit int) ([]models.ReviewEvent, error)
	// ReviewDays returns the distinct calendar days (UTC, truncated to
	// midnight, newest first) on which the student submitted reviews.
	ReviewDays(ctx context.Context, studentID int64) ([]time.Time, error)
}

// VerificationRepository handles teacher verification history
type VerificationRepository interface {
	Insert(ctx context.Context, v models.Verification) (int64, error)
	ListForRecord(ctx context.Context, studentID, unitID int64) ([]models.Verification, error)
}

// EnrollmentRepository handles enrollment data access
type EnrollmentRepository interface {
	Create(ctx context.Context, e models.Enrollment) (int64, error)
	Get(ctx context.Context, id int64) (*models.Enrollment, error)
	Archive(ctx context.Context, id int64, at time.Time) error
	// ActiveUnitIDs returns the union of unit IDs across the student's
	// active enrollments.
	ActiveUnitIDs(ctx context.Context, studentID int64) ([]int64, error)
	// StudentIDs returns students with an active enrollment in the course.
	StudentIDs(ctx context.Context, courseID int64) ([]int64, error)
}
