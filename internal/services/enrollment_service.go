package services

import (
	"context"
	"time"

	"github.com/nadir/hifztrack/internal/catalog"
	apperrors "github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
)

// EnrollmentService reacts to enrollment notifications from the external
// enrollment collaborator: it creates NotStarted records on enroll and
// soft-archives tracking on unenroll. Records are never deleted.
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64, unitIDs []int64) (*models.Enrollment, error)
	Unenroll(ctx context.Context, enrollmentID int64) error
}

type enrollmentService struct {
	enrollments repository.EnrollmentRepository
	records     repository.RecordRepository
	catalog     *catalog.Catalog
	progress    Invalidator
	now         func() time.Time
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollments repository.EnrollmentRepository,
	records repository.RecordRepository,
	cat *catalog.Catalog,
	progress Invalidator,
) EnrollmentService {
	return &enrollmentService{
		enrollments: enrollments,
		records:     records,
		catalog:     cat,
		progress:    progress,
		now:         time.Now,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID int64, unitIDs []int64) (*models.Enrollment, error) {
	log := logger.FromContext(ctx)
	log.Debug("enrolling: student_id=%d, course_id=%d, units=%d", studentID, courseID, len(unitIDs))

	if len(unitIDs) == 0 {
		return nil, apperrors.NewValidationError("unit_ids", "must not be empty")
	}
	for _, unitID := range unitIDs {
		if !s.catalog.Valid(unitID) {
			return nil, apperrors.NewValidationError("unit_ids", "unknown unit")
		}
	}

	enrollment := models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		UnitIDs:   unitIDs,
	}
	id, err := s.enrollments.Create(ctx, enrollment)
	if err != nil {
		log.Error("failed to create enrollment: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	enrollment.ID = id
	enrollment.CreatedAt = s.now()

	// One NotStarted record per unit. Units already tracked (from a
	// previous or overlapping enrollment) keep their state; archived
	// records are revived.
	for _, unitID := range unitIDs {
		rec, err := s.records.Get(ctx, studentID, unitID)
		if err != nil {
			log.Error("failed to check existing record: %v", err)
			return nil, apperrors.NewInternalError(err)
		}
		if rec == nil {
			if _, err := s.records.Insert(ctx, models.MemorizationRecord{
				StudentID: studentID,
				UnitID:    unitID,
				Status:    models.StatusNotStarted,
			}); err != nil {
				log.Error("failed to create record for unit %d: %v", unitID, err)
				return nil, apperrors.NewInternalError(err)
			}
			continue
		}
		if rec.Archived() {
			revived := *rec
			revived.ArchivedAt = nil
			if err := s.records.UpdateVersioned(ctx, revived); err != nil {
				log.Warn("failed to revive archived record for unit %d: %v", unitID, err)
			}
		}
	}

	if s.progress != nil {
		s.progress.Invalidate(studentID)
	}

	log.Info("enrollment created: id=%d student=%d course=%d units=%d", id, studentID, courseID, len(unitIDs))
	return &enrollment, nil
}

func (s *enrollmentService) Unenroll(ctx context.Context, enrollmentID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("unenrolling: enrollment_id=%d", enrollmentID)

	enrollment, err := s.enrollments.Get(ctx, enrollmentID)
	if err != nil {
		log.Error("failed to load enrollment: %v", err)
		return apperrors.NewInternalError(err)
	}
	if enrollment == nil {
		return apperrors.NewNotFoundError("enrollment", enrollmentID)
	}
	if enrollment.ArchivedAt != nil {
		return apperrors.NewStateConflictError("enrollment is already archived")
	}

	now := s.now()
	if err := s.enrollments.Archive(ctx, enrollmentID, now); err != nil {
		log.Error("failed to archive enrollment: %v", err)
		return apperrors.NewInternalError(err)
	}

	// Archive only units not covered by another active enrollment.
	// History is retained for audit and analytics.
	stillActive, err := s.enrollments.ActiveUnitIDs(ctx, enrollment.StudentID)
	if err != nil {
		log.Error("failed to list remaining active units: %v", err)
		return apperrors.NewInternalError(err)
	}
	active := make(map[int64]bool, len(stillActive))
	for _, id := range stillActive {
		active[id] = true
	}
	var toArchive []int64
	for _, unitID := range enrollment.UnitIDs {
		if !active[unitID] {
			toArchive = append(toArchive, unitID)
		}
	}
	if err := s.records.ArchiveUnits(ctx, enrollment.StudentID, toArchive, now); err != nil {
		log.Error("failed to archive records: %v", err)
		return apperrors.NewInternalError(err)
	}

	if s.progress != nil {
		s.progress.Invalidate(enrollment.StudentID)
	}

	log.Info("enrollment archived: id=%d, %d units archived", enrollmentID, len(toArchive))
	return nil
}
