package services

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
	"github.com/nadir/hifztrack/internal/workflow"
)

// VerificationService applies teacher verdicts to pending records.
type VerificationService interface {
	Verify(ctx context.Context, studentID, unitID, teacherID int64, verdict models.Verdict, note string) (*models.MemorizationRecord, error)
	History(ctx context.Context, studentID, unitID int64) ([]models.Verification, error)
}

type verificationService struct {
	records       repository.RecordRepository
	verifications repository.VerificationRepository
	rules         workflow.Rules
	progress      Invalidator
	now           func() time.Time
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(
	records repository.RecordRepository,
	verifications repository.VerificationRepository,
	rules workflow.Rules,
	progress Invalidator,
) VerificationService {
	return &verificationService{
		records:       records,
		verifications: verifications,
		rules:         rules,
		progress:      progress,
		now:           time.Now,
	}
}

func (s *verificationService) Verify(ctx context.Context, studentID, unitID, teacherID int64, verdict models.Verdict, note string) (*models.MemorizationRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("verifying: student_id=%d, unit_id=%d, teacher_id=%d, verdict=%s", studentID, unitID, teacherID, verdict)

	if !verdict.Valid() {
		return nil, apperrors.NewValidationError("verdict", "must be pass or fail")
	}

	rec, err := s.records.Get(ctx, studentID, unitID)
	if err != nil {
		log.Error("failed to load record: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("record", unitID)
	}
	if rec.Archived() {
		return nil, apperrors.NewUnitArchivedError(studentID, unitID)
	}

	now := s.now()
	updated, err := s.rules.Verify(*rec, verdict, now)
	if err != nil {
		if errors.Is(err, workflow.ErrNotPending) {
			return nil, apperrors.NewStateConflictError(err.Error())
		}
		return nil, apperrors.NewInternalError(err)
	}

	// History first: a Verified status without a pass verdict on file
	// would break the completion gate.
	if _, err := s.verifications.Insert(ctx, models.Verification{
		StudentID: studentID,
		UnitID:    unitID,
		TeacherID: teacherID,
		Verdict:   verdict,
		Note:      note,
		CreatedAt: now,
	}); err != nil {
		log.Error("failed to append verification history: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	if err := s.records.UpdateVersioned(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrVersionMismatch) {
			log.Warn("concurrent modification during verification: student=%d unit=%d", studentID, unitID)
			return nil, apperrors.NewConcurrentModificationError(studentID, unitID)
		}
		log.Error("failed to persist verified record: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	updated.Version++

	if s.progress != nil {
		s.progress.Invalidate(studentID)
	}

	log.Info("verification recorded: student=%d unit=%d verdict=%s status=%s", studentID, unitID, verdict, updated.Status)
	return &updated, nil
}

func (s *verificationService) History(ctx context.Context, studentID, unitID int64) ([]models.Verification, error) {
	history, err := s.verifications.ListForRecord(ctx, studentID, unitID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return history, nil
}
