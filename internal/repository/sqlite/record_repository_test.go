package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nadir/hifztrack/internal/db"
	"github.com/nadir/hifztrack/internal/models"
	"github.com/nadir/hifztrack/internal/repository"
	"github.com/nadir/hifztrack/internal/repository/sqlite"
	"github.com/nadir/hifztrack/internal/testutil"
)

type RecordRepositorySuite struct {
	suite.Suite
	database *db.DB
	repo     repository.RecordRepository
}

func (s *RecordRepositorySuite) SetupTest() {
	s.database = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewRecordRepository(s.database.DB)
}

func (s *RecordRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.database)
}

func (s *RecordRepositorySuite) insertRecord(studentID, unitID int64, status models.Status) *models.MemorizationRecord {
	ctx := context.Background()
	_, err := s.repo.Insert(ctx, models.MemorizationRecord{
		StudentID: studentID,
		UnitID:    unitID,
		Status:    status,
		Strength:  2.0,
	})
	s.Require().NoError(err)

	rec, err := s.repo.Get(ctx, studentID, unitID)
	s.Require().NoError(err)
	s.Require().NotNil(rec)
	return rec
}

func (s *RecordRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.MemorizationRecord{
		StudentID: 1,
		UnitID:    112,
		Status:    models.StatusNotStarted,
		Strength:  2.0,
	})
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	rec, err := s.repo.Get(ctx, 1, 112)
	s.Require().NoError(err)
	s.Require().NotNil(rec)
	s.Assert().Equal(models.StatusNotStarted, rec.Status)
	s.Assert().Equal(2.0, rec.Strength)
	s.Assert().Equal(int64(1), rec.Version, "new records start at version 1")
	s.Assert().Nil(rec.LastReviewedAt)
	s.Assert().False(rec.Archived())
}

func (s *RecordRepositorySuite) TestGet_NotFound() {
	rec, err := s.repo.Get(context.Background(), 1, 999)
	s.Require().NoError(err)
	s.Assert().Nil(rec)
}

func (s *RecordRepositorySuite) TestInsert_DuplicateUnitRejected() {
	ctx := context.Background()
	s.insertRecord(1, 112, models.StatusNotStarted)

	_, err := s.repo.Insert(ctx, models.MemorizationRecord{
		StudentID: 1,
		UnitID:    112,
		Status:    models.StatusNotStarted,
	})
	s.Assert().Error(err, "one record per (student, unit)")
}

func (s *RecordRepositorySuite) TestUpdateVersioned() {
	ctx := context.Background()
	rec := s.insertRecord(1, 112, models.StatusLearning)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rec.Status = models.StatusPendingVerification
	rec.IntervalDays = 14
	rec.DueAt = now.AddDate(0, 0, 14)
	rec.LastReviewedAt = &now
	rec.LastOutcome = models.GradeGood

	err := s.repo.UpdateVersioned(ctx, *rec)
	s.Require().NoError(err)

	updated, err := s.repo.Get(ctx, 1, 112)
	s.Require().NoError(err)
	s.Assert().Equal(models.StatusPendingVerification, updated.Status)
	s.Assert().Equal(14, updated.IntervalDays)
	s.Assert().Equal(models.GradeGood, updated.LastOutcome)
	s.Require().NotNil(updated.LastReviewedAt)
	s.Assert().Equal(int64(2), updated.Version, "a successful write bumps the version")
}

func (s *RecordRepositorySuite) TestUpdateVersioned_Conflict() {
	ctx := context.Background()
	rec := s.insertRecord(1, 112, models.StatusLearning)

	first := *rec
	first.IntervalDays = 3
	s.Require().NoError(s.repo.UpdateVersioned(ctx, first))

	// Second writer still holds the original version.
	stale := *rec
	stale.IntervalDays = 5
	err := s.repo.UpdateVersioned(ctx, stale)
	s.Assert().ErrorIs(err, repository.ErrVersionMismatch)

	current, err := s.repo.Get(ctx, 1, 112)
	s.Require().NoError(err)
	s.Assert().Equal(3, current.IntervalDays, "the losing write changes nothing")
	s.Assert().Equal(int64(2), current.Version)
}

func (s *RecordRepositorySuite) TestList_Filters() {
	ctx := context.Background()
	s.insertRecord(1, 1, models.StatusLearning)
	s.insertRecord(1, 2, models.StatusVerified)
	s.insertRecord(2, 3, models.StatusLearning)

	records, err := s.repo.List(ctx, models.RecordFilter{StudentID: 1})
	s.Require().NoError(err)
	s.Assert().Len(records, 2)

	records, err = s.repo.List(ctx, models.RecordFilter{StudentID: 1, Status: models.StatusVerified})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(int64(2), records[0].UnitID)
}

func (s *RecordRepositorySuite) TestList_DueBefore() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	due := s.insertRecord(1, 1, models.StatusLearning)
	due.DueAt = now.AddDate(0, 0, -1)
	s.Require().NoError(s.repo.UpdateVersioned(ctx, *due))

	future := s.insertRecord(1, 2, models.StatusLearning)
	future.DueAt = now.AddDate(0, 0, 10)
	s.Require().NoError(s.repo.UpdateVersioned(ctx, *future))

	records, err := s.repo.List(ctx, models.RecordFilter{StudentID: 1, DueBefore: &now})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(int64(1), records[0].UnitID)
}

func (s *RecordRepositorySuite) TestList_ExcludesArchivedByDefault() {
	ctx := context.Background()
	s.insertRecord(1, 1, models.StatusLearning)
	s.insertRecord(1, 2, models.StatusLearning)
	s.Require().NoError(s.repo.ArchiveUnits(ctx, 1, []int64{2}, time.Now().UTC()))

	records, err := s.repo.List(ctx, models.RecordFilter{StudentID: 1})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(int64(1), records[0].UnitID)

	records, err = s.repo.List(ctx, models.RecordFilter{StudentID: 1, IncludeArchived: true})
	s.Require().NoError(err)
	s.Assert().Len(records, 2)
}

func (s *RecordRepositorySuite) TestOverdueVerified() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	cutoff := now.AddDate(0, 0, -30)

	overdue := s.insertRecord(1, 1, models.StatusVerified)
	overdue.DueAt = cutoff.AddDate(0, 0, -5)
	s.Require().NoError(s.repo.UpdateVersioned(ctx, *overdue))

	fresh := s.insertRecord(1, 2, models.StatusVerified)
	fresh.DueAt = now.AddDate(0, 0, 10)
	s.Require().NoError(s.repo.UpdateVersioned(ctx, *fresh))

	learning := s.insertRecord(1, 3, models.StatusLearning)
	learning.DueAt = cutoff.AddDate(0, 0, -5)
	s.Require().NoError(s.repo.UpdateVersioned(ctx, *learning))

	records, err := s.repo.OverdueVerified(ctx, cutoff)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(int64(1), records[0].UnitID)
}

func (s *RecordRepositorySuite) TestArchiveUnits() {
	ctx := context.Background()
	rec := s.insertRecord(1, 1, models.StatusLearning)
	s.insertRecord(1, 2, models.StatusLearning)

	at := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.ArchiveUnits(ctx, 1, []int64{1}, at))

	archived, err := s.repo.Get(ctx, 1, 1)
	s.Require().NoError(err)
	s.Assert().True(archived.Archived())
	s.Assert().Equal(rec.Version+1, archived.Version, "archiving counts as a write")

	untouched, err := s.repo.Get(ctx, 1, 2)
	s.Require().NoError(err)
	s.Assert().False(untouched.Archived())
}

func (s *RecordRepositorySuite) TestArchiveUnits_EmptyListNoop() {
	err := s.repo.ArchiveUnits(context.Background(), 1, nil, time.Now().UTC())
	s.Assert().NoError(err)
}

func TestRecordRepositorySuite(t *testing.T) {
	suite.Run(t, new(RecordRepositorySuite))
}
