package api

import (
	"net/http"

	"github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/worker"
)

type enrollRequest struct {
	StudentID int64   `json:"student_id"`
	CourseID  int64   `json:"course_id"`
	UnitIDs   []int64 `json:"unit_ids"`
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req enrollRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("invalid enrollment request body: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}
	if req.StudentID == 0 {
		handleError(w, r, errors.NewValidationError("student_id", "required"))
		return
	}
	if req.CourseID == 0 {
		handleError(w, r, errors.NewValidationError("course_id", "required"))
		return
	}

	log = log.WithFields(map[string]any{
		"student_id": req.StudentID,
		"course_id":  req.CourseID,
		"unit_count": len(req.UnitIDs),
	})
	log.Debug("creating enrollment")

	enrollment, err := s.EnrollmentService.Enroll(logger.NewContext(r.Context(), log), req.StudentID, req.CourseID, req.UnitIDs)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// Warm the student's snapshot so the first dashboard load after
	// enrolling is served from cache.
	if s.JobPool != nil {
		s.JobPool.Submit(&worker.RefreshProgressJob{
			Progress:   s.ProgressService,
			StudentIDs: []int64{req.StudentID},
		})
	}

	s.respondJSON(w, r, http.StatusCreated, enrollment)
}

func (s *Server) handleUnenroll(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid enrollment ID"))
		return
	}

	if err := s.EnrollmentService.Unenroll(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, map[string]any{"archived": true})
}
