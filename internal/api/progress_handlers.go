package api

import (
	"net/http"
	"time"

	"github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
)

func (s *Server) handleStudentProgress(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid student ID"))
		return
	}

	logger.FromContext(r.Context()).Debug("fetching student progress: student_id=%d", studentID)

	progress, err := s.ProgressService.StudentProgress(r.Context(), studentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, progress)
}

func (s *Server) handleClassProgress(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid course ID"))
		return
	}

	logger.FromContext(r.Context()).Debug("fetching class progress: course_id=%d", courseID)

	progress, err := s.ProgressService.ClassProgress(r.Context(), courseID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, progress)
}

func (s *Server) handleDueQueue(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid student ID"))
		return
	}

	queue, err := s.ProgressService.DueQueue(r.Context(), studentID, time.Now())
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, map[string]any{"due": queue})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, map[string]any{"units": s.Catalog.All()})
}
