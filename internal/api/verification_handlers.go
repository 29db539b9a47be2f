package api

import (
	"net/http"

	"github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
)

type verifyRequest struct {
	TeacherID int64  `json:"teacher_id"`
	Verdict   string `json:"verdict"`
	Note      string `json:"note"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	studentID, err := pathID(r, "studentID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid student ID"))
		return
	}
	unitID, err := pathID(r, "unitID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid unit ID"))
		return
	}

	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("invalid verification request body: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}
	if req.TeacherID == 0 {
		handleError(w, r, errors.NewValidationError("teacher_id", "required"))
		return
	}

	verdict, err := models.ParseVerdict(req.Verdict)
	if err != nil {
		handleError(w, r, errors.NewValidationError("verdict", err.Error()))
		return
	}

	log = log.WithFields(map[string]any{
		"student_id": studentID,
		"unit_id":    unitID,
		"teacher_id": req.TeacherID,
		"verdict":    verdict,
	})
	log.Debug("applying teacher verdict")

	rec, err := s.VerificationService.Verify(logger.NewContext(r.Context(), log), studentID, unitID, req.TeacherID, verdict, req.Note)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, rec)
}

func (s *Server) handleVerificationHistory(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid student ID"))
		return
	}
	unitID, err := pathID(r, "unitID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid unit ID"))
		return
	}

	history, err := s.VerificationService.History(r.Context(), studentID, unitID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, map[string]any{"history": history})
}
