package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nadir/hifztrack/internal/errors"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/models"
)

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

type submitReviewRequest struct {
	Grade string `json:"grade"`
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
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

	var req submitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("invalid review request body: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	grade, err := models.ParseGrade(req.Grade)
	if err != nil {
		handleError(w, r, errors.NewValidationError("grade", err.Error()))
		return
	}

	log = log.WithFields(map[string]any{
		"student_id": studentID,
		"unit_id":    unitID,
		"grade":      grade,
	})
	log.Debug("submitting review")

	rec, err := s.ReviewService.SubmitReview(logger.NewContext(r.Context(), log), studentID, unitID, grade)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, rec)
}

func (s *Server) handleReviewHistory(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid student ID"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := s.ReviewService.RecentReviews(r.Context(), studentID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, map[string]any{"reviews": events})
}
