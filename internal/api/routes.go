package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(timeoutMiddleware(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)

		r.Post("/enrollments", s.handleEnroll)
		r.Post("/enrollments/{id}/archive", s.handleUnenroll)

		r.Post("/students/{studentID}/units/{unitID}/reviews", s.handleSubmitReview)
		r.Get("/students/{studentID}/reviews", s.handleReviewHistory)
		r.Post("/students/{studentID}/units/{unitID}/verification", s.handleVerify)
		r.Get("/students/{studentID}/units/{unitID}/verification", s.handleVerificationHistory)

		r.Get("/students/{studentID}/progress", s.handleStudentProgress)
		r.Get("/students/{studentID}/due", s.handleDueQueue)
		r.Get("/classes/{courseID}/progress", s.handleClassProgress)

		r.Post("/admin/lapse-sweep", s.handleLapseSweep)
	})

	return r
}
