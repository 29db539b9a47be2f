package api

import (
	"encoding/json"
	"net/http"

	"github.com/nadir/hifztrack/internal/catalog"
	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/services"
	"github.com/nadir/hifztrack/internal/worker"
)

type Server struct {
	Catalog             *catalog.Catalog
	ReviewService       services.ReviewService
	VerificationService services.VerificationService
	EnrollmentService   services.EnrollmentService
	ProgressService     services.ProgressService
	SweepService        services.SweepService
	JobPool             *worker.Pool
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads a request body into dst, limiting the body size.
func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
