package api

import (
	"net/http"
	"time"

	"github.com/nadir/hifztrack/internal/logger"
	"github.com/nadir/hifztrack/internal/worker"
)

// handleLapseSweep is the entry point for the external daily cron. The
// sweep runs synchronously when no pool is wired (tests), otherwise it is
// queued and the caller gets a 202.
func (s *Server) handleLapseSweep(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Info("lapse sweep triggered via admin endpoint")

	if s.JobPool == nil {
		lapsed, err := s.SweepService.RunLapseSweep(r.Context(), time.Now())
		if err != nil {
			handleError(w, r, err)
			return
		}
		s.respondJSON(w, r, http.StatusOK, map[string]any{"lapsed": lapsed})
		return
	}

	s.JobPool.Submit(&worker.LapseSweepJob{Sweep: s.SweepService, Now: time.Now()})
	s.respondJSON(w, r, http.StatusAccepted, map[string]any{"queued": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{"status": "ok"}
	if s.JobPool != nil {
		payload["queue_depth"] = s.JobPool.QueueSize()
	}
	s.respondJSON(w, r, http.StatusOK, payload)
}
