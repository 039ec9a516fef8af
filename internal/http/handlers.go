package http

import (
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).String(),
	})
}

// handleReady verifies dependencies are reachable.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	httpStatus := http.StatusOK

	// The store creates its directory lazily on first save; readiness asks
	// the same thing the save path will.
	checks := map[string]string{"memory": "ok"}
	if err := os.MkdirAll(filepath.Dir(s.svc.MemoryPath()), 0755); err != nil {
		checks["memory"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}

	if s.history != nil {
		checks["history"] = "ok"
		if err := s.history.Ping(r.Context()); err != nil {
			checks["history"] = "failed: " + err.Error()
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		}
	} else {
		checks["history"] = "not_configured"
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}
