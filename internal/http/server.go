// Package http exposes the advisory backend over JSON. Handlers stay thin:
// they decode payloads, call into the services layer, and serialize the
// results.
package http

import (
	"net/http"
	"time"

	applog "pal/internal/log"
	"pal/internal/services"
	"pal/internal/storage"
)

type Server struct {
	http.Server

	svc          *services.AdvisorService
	history      *storage.SQLiteRepository
	historyLimit int
	startedAt    time.Time
}

// NewServer builds the API server. history may be nil, which disables the
// KPI history endpoint.
func NewServer(addr string, svc *services.AdvisorService, history *storage.SQLiteRepository, historyLimit int, logger *applog.Logger) *Server {
	s := &Server{
		svc:          svc,
		history:      history,
		historyLimit: historyLimit,
		startedAt:    time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/memory/project", s.handleAddProject)
	mux.HandleFunc("/api/memory/projects", s.handleListProjects)
	mux.HandleFunc("/api/transactions", s.handleTransactions)
	if history != nil {
		mux.HandleFunc("/api/kpis/history", s.handleKPIHistory)
	}

	httpLogger := logger.WithComponent(applog.ComponentHTTP)
	handler := applog.Middleware(httpLogger)(applog.AccessLog(httpLogger)(mux))

	s.Server = http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return s
}
