package http

import (
	"net/http"
	"strconv"

	"pal/internal/core"
)

// maxHistoryLimit caps client-supplied history page sizes.
const maxHistoryLimit = 500

type ledgerRequest struct {
	Transactions []core.Transaction `json:"transactions"`
	Address      string             `json:"address"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.replaceLedger(w, r)
	case http.MethodGet:
		s.listLedger(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) replaceLedger(w http.ResponseWriter, r *http.Request) {
	var req ledgerRequest
	decodeJSON(r, &req)

	count, kpis := s.svc.ReplaceLedger(r.Context(), req.Transactions, req.Address)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"count": count,
		"kpis":  kpis,
	})
}

func (s *Server) listLedger(w http.ResponseWriter, r *http.Request) {
	txs, kpis := s.svc.Ledger(r.Context())
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": txs,
		"kpis":         kpis,
	})
}

func (s *Server) handleKPIHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	limit := s.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= maxHistoryLimit {
			limit = n
		}
	}

	records, err := s.history.RecentSnapshots(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "failed to load snapshot history",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": records})
}
