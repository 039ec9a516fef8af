package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// maxBodyBytes caps request payloads; a full ledger upload fits comfortably.
const maxBodyBytes = 4 << 20

// writeJSON serializes v with the standard content type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "component", "http", "error", err)
	}
}

// decodeJSON fills v from the request body, best-effort. A missing or
// malformed body leaves v at its zero value; requests never fail on decode,
// mirroring the backend's never-fail reply policy.
func decodeJSON(r *http.Request, v any) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		return
	}
	if err := json.Unmarshal(body, v); err != nil {
		slog.WarnContext(r.Context(), "Malformed request body ignored",
			"component", "http", "path", r.URL.Path, "error", err)
	}
}

// methodNotAllowed writes a 405 with the Allow header set.
func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	w.WriteHeader(http.StatusMethodNotAllowed)
}
