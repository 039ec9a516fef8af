package http

import (
	"net/http"

	"pal/internal/core"
)

func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var p core.Project
	decodeJSON(r, &p)

	saved := s.svc.AddProject(r.Context(), p)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"project": saved,
	})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	projects := s.svc.Projects(r.Context())
	if projects == nil {
		projects = []core.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}
