package http

import "net/http"

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req chatRequest
	decodeJSON(r, &req)

	reply := s.svc.Chat(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
