package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"leaderboard/internal/domain"
)

// saveScoreResponse is the success payload for a score submission.
type saveScoreResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	PlayerScore *domain.ScoreEntry  `json:"playerScore"`
	TopScores   []domain.ScoreEntry `json:"topScores"`
}

// errorResponse is the payload for every failure path.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// handleSaveScore handles POST / (preflight is answered in the middleware)
func (s *Server) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.sendError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, domain.ErrMissingFields.Error(), "")
		return
	}

	sub, err := domain.ParseSubmission(body)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	entry, top, err := s.service.SubmitScore(r.Context(), sub)
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			s.sendError(w, http.StatusInternalServerError, "Server configuration error", "")
			return
		}
		detail := ""
		if s.config.Server.ExposeInternalErrors {
			detail = err.Error()
		}
		s.sendError(w, http.StatusInternalServerError, "Failed to save score", detail)
		return
	}

	s.sendJSON(w, http.StatusOK, &saveScoreResponse{
		Success:     true,
		Message:     "Score saved successfully",
		PlayerScore: entry,
		TopScores:   top,
	})
}

// sendJSON sends a JSON response with the given status
func (s *Server) sendJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, errMsg, detail string) {
	s.sendJSON(w, status, &errorResponse{
		Error:   errMsg,
		Message: detail,
	})
}
