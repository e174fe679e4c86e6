package handler

import (
	"encoding/json"
	"net/http"

	"gemitalk/internal/domain"

	"go.uber.org/zap"
)

type practiceAttemptRequest struct {
	UserID     string          `json:"user_id"`
	Level      string          `json:"level"`
	Sentence   domain.Sentence `json:"sentence"`
	Transcript string          `json:"transcript"`
	Confidence float64         `json:"confidence"`
}

// handlePracticeAttempt handles POST /api/practice/attempts
func (h *Handler) handlePracticeAttempt(w http.ResponseWriter, r *http.Request) {
	var req practiceAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Sentence.ID == "" || req.Sentence.Text == "" {
		writeError(w, http.StatusBadRequest, "sentence id and text are required")
		return
	}

	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The scorer trusts confidence as given, so clamp recognizer noise here
	// at the boundary.
	confidence := req.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	result, err := h.practice.ScoreAttempt(req.UserID, req.Sentence, req.Transcript, confidence, level, h.now())
	if err != nil {
		h.logger.Error("Failed to score attempt", zap.Error(err), zap.String("user_id", req.UserID))
		writeError(w, http.StatusInternalServerError, "failed to score attempt")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
