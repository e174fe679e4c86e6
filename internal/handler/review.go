package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gemitalk/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleDueReviews handles GET /api/reviews/due
func (h *Handler) handleDueReviews(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	items, err := h.reviews.DueItems(userID, h.now())
	if err != nil {
		h.logger.Error("Failed to load due reviews", zap.Error(err), zap.String("user_id", userID))
		writeError(w, http.StatusInternalServerError, "failed to load due reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

type reviewResultRequest struct {
	UserID  string `json:"user_id"`
	Success bool   `json:"success"`
}

// handleReviewResult handles POST /api/reviews/{sentenceID}/result
func (h *Handler) handleReviewResult(w http.ResponseWriter, r *http.Request) {
	sentenceID := chi.URLParam(r, "sentenceID")

	var req reviewResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	item, err := h.reviews.SubmitResult(req.UserID, sentenceID, req.Success, h.now())
	if errors.Is(err, service.ErrItemNotFound) {
		writeError(w, http.StatusNotFound, "review item not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to submit review result", zap.Error(err), zap.String("user_id", req.UserID))
		writeError(w, http.StatusInternalServerError, "failed to submit review result")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

type reviewSessionRequest struct {
	UserID    string `json:"user_id"`
	Successes int    `json:"successes"`
}

// handleReviewSession handles POST /api/reviews/sessions
func (h *Handler) handleReviewSession(w http.ResponseWriter, r *http.Request) {
	var req reviewSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	update, err := h.reviews.CompleteSession(req.UserID, req.Successes, h.now())
	if err != nil {
		h.logger.Error("Failed to complete review session", zap.Error(err), zap.String("user_id", req.UserID))
		writeError(w, http.StatusInternalServerError, "failed to complete review session")
		return
	}

	writeJSON(w, http.StatusOK, update)
}
