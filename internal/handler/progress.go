package handler

import (
	"errors"
	"net/http"

	"gemitalk/internal/service"

	"go.uber.org/zap"
)

// handleProgress handles GET /api/progress
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	overview, err := h.progress.Overview(userID)
	if errors.Is(err, service.ErrProgressNotFound) {
		writeError(w, http.StatusNotFound, "user progress not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load progress", zap.Error(err), zap.String("user_id", userID))
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
