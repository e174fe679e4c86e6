package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"gemitalk/internal/middleware"
	"gemitalk/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes the practice, review and progress services as a JSON API.
type Handler struct {
	practice *service.PracticeService
	reviews  *service.ReviewService
	progress *service.ProgressService
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandler creates a new handler instance
func NewHandler(
	practice *service.PracticeService,
	reviews *service.ReviewService,
	progress *service.ProgressService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		practice: practice,
		reviews:  reviews,
		progress: progress,
		logger:   logger,
		now:      time.Now,
	}
}

// Routes builds the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(h.logger))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/practice/attempts", h.handlePracticeAttempt)
		r.Get("/reviews/due", h.handleDueReviews)
		r.Post("/reviews/{sentenceID}/result", h.handleReviewResult)
		r.Post("/reviews/sessions", h.handleReviewSession)
		r.Get("/progress", h.handleProgress)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
