package service

import (
	"time"

	"gemitalk/internal/repository"

	"go.uber.org/zap"
)

// Review items untouched this long are treated as abandoned learning history
// and archived out of the bank.
const staleAfterDays = 180

// MaintenanceService handles periodic cleanup of review data.
type MaintenanceService struct {
	reviewRepo repository.ReviewRepository
	logger     *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(reviewRepo repository.ReviewRepository, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// PruneStaleReviews removes review items last reviewed more than
// staleAfterDays before now.
func (s *MaintenanceService) PruneStaleReviews(now time.Time) error {
	cutoff := now.AddDate(0, 0, -staleAfterDays)

	s.logger.Info("Pruning stale review items", zap.Time("cutoff", cutoff))

	removed, err := s.reviewRepo.PruneStale(cutoff)
	if err != nil {
		s.logger.Error("Failed to prune review items", zap.Error(err))
		return err
	}

	s.logger.Info("Prune completed", zap.Int64("removed", removed))
	return nil
}
