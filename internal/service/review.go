package service

import (
	"errors"
	"fmt"
	"time"

	"gemitalk/internal/domain"
	"gemitalk/internal/leitner"
	"gemitalk/internal/repository"

	"go.uber.org/zap"
)

// ErrItemNotFound is returned when a review outcome references a sentence
// that is not in the user's bank.
var ErrItemNotFound = errors.New("review item not found")

// Flat XP per successful review card. Review XP deliberately skips the level
// multiplier.
const reviewSuccessXP = 5

// ReviewService maintains each user's Leitner review bank.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	progress   *ProgressService
	logger     *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo repository.ReviewRepository, progress *ProgressService, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		progress:   progress,
		logger:     logger,
	}
}

// AddToBank puts a sentence into the first box, due immediately. Adding a
// sentence that is already banked is a no-op.
func (s *ReviewService) AddToBank(userID string, sentence domain.Sentence, now time.Time) error {
	existing, err := s.reviewRepo.GetBySentence(userID, sentence.ID)
	if err != nil {
		return fmt.Errorf("check review bank: %w", err)
	}
	if existing != nil {
		return nil
	}

	if err := s.reviewRepo.Create(userID, leitner.NewItem(sentence, now)); err != nil {
		return fmt.Errorf("create review item: %w", err)
	}

	s.logger.Info("Sentence added to review bank",
		zap.String("user_id", userID),
		zap.String("sentence_id", sentence.ID),
	)
	return nil
}

// DueItems returns the items due at now, earliest first.
func (s *ReviewService) DueItems(userID string, now time.Time) ([]domain.ReviewItem, error) {
	items, err := s.reviewRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	return leitner.Due(items, now), nil
}

// SubmitResult applies a pass/fail outcome to a banked sentence and returns
// the rescheduled item. An unknown sentence id yields ErrItemNotFound.
func (s *ReviewService) SubmitResult(userID, sentenceID string, success bool, now time.Time) (*domain.ReviewItem, error) {
	item, err := s.reviewRepo.GetBySentence(userID, sentenceID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	updated := leitner.Advance(*item, success, now)
	if err := s.reviewRepo.Update(userID, updated); err != nil {
		return nil, fmt.Errorf("update review item: %w", err)
	}

	return &updated, nil
}

// CompleteSession credits flat XP for the successful cards of a finished
// review session.
func (s *ReviewService) CompleteSession(userID string, successes int, now time.Time) (*ProgressUpdate, error) {
	if successes < 0 {
		successes = 0
	}
	return s.progress.Update(userID, successes*reviewSuccessXP, now)
}
