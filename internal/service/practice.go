package service

import (
	"fmt"
	"time"

	"gemitalk/internal/domain"
	"gemitalk/internal/gamification"
	"gemitalk/internal/pronunciation"

	"go.uber.org/zap"
)

const (
	// Base XP for one scored sentence.
	practiceBaseXP = 100
	// Attempts scoring below this go into the review bank.
	weaknessThreshold = 70
)

// AttemptResult is everything a completed practice attempt produced.
type AttemptResult struct {
	Pronunciation pronunciation.Result `json:"pronunciation"`
	EarnedXP      int                  `json:"earned_xp"`
	LeveledUp     bool                 `json:"leveled_up"`
	NextLevel     int                  `json:"next_level"`
	AddedToReview bool                 `json:"added_to_review"`
}

// PracticeService turns a spoken attempt into a score, an XP award and,
// for weak attempts, a review bank entry.
type PracticeService struct {
	progress *ProgressService
	reviews  *ReviewService
	logger   *zap.Logger
}

// NewPracticeService creates a new practice service
func NewPracticeService(progress *ProgressService, reviews *ReviewService, logger *zap.Logger) *PracticeService {
	return &PracticeService{
		progress: progress,
		reviews:  reviews,
		logger:   logger,
	}
}

// ScoreAttempt scores a transcript against the target sentence, credits XP
// scaled by the lesson level and banks the sentence for review when the
// attempt is weak. A progress record is created on first use.
func (s *PracticeService) ScoreAttempt(userID string, sentence domain.Sentence, transcript string, confidence float64, level domain.Level, now time.Time) (*AttemptResult, error) {
	if err := s.progress.Ensure(userID, level); err != nil {
		return nil, fmt.Errorf("ensure progress: %w", err)
	}

	result := pronunciation.Analyze(sentence.Text, transcript, confidence)

	earned := gamification.CalculateXP(practiceBaseXP, float64(result.OverallScore), level)
	update, err := s.progress.Update(userID, earned, now)
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}

	banked := false
	if result.OverallScore < weaknessThreshold {
		if err := s.reviews.AddToBank(userID, sentence, now); err != nil {
			return nil, err
		}
		banked = true
	}

	s.logger.Info("Practice attempt scored",
		zap.String("user_id", userID),
		zap.String("sentence_id", sentence.ID),
		zap.Int("score", result.OverallScore),
		zap.Int("earned_xp", earned),
		zap.Bool("added_to_review", banked),
	)

	return &AttemptResult{
		Pronunciation: result,
		EarnedXP:      earned,
		LeveledUp:     update.LeveledUp,
		NextLevel:     update.NextLevel,
		AddedToReview: banked,
	}, nil
}
