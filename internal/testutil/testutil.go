package testutil

import (
	"time"

	"gemitalk/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSentence creates a test sentence
func NewTestSentence(id, text string) domain.Sentence {
	return domain.Sentence{
		ID:          id,
		Text:        text,
		Translation: "translation of " + text,
	}
}

// NewTestReviewItem creates a test review item in the given box
func NewTestReviewItem(sentenceID string, box int, nextReview time.Time) domain.ReviewItem {
	return domain.ReviewItem{
		ID:           sentenceID,
		Sentence:     NewTestSentence(sentenceID, "sentence "+sentenceID),
		LastReviewed: nextReview.AddDate(0, 0, -1),
		NextReview:   nextReview,
		IntervalDays: 1 << uint(box),
		Box:          box,
	}
}

// NewTestProgress creates a test progress record
func NewTestProgress(totalXP, streak int, level domain.Level, lastPractice *time.Time) *domain.UserProgress {
	return &domain.UserProgress{
		TotalXP:          totalXP,
		CurrentStreak:    streak,
		LongestStreak:    streak,
		Level:            level,
		LastPracticeDate: lastPractice,
	}
}
