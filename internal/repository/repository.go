package repository

import (
	"time"

	"gemitalk/internal/domain"
)

// ProgressRepository defines persistence for learner progress records.
type ProgressRepository interface {
	// Get returns the user's progress, or nil when no record exists.
	Get(userID string) (*domain.UserProgress, error)
	// Save upserts the progress record.
	Save(userID string, progress *domain.UserProgress) error
	// EnsureExists creates a zero-default record if none exists.
	EnsureExists(userID string, level domain.Level) error
}

// ReviewRepository defines persistence for the Leitner review bank.
type ReviewRepository interface {
	GetByUser(userID string) ([]domain.ReviewItem, error)
	// GetBySentence returns the user's item for that sentence, or nil.
	GetBySentence(userID, sentenceID string) (*domain.ReviewItem, error)
	Create(userID string, item domain.ReviewItem) error
	Update(userID string, item domain.ReviewItem) error
	// PruneStale removes items last reviewed before cutoff, returning the
	// number removed.
	PruneStale(cutoff time.Time) (int64, error)
}

// TelegramRepository defines persistence for chat-to-user links used by the
// reminder bot.
type TelegramRepository interface {
	Link(chatID int64, userID string) error
	// UserIDByChat returns the linked user id, or "" when unlinked.
	UserIDByChat(chatID int64) (string, error)
	AllLinks() ([]domain.TelegramLink, error)
}
