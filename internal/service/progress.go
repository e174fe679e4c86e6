package service

import (
	"errors"
	"sync"
	"time"

	"gemitalk/internal/domain"
	"gemitalk/internal/gamification"
	"gemitalk/internal/repository"

	"go.uber.org/zap"
)

// ErrProgressNotFound is returned when a user has no progress record.
var ErrProgressNotFound = errors.New("user progress not found")

// ProgressUpdate reports the outcome of crediting XP to a user.
type ProgressUpdate struct {
	LeveledUp bool                 `json:"leveled_up"`
	NextLevel int                  `json:"next_level"`
	Progress  *domain.UserProgress `json:"progress,omitempty"` // nil when no record existed
}

// ProgressOverview is a read-only snapshot for dashboards and the bot.
type ProgressOverview struct {
	Progress  domain.UserProgress    `json:"progress"`
	Milestone domain.LevelMilestone  `json:"milestone"`
	Next      *domain.LevelMilestone `json:"next_milestone,omitempty"` // nil at max level
}

// ProgressService applies the progression engine to stored progress records.
type ProgressService struct {
	progressRepo repository.ProgressRepository
	logger       *zap.Logger

	// Update is a read-then-write over external state; per-user locks keep
	// concurrent requests for the same user from losing XP.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		logger:       logger,
		locks:        make(map[string]*sync.Mutex),
	}
}

// Ensure creates a zero-default progress record for the user if none exists.
func (s *ProgressService) Ensure(userID string, level domain.Level) error {
	return s.progressRepo.EnsureExists(userID, level)
}

// Update credits earned XP, advances the streak for a practice at now and
// persists the result. A user without a progress record is a no-op.
func (s *ProgressService) Update(userID string, earnedXP int, now time.Time) (*ProgressUpdate, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	progress, err := s.progressRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return &ProgressUpdate{LeveledUp: false, NextLevel: 1}, nil
	}

	oldMilestone := gamification.LevelFromXP(progress.TotalXP)
	progress.TotalXP += earnedXP
	newMilestone := gamification.LevelFromXP(progress.TotalXP)
	gamification.ApplyStreak(progress, now)

	if err := s.progressRepo.Save(userID, progress); err != nil {
		return nil, err
	}

	leveledUp := newMilestone.Level > oldMilestone.Level
	if leveledUp {
		s.logger.Info("User leveled up",
			zap.String("user_id", userID),
			zap.Int("level", newMilestone.Level),
			zap.String("title", newMilestone.Title),
		)
	}

	return &ProgressUpdate{
		LeveledUp: leveledUp,
		NextLevel: newMilestone.Level,
		Progress:  progress,
	}, nil
}

// Overview returns the user's progress with its current and next milestones.
func (s *ProgressService) Overview(userID string) (*ProgressOverview, error) {
	progress, err := s.progressRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, ErrProgressNotFound
	}

	return &ProgressOverview{
		Progress:  *progress,
		Milestone: gamification.LevelFromXP(progress.TotalXP),
		Next:      gamification.NextLevelInfo(progress.TotalXP),
	}, nil
}

func (s *ProgressService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
