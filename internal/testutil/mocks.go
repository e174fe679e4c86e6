package testutil

import (
	"time"

	"gemitalk/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(userID string) (*domain.UserProgress, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Save(userID string, progress *domain.UserProgress) error {
	args := m.Called(userID, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) EnsureExists(userID string, level domain.Level) error {
	args := m.Called(userID, level)
	return args.Error(0)
}

// MockReviewRepository is a mock for ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetByUser(userID string) ([]domain.ReviewItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewItem), args.Error(1)
}

func (m *MockReviewRepository) GetBySentence(userID, sentenceID string) (*domain.ReviewItem, error) {
	args := m.Called(userID, sentenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewItem), args.Error(1)
}

func (m *MockReviewRepository) Create(userID string, item domain.ReviewItem) error {
	args := m.Called(userID, item)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(userID string, item domain.ReviewItem) error {
	args := m.Called(userID, item)
	return args.Error(0)
}

func (m *MockReviewRepository) PruneStale(cutoff time.Time) (int64, error) {
	args := m.Called(cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockTelegramRepository is a mock for TelegramRepository
type MockTelegramRepository struct {
	mock.Mock
}

func (m *MockTelegramRepository) Link(chatID int64, userID string) error {
	args := m.Called(chatID, userID)
	return args.Error(0)
}

func (m *MockTelegramRepository) UserIDByChat(chatID int64) (string, error) {
	args := m.Called(chatID)
	return args.String(0), args.Error(1)
}

func (m *MockTelegramRepository) AllLinks() ([]domain.TelegramLink, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TelegramLink), args.Error(1)
}
