package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gemitalk/internal/domain"
	"gemitalk/internal/service"
	"gemitalk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestHandler(progressRepo *testutil.MockProgressRepository, reviewRepo *testutil.MockReviewRepository) *Handler {
	logger := testutil.NewTestLogger()
	progressService := service.NewProgressService(progressRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, progressService, logger)
	practiceService := service.NewPracticeService(progressService, reviewService, logger)

	h := NewHandler(practiceService, reviewService, progressService, logger)
	h.now = func() time.Time { return testNow }
	return h
}

func doRequest(h *Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(new(testutil.MockProgressRepository), new(testutil.MockReviewRepository))

	rec := doRequest(h, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandlePracticeAttempt(t *testing.T) {
	t.Run("successful attempt", func(t *testing.T) {
		progressRepo := new(testutil.MockProgressRepository)
		reviewRepo := new(testutil.MockReviewRepository)

		progressRepo.On("EnsureExists", "user-1", domain.LevelB1).Return(nil)
		progressRepo.On("Get", "user-1").Return(testutil.NewTestProgress(400, 0, domain.LevelB1, nil), nil)
		progressRepo.On("Save", "user-1", mock.AnythingOfType("*domain.UserProgress")).Return(nil)

		h := newTestHandler(progressRepo, reviewRepo)

		rec := doRequest(h, http.MethodPost, "/api/practice/attempts", practiceAttemptRequest{
			UserID:     "user-1",
			Level:      "B1",
			Sentence:   testutil.NewTestSentence("s-1", "I went to the store"),
			Transcript: "I went to the store",
			Confidence: 0.8,
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var result service.AttemptResult
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		// Perfect match at 0.8 confidence: 100*0.7 + 80*0.3 = 94.
		assert.Equal(t, 94, result.Pronunciation.OverallScore)
		// 100 * 1.5 * (0.5 + 94/100) = 216.
		assert.Equal(t, 216, result.EarnedXP)
		assert.True(t, result.LeveledUp) // 400 -> 616 crosses 500
		assert.Equal(t, 2, result.NextLevel)
		assert.False(t, result.AddedToReview)

		progressRepo.AssertExpectations(t)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("weak attempt is banked", func(t *testing.T) {
		progressRepo := new(testutil.MockProgressRepository)
		reviewRepo := new(testutil.MockReviewRepository)

		progressRepo.On("EnsureExists", "user-1", domain.LevelA1).Return(nil)
		progressRepo.On("Get", "user-1").Return(testutil.NewTestProgress(0, 0, domain.LevelA1, nil), nil)
		progressRepo.On("Save", "user-1", mock.AnythingOfType("*domain.UserProgress")).Return(nil)
		reviewRepo.On("GetBySentence", "user-1", "s-1").Return(nil, nil)
		reviewRepo.On("Create", "user-1", mock.AnythingOfType("domain.ReviewItem")).Return(nil)

		h := newTestHandler(progressRepo, reviewRepo)

		rec := doRequest(h, http.MethodPost, "/api/practice/attempts", practiceAttemptRequest{
			UserID:     "user-1",
			Level:      "A1",
			Sentence:   testutil.NewTestSentence("s-1", "I went to the store yesterday"),
			Transcript: "completely different words entirely spoken here",
			Confidence: 0.2,
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var result service.AttemptResult
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.AddedToReview)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("missing user id", func(t *testing.T) {
		h := newTestHandler(new(testutil.MockProgressRepository), new(testutil.MockReviewRepository))

		rec := doRequest(h, http.MethodPost, "/api/practice/attempts", practiceAttemptRequest{
			Level:      "A1",
			Sentence:   testutil.NewTestSentence("s-1", "Hello"),
			Transcript: "Hello",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid level", func(t *testing.T) {
		h := newTestHandler(new(testutil.MockProgressRepository), new(testutil.MockReviewRepository))

		rec := doRequest(h, http.MethodPost, "/api/practice/attempts", practiceAttemptRequest{
			UserID:     "user-1",
			Level:      "Z9",
			Sentence:   testutil.NewTestSentence("s-1", "Hello"),
			Transcript: "Hello",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		h := newTestHandler(new(testutil.MockProgressRepository), new(testutil.MockReviewRepository))

		req := httptest.NewRequest(http.MethodPost, "/api/practice/attempts", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleDueReviews(t *testing.T) {
	t.Run("returns due items only", func(t *testing.T) {
		progressRepo := new(testutil.MockProgressRepository)
		reviewRepo := new(testutil.MockReviewRepository)

		items := []domain.ReviewItem{
			testutil.NewTestReviewItem("s-1", 1, testNow.AddDate(0, 0, -2)),
			testutil.NewTestReviewItem("s-2", 2, testNow.AddDate(0, 0, 3)),
		}
		reviewRepo.On("GetByUser", "user-1").Return(items, nil)

		h := newTestHandler(progressRepo, reviewRepo)

		rec := doRequest(h, http.MethodGet, "/api/reviews/due?user_id=user-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Items []domain.ReviewItem `json:"items"`
			Count int                 `json:"count"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "s-1", body.Items[0].ID)
	})

	t.Run("missing user id", func(t *testing.T) {
		h := newTestHandler(new(testutil.MockProgressRepository), new(testutil.MockReviewRepository))

		rec := doRequest(h, http.MethodGet, "/api/reviews/due", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleReviewResult(t *testing.T) {
	t.Run("successful review advances the item", func(t *testing.T) {
		progressRepo := new(testutil.MockProgressRepository)
		reviewRepo := new(testutil.MockReviewRepository)

		item := testutil.NewTestReviewItem("s-1", 2, testNow.AddDate(0, 0, -1))
		reviewRepo.On("GetBySentence", "user-1", "s-1").Return(&item, nil)
		reviewRepo.On("Update", "user-1", mock.AnythingOfType("domain.ReviewItem")).Return(nil)

		h := newTestHandler(progressRepo, reviewRepo)

		rec := doRequest(h, http.MethodPost, "/api/reviews/s-1/result", reviewResultRequest{
			UserID:  "user-1",
			Success: true,
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var updated domain.ReviewItem
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, 3, updated.Box)
		assert.Equal(t, 8, updated.IntervalDays)
	})

	t.Run("unknown sentence returns 404", func(t *testing.T) {
		progressRepo := new(testutil.MockProgressRepository)
		reviewRepo := new(testutil.MockReviewRepository)

		reviewRepo.On("GetBySentence", "user-1", "missing").Return(nil, nil)

		h := newTestHandler(progressRepo, reviewRepo)

		rec := doRequest(h, http.MethodPost, "/api/reviews/missing/result", reviewResultRequest{
			UserID:  "user-1",
			Success: false,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleReviewSession(t *testing.T) {
	progressRepo := new(testutil.MockProgressRepository)
	reviewRepo := new(testutil.MockReviewRepository)

	progressRepo.On("Get", "user-1").Return(testutil.NewTestProgress(100, 1, domain.LevelA2, &testNow), nil)
	progressRepo.On("Save", "user-1", mock.AnythingOfType("*domain.UserProgress")).Return(nil)

	h := newTestHandler(progressRepo, reviewRepo)

	rec := doRequest(h, http.MethodPost, "/api/reviews/sessions", reviewSessionRequest{
		UserID:    "user-1",
		Successes: 4,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var update service.ProgressUpdate
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &update))
	assert.Equal(t, 120, update.Progress.TotalXP) // 100 + 4*5
}

func TestHandleProgress(t *testing.T) {
	t.Run("returns overview", func(t *testing.T) {
		progressRepo := new(testutil.MockProgressRepository)
		reviewRepo := new(testutil.MockReviewRepository)

		progressRepo.On("Get", "user-1").Return(testutil.NewTestProgress(1500, 3, domain.LevelB1, &testNow), nil)

		h := newTestHandler(progressRepo, reviewRepo)

		rec := doRequest(h, http.MethodGet, "/api/progress?user_id=user-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var overview service.ProgressOverview
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
		assert.Equal(t, 1500, overview.Progress.TotalXP)
		assert.Equal(t, 3, overview.Milestone.Level)
		assert.Equal(t, "Apprentice", overview.Milestone.Title)
		assert.Equal(t, 2500, overview.Next.XPRequired)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		progressRepo := new(testutil.MockProgressRepository)
		reviewRepo := new(testutil.MockReviewRepository)

		progressRepo.On("Get", "ghost").Return(nil, nil)

		h := newTestHandler(progressRepo, reviewRepo)

		rec := doRequest(h, http.MethodGet, "/api/progress?user_id=ghost", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing user id", func(t *testing.T) {
		h := newTestHandler(new(testutil.MockProgressRepository), new(testutil.MockReviewRepository))

		rec := doRequest(h, http.MethodGet, "/api/progress", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
