package bot

import (
	"testing"
	"time"

	"gemitalk/internal/domain"
	"gemitalk/internal/service"
	"gemitalk/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestFormatDue(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty bank", func(t *testing.T) {
		assert.Equal(t, "Nothing due right now. Nice work!", formatDue(nil))
	})

	t.Run("lists sentences", func(t *testing.T) {
		items := []domain.ReviewItem{
			testutil.NewTestReviewItem("s-1", 1, now),
			testutil.NewTestReviewItem("s-2", 1, now),
		}

		msg := formatDue(items)

		assert.Contains(t, msg, "2 sentence(s) due")
		assert.Contains(t, msg, "sentence s-1")
		assert.Contains(t, msg, "sentence s-2")
	})

	t.Run("truncates long lists", func(t *testing.T) {
		items := make([]domain.ReviewItem, 8)
		for i := range items {
			items[i] = testutil.NewTestReviewItem("s", 1, now)
		}

		msg := formatDue(items)

		assert.Contains(t, msg, "...and 3 more")
	})
}

func TestFormatStats(t *testing.T) {
	t.Run("mid-ladder shows next milestone", func(t *testing.T) {
		overview := &service.ProgressOverview{
			Progress:  *testutil.NewTestProgress(1500, 3, domain.LevelB1, nil),
			Milestone: domain.LevelMilestone{Level: 3, XPRequired: 1200, Title: "Apprentice"},
			Next:      &domain.LevelMilestone{Level: 4, XPRequired: 2500, Title: "Scholar"},
		}

		msg := formatStats(overview)

		assert.Contains(t, msg, "Level 3 (Apprentice)")
		assert.Contains(t, msg, "XP: 1500")
		assert.Contains(t, msg, "Streak: 3 day(s), best 3")
		assert.Contains(t, msg, "Scholar at 2500 XP (1000 to go)")
	})

	t.Run("max level omits next milestone", func(t *testing.T) {
		overview := &service.ProgressOverview{
			Progress:  *testutil.NewTestProgress(25000, 10, domain.LevelC2, nil),
			Milestone: domain.LevelMilestone{Level: 7, XPRequired: 20000, Title: "GemiMaster"},
		}

		msg := formatStats(overview)

		assert.Contains(t, msg, "Level 7 (GemiMaster)")
		assert.NotContains(t, msg, "Next:")
	})
}
