package gamification

import (
	"time"

	"gemitalk/internal/domain"
)

// ApplyStreak updates streak counters for a practice happening at now and
// stamps LastPracticeDate. Gaps are measured in calendar days against the
// prior practice date: a first-ever practice starts the streak at 1, exactly
// one day extends it, more than one day restarts it, and a second practice on
// the same day leaves it unchanged. LongestStreak is raised whenever
// CurrentStreak passes it.
func ApplyStreak(progress *domain.UserProgress, now time.Time) {
	if progress.LastPracticeDate == nil {
		progress.CurrentStreak = 1
	} else {
		switch gap := domain.CalendarDaysBetween(*progress.LastPracticeDate, now); {
		case gap == 1:
			progress.CurrentStreak++
		case gap > 1:
			progress.CurrentStreak = 1
		}
		// gap <= 0: same calendar day, nothing to do.
	}

	if progress.CurrentStreak > progress.LongestStreak {
		progress.LongestStreak = progress.CurrentStreak
	}

	practiced := now
	progress.LastPracticeDate = &practiced
}
