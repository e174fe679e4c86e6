package domain

import (
	"fmt"
	"time"
)

// Level is a CEFR proficiency label. The core treats it as an opaque ordered
// tag driving XP multipliers; it does not implement CEFR itself.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// ParseLevel validates a CEFR label.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown CEFR level %q", s)
}

// UserProgress is a learner's accumulated XP and streak state. It is mutated
// only by the progression engine; LongestStreak never drops below
// CurrentStreak after an update.
type UserProgress struct {
	TotalXP          int        `json:"total_xp"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	Level            Level      `json:"level"`
	LastPracticeDate *time.Time `json:"last_practice_date,omitempty"`
}

// LevelMilestone is one row of the static XP ladder.
type LevelMilestone struct {
	Level      int    `json:"level"`
	XPRequired int    `json:"xp_required"`
	Title      string `json:"title"`
}
