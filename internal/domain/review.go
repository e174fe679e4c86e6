package domain

import "time"

// ReviewItem is a Leitner-box entry for a sentence the learner struggled
// with. One entry exists per sentence id; the item cycles between boxes
// indefinitely and has no terminal state.
type ReviewItem struct {
	ID           string    `json:"id"` // sentence id
	Sentence     Sentence  `json:"sentence"`
	LastReviewed time.Time `json:"last_reviewed"`
	NextReview   time.Time `json:"next_review"`
	IntervalDays int       `json:"interval_days"`
	Box          int       `json:"box"` // 1..5
}
