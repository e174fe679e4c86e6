// Package leitner implements the Leitner-box review schedule: items climb a
// box on success, doubling their review interval, and fall back to the first
// box on failure.
package leitner

import (
	"sort"
	"time"

	"gemitalk/internal/domain"
)

// Box bounds. The interval for box n is 2^n days, so the cadence caps at
// 2^5 = 32 days.
const (
	MinBox = 1
	MaxBox = 5
)

// NewItem places a sentence in the first box, due immediately.
func NewItem(sentence domain.Sentence, now time.Time) domain.ReviewItem {
	return domain.ReviewItem{
		ID:           sentence.ID,
		Sentence:     sentence,
		LastReviewed: now,
		NextReview:   now,
		IntervalDays: 1,
		Box:          MinBox,
	}
}

// Advance applies a review outcome. Success promotes the item one box (capped
// at MaxBox) and sets interval to 2^box; failure demotes to MinBox with a
// one-day interval. Either way the item is rescheduled from now.
func Advance(item domain.ReviewItem, success bool, now time.Time) domain.ReviewItem {
	if success {
		if item.Box < MaxBox {
			item.Box++
		}
		item.IntervalDays = 1 << uint(item.Box)
	} else {
		item.Box = MinBox
		item.IntervalDays = 1
	}

	item.LastReviewed = now
	item.NextReview = now.AddDate(0, 0, item.IntervalDays)
	return item
}

// Due returns the items whose next review is at or before now, ordered by
// next review time ascending. The input slice is not modified.
func Due(items []domain.ReviewItem, now time.Time) []domain.ReviewItem {
	var due []domain.ReviewItem
	for _, item := range items {
		if !item.NextReview.After(now) {
			due = append(due, item)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].NextReview.Before(due[j].NextReview)
	})
	return due
}
