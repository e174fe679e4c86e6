// Package gamification converts practice outcomes into XP awards and keeps
// level and streak state moving.
package gamification

import (
	"math"

	"gemitalk/internal/domain"
)

// levelMultipliers scale base XP by CEFR difficulty.
var levelMultipliers = map[domain.Level]float64{
	domain.LevelA1: 1.0,
	domain.LevelA2: 1.2,
	domain.LevelB1: 1.5,
	domain.LevelB2: 1.8,
	domain.LevelC1: 2.2,
	domain.LevelC2: 3.0,
}

// xpTable is the milestone ladder, strictly increasing in level and XP.
// The values are part of the observable contract.
var xpTable = []domain.LevelMilestone{
	{Level: 1, XPRequired: 0, Title: "Beginner"},
	{Level: 2, XPRequired: 500, Title: "Novice"},
	{Level: 3, XPRequired: 1200, Title: "Apprentice"},
	{Level: 4, XPRequired: 2500, Title: "Scholar"},
	{Level: 5, XPRequired: 5000, Title: "Wordsmith"},
	{Level: 6, XPRequired: 10000, Title: "Sage"},
	{Level: 7, XPRequired: 20000, Title: "GemiMaster"},
}

// CalculateXP awards XP for a practice unit: base XP scaled by the CEFR level
// multiplier and an accuracy bonus ranging from 0.5x (0%) to 1.5x (100%).
// Accuracy outside [0,100] is clamped; an unknown level falls back to a 1.0
// multiplier.
func CalculateXP(baseXP int, accuracy float64, level domain.Level) int {
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 100 {
		accuracy = 100
	}

	multiplier, ok := levelMultipliers[level]
	if !ok {
		multiplier = 1.0
	}

	accuracyBonus := 0.5 + accuracy/100
	return int(math.Round(float64(baseXP) * multiplier * accuracyBonus))
}

// LevelFromXP returns the milestone with the greatest XP requirement at or
// below xp, or the first milestone when xp is below every threshold.
func LevelFromXP(xp int) domain.LevelMilestone {
	for i := len(xpTable) - 1; i >= 0; i-- {
		if xp >= xpTable[i].XPRequired {
			return xpTable[i]
		}
	}
	return xpTable[0]
}

// NextLevelInfo returns the first milestone strictly above xp, or nil when xp
// is already at or past the top of the table.
func NextLevelInfo(xp int) *domain.LevelMilestone {
	for _, m := range xpTable {
		if m.XPRequired > xp {
			milestone := m
			return &milestone
		}
	}
	return nil
}
