// Package srs implements the Leitner-box review scheduler for learning
// seeds. Given the seed's current box and how the review went, it produces
// the next box and the next due date. The functions are pure; the caller
// supplies the current time and owns persistence.
package srs

import (
	"fmt"
	"time"

	"evergreenMuseAPI/internal/dates"
)

// MaxLevel is the highest Leitner box. Seeds never leave it once reached.
const MaxLevel = 5

// intervals holds the days until the next review, indexed by box.
var intervals = [MaxLevel + 1]int{1, 2, 4, 8, 16, 32}

// maxIntervalDays is the fallback when a level somehow exceeds the table.
const maxIntervalDays = 32

// Outcome is the result of reviewing a single seed.
type Outcome string

const (
	OutcomeForgot Outcome = "forgot"
	OutcomeHard   Outcome = "hard"
	OutcomeEasy   Outcome = "easy"
)

// ParseOutcome validates a raw outcome string at the request boundary.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeForgot, OutcomeHard, OutcomeEasy:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("unknown review outcome %q", s)
}

// Update is the scheduling delta for a reviewed seed.
type Update struct {
	NewLevel   int       `json:"newLevel"`
	NextReview time.Time `json:"nextReview"`
}

// CalculateUpdate computes the new box and due date for a review.
// The due date is anchored at the start of the current calendar day, so
// reviewing the same seed twice in one day yields the same schedule.
//
//	forgot: back to box 0, due tomorrow (not instantly, to avoid thrash)
//	hard:   stay in the current box, due tomorrow
//	easy:   move up one box (capped at MaxLevel), due after the new box's
//	        interval
func CalculateUpdate(currentLevel int, outcome Outcome, now time.Time) Update {
	var newLevel, daysToAdd int
	today := dates.StartOfDay(now)

	switch outcome {
	case OutcomeForgot:
		newLevel = 0
		daysToAdd = 1
	case OutcomeHard:
		newLevel = currentLevel
		daysToAdd = 1
	case OutcomeEasy:
		newLevel = currentLevel + 1
		if newLevel > MaxLevel {
			newLevel = MaxLevel
		}
		daysToAdd = intervalFor(newLevel)
	}

	return Update{
		NewLevel:   newLevel,
		NextReview: today.AddDate(0, 0, daysToAdd),
	}
}

func intervalFor(level int) int {
	if level < 0 || level > MaxLevel {
		return maxIntervalDays
	}
	return intervals[level]
}
