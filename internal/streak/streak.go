// Package streak maintains a habit's completion-date set and its
// consecutive-day streak counter. All functions are pure: they take an
// immutable snapshot plus the caller's current moment and return a new
// snapshot, so callers own persistence and the engine stays deterministic
// under test.
package streak

import (
	"sort"
	"time"

	"evergreenMuseAPI/internal/dates"
)

// MaxPastToggleDays bounds how far back a completion may be toggled.
// Dates further in the past, and any future date, are rejected at the
// request boundary.
const MaxPastToggleDays = 2

// Snapshot is the streak-relevant state of a single habit.
// CompletedDates holds start-of-day values with no duplicate days.
type Snapshot struct {
	CompletedDates  []time.Time
	Streak          int
	LastCompletedAt *time.Time
}

// Summary is the derived state recomputed from a raw date set.
type Summary struct {
	Streak          int
	LastCompletedAt *time.Time
}

// InToggleWindow reports whether target is a permissible toggle date:
// today, or at most MaxPastToggleDays calendar days in the past.
func InToggleWindow(target, now time.Time) bool {
	diff := dates.DaysBetween(target, now)
	return diff >= 0 && diff <= MaxPastToggleDays
}

// ToggleCompletion flips the completion state of target's calendar day and
// returns the resulting snapshot.
//
// Marking today extends the streak when yesterday was the last completion,
// otherwise restarts it at 1. Un-marking today decrements the streak and
// recomputes the last completion from what remains.
//
// Toggling a past date only edits the set (and, when marking a date newer
// than the current last completion, advances LastCompletedAt); the streak
// counter is left alone, so past edits leave it approximate until the next
// full recompute. Callers wanting exact streaks after a past edit can run
// Recalculate on the returned date set.
func ToggleCompletion(snap Snapshot, target, now time.Time) Snapshot {
	day := dates.StartOfDay(target)

	set := toSet(snap.CompletedDates)
	_, present := set[dayKey(day)]

	out := Snapshot{
		Streak:          snap.Streak,
		LastCompletedAt: snap.LastCompletedAt,
	}

	if present {
		delete(set, dayKey(day))
		out.CompletedDates = fromSet(set)

		if dates.IsToday(day, now) {
			out.Streak = snap.Streak - 1
			if out.Streak < 0 {
				out.Streak = 0
			}
			out.LastCompletedAt = maxDate(out.CompletedDates)
		}
		return out
	}

	set[dayKey(day)] = day
	out.CompletedDates = fromSet(set)

	if dates.IsToday(day, now) {
		if snap.LastCompletedAt != nil && dates.IsYesterday(*snap.LastCompletedAt, now) {
			out.Streak = snap.Streak + 1
		} else {
			out.Streak = 1
		}
		out.LastCompletedAt = &day
	} else if snap.LastCompletedAt == nil || day.After(*snap.LastCompletedAt) {
		out.LastCompletedAt = &day
	}
	return out
}

// Recalculate derives the streak and last completion from the raw date set.
// The streak counts consecutive calendar days backwards from the most
// recent completion, ending at the first gap.
func Recalculate(completedDates []time.Time) Summary {
	if len(completedDates) == 0 {
		return Summary{Streak: 0, LastCompletedAt: nil}
	}

	sorted := make([]time.Time, len(completedDates))
	for i, d := range completedDates {
		sorted[i] = dates.StartOfDay(d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	last := sorted[0]
	streak := 1
	for i := 0; i < len(sorted)-1; i++ {
		diff := dates.DaysBetween(sorted[i+1], sorted[i])
		if diff == 1 {
			streak++
		} else if diff > 1 {
			break
		}
		// diff == 0 is a duplicate day; the walk just continues.
	}

	return Summary{Streak: streak, LastCompletedAt: &last}
}

// CheckAndReset zeroes a streak whose last completion is neither today nor
// yesterday. The bool reports whether a correction is needed, so callers
// can persist the zero lazily on read instead of running a background job.
func CheckAndReset(streakCount int, lastCompletedAt *time.Time, now time.Time) (int, bool) {
	if streakCount <= 0 || lastCompletedAt == nil {
		return streakCount, false
	}
	if dates.IsToday(*lastCompletedAt, now) || dates.IsYesterday(*lastCompletedAt, now) {
		return streakCount, false
	}
	return 0, true
}

// dayKey collapses a start-of-day value to a comparable calendar-day key,
// which is what makes the set structurally duplicate-free.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func toSet(days []time.Time) map[string]time.Time {
	set := make(map[string]time.Time, len(days))
	for _, d := range days {
		day := dates.StartOfDay(d)
		set[dayKey(day)] = day
	}
	return set
}

func fromSet(set map[string]time.Time) []time.Time {
	out := make([]time.Time, 0, len(set))
	for _, d := range set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func maxDate(days []time.Time) *time.Time {
	if len(days) == 0 {
		return nil
	}
	max := days[0]
	for _, d := range days[1:] {
		if d.After(max) {
			max = d
		}
	}
	return &max
}
