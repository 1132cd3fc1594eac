package streak

import (
	"testing"
	"time"

	"evergreenMuseAPI/internal/dates"
)

var now = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func days(offsets ...int) []time.Time {
	out := make([]time.Time, len(offsets))
	for i, o := range offsets {
		out[i] = day(o)
	}
	return out
}

func contains(set []time.Time, d time.Time) bool {
	for _, v := range set {
		if dates.SameDay(v, d) {
			return true
		}
	}
	return false
}

// --- ToggleCompletion ---

func TestToggleMarkTodayFreshStreak(t *testing.T) {
	got := ToggleCompletion(Snapshot{}, day(0), now)

	if got.Streak != 1 {
		t.Errorf("Streak = %d, want 1", got.Streak)
	}
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(0)) {
		t.Errorf("LastCompletedAt = %v, want today", got.LastCompletedAt)
	}
	if !contains(got.CompletedDates, day(0)) {
		t.Error("today missing from completion set")
	}
}

func TestToggleMarkTodayExtendsStreak(t *testing.T) {
	yesterday := day(-1)
	snap := Snapshot{
		CompletedDates:  days(-2, -1),
		Streak:          2,
		LastCompletedAt: &yesterday,
	}

	got := ToggleCompletion(snap, day(0), now)
	if got.Streak != 3 {
		t.Errorf("Streak = %d, want 3", got.Streak)
	}
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(0)) {
		t.Errorf("LastCompletedAt = %v, want today", got.LastCompletedAt)
	}
}

func TestToggleMarkTodayAfterGapResetsToOne(t *testing.T) {
	threeDaysAgo := day(-3)
	snap := Snapshot{
		CompletedDates:  days(-4, -3),
		Streak:          2,
		LastCompletedAt: &threeDaysAgo,
	}

	got := ToggleCompletion(snap, day(0), now)
	if got.Streak != 1 {
		t.Errorf("Streak = %d, want 1 after a gap", got.Streak)
	}
}

func TestToggleUndoToday(t *testing.T) {
	today := day(0)
	snap := Snapshot{
		CompletedDates:  days(-1, 0),
		Streak:          2,
		LastCompletedAt: &today,
	}

	got := ToggleCompletion(snap, day(0), now)
	if got.Streak != 1 {
		t.Errorf("Streak = %d, want 1 after undo", got.Streak)
	}
	if contains(got.CompletedDates, day(0)) {
		t.Error("today should be removed from the set")
	}
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(-1)) {
		t.Errorf("LastCompletedAt = %v, want yesterday", got.LastCompletedAt)
	}
}

func TestToggleUndoTodayFloorsAtZero(t *testing.T) {
	today := day(0)
	snap := Snapshot{
		CompletedDates:  days(0),
		Streak:          0, // stale counter, e.g. after a lazy reset
		LastCompletedAt: &today,
	}

	got := ToggleCompletion(snap, day(0), now)
	if got.Streak != 0 {
		t.Errorf("Streak = %d, want 0 (floored)", got.Streak)
	}
	if got.LastCompletedAt != nil {
		t.Errorf("LastCompletedAt = %v, want nil for empty set", got.LastCompletedAt)
	}
}

func TestToggleUndoPastDateLeavesStreakAlone(t *testing.T) {
	today := day(0)
	snap := Snapshot{
		CompletedDates:  days(-1, 0),
		Streak:          2,
		LastCompletedAt: &today,
	}

	got := ToggleCompletion(snap, day(-1), now)
	if contains(got.CompletedDates, day(-1)) {
		t.Error("yesterday should be removed from the set")
	}
	if got.Streak != 2 {
		t.Errorf("Streak = %d, want 2 (past undo does not touch streak)", got.Streak)
	}
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(0)) {
		t.Errorf("LastCompletedAt = %v, want today (untouched)", got.LastCompletedAt)
	}
}

func TestToggleMarkPastDateAdvancesLastCompleted(t *testing.T) {
	threeDaysAgo := day(-3)
	snap := Snapshot{
		CompletedDates:  days(-3),
		Streak:          1,
		LastCompletedAt: &threeDaysAgo,
	}

	got := ToggleCompletion(snap, day(-1), now)
	if !contains(got.CompletedDates, day(-1)) {
		t.Error("yesterday should be added to the set")
	}
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(-1)) {
		t.Errorf("LastCompletedAt = %v, want yesterday", got.LastCompletedAt)
	}
	if got.Streak != 1 {
		t.Errorf("Streak = %d, want 1 (past mark does not recompute)", got.Streak)
	}
}

func TestToggleMarkPastDateOlderThanLastCompleted(t *testing.T) {
	today := day(0)
	snap := Snapshot{
		CompletedDates:  days(0),
		Streak:          1,
		LastCompletedAt: &today,
	}

	got := ToggleCompletion(snap, day(-2), now)
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(0)) {
		t.Errorf("LastCompletedAt = %v, want today (already newer)", got.LastCompletedAt)
	}
}

func TestToggleTwiceRestoresDateSet(t *testing.T) {
	yesterday := day(-1)
	snap := Snapshot{
		CompletedDates:  days(-2, -1),
		Streak:          2,
		LastCompletedAt: &yesterday,
	}

	once := ToggleCompletion(snap, day(0), now)
	twice := ToggleCompletion(once, day(0), now)

	if len(twice.CompletedDates) != len(snap.CompletedDates) {
		t.Fatalf("set size = %d, want %d", len(twice.CompletedDates), len(snap.CompletedDates))
	}
	for _, d := range snap.CompletedDates {
		if !contains(twice.CompletedDates, d) {
			t.Errorf("date %v missing after double toggle", d)
		}
	}
}

func TestToggleNormalizesTargetDate(t *testing.T) {
	lateEvening := time.Date(2025, 6, 15, 23, 45, 0, 0, time.UTC)
	got := ToggleCompletion(Snapshot{}, lateEvening, now)

	if !contains(got.CompletedDates, day(0)) {
		t.Error("target should be stored as start-of-day")
	}
	if !got.CompletedDates[0].Equal(day(0)) {
		t.Errorf("stored date = %v, want %v", got.CompletedDates[0], day(0))
	}
}

// --- Recalculate ---

func TestRecalculateEmpty(t *testing.T) {
	got := Recalculate(nil)
	if got.Streak != 0 || got.LastCompletedAt != nil {
		t.Errorf("Recalculate(nil) = {%d, %v}, want {0, nil}", got.Streak, got.LastCompletedAt)
	}
}

func TestRecalculateConsecutiveRun(t *testing.T) {
	got := Recalculate(days(-2, -1, 0))
	if got.Streak != 3 {
		t.Errorf("Streak = %d, want 3", got.Streak)
	}
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(0)) {
		t.Errorf("LastCompletedAt = %v, want most recent date", got.LastCompletedAt)
	}
}

func TestRecalculateStopsAtGap(t *testing.T) {
	got := Recalculate(days(-2, 0))
	if got.Streak != 1 {
		t.Errorf("Streak = %d, want 1 (gap ends the run)", got.Streak)
	}
	if got.LastCompletedAt == nil || !dates.SameDay(*got.LastCompletedAt, day(0)) {
		t.Errorf("LastCompletedAt = %v, want most recent date", got.LastCompletedAt)
	}
}

func TestRecalculateRunBeforeGap(t *testing.T) {
	got := Recalculate(days(-5, -4, -1, 0))
	if got.Streak != 2 {
		t.Errorf("Streak = %d, want 2 (only the run ending at the newest date)", got.Streak)
	}
}

func TestRecalculateUnsortedInput(t *testing.T) {
	got := Recalculate(days(0, -2, -1))
	if got.Streak != 3 {
		t.Errorf("Streak = %d, want 3 regardless of input order", got.Streak)
	}
}

func TestRecalculateSkipsDuplicateDays(t *testing.T) {
	dup := append(days(-1, 0), time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC))
	got := Recalculate(dup)
	if got.Streak != 2 {
		t.Errorf("Streak = %d, want 2 (same-day duplicate ignored)", got.Streak)
	}
}

// --- CheckAndReset ---

func TestCheckAndResetStaleStreak(t *testing.T) {
	threeDaysAgo := day(-3)
	got, changed := CheckAndReset(5, &threeDaysAgo, now)
	if !changed {
		t.Error("a 3-day-old completion should trigger a reset")
	}
	if got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestCheckAndResetKeepsFreshStreak(t *testing.T) {
	for _, offset := range []int{0, -1} {
		last := day(offset)
		got, changed := CheckAndReset(5, &last, now)
		if changed || got != 5 {
			t.Errorf("lastCompleted %d days ago: got (%d, %v), want (5, false)", -offset, got, changed)
		}
	}
}

func TestCheckAndResetNoStreak(t *testing.T) {
	if got, changed := CheckAndReset(0, nil, now); changed || got != 0 {
		t.Errorf("zero streak: got (%d, %v), want (0, false)", got, changed)
	}
	twoDaysAgo := day(-2)
	if _, changed := CheckAndReset(0, &twoDaysAgo, now); changed {
		t.Error("zero streak never needs a correction")
	}
}

// --- InToggleWindow ---

func TestInToggleWindow(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		want   bool
	}{
		{"today", day(0), true},
		{"yesterday", day(-1), true},
		{"two days ago", day(-2), true},
		{"three days ago", day(-3), false},
		{"tomorrow", day(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InToggleWindow(tt.target, now); got != tt.want {
				t.Errorf("InToggleWindow(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
