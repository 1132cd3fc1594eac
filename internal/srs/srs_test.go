package srs

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 15, 14, 45, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestParseOutcome(t *testing.T) {
	for _, valid := range []string{"forgot", "hard", "easy"} {
		if _, err := ParseOutcome(valid); err != nil {
			t.Errorf("ParseOutcome(%q) returned error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "EASY", "again", "good"} {
		if _, err := ParseOutcome(invalid); err == nil {
			t.Errorf("ParseOutcome(%q) should fail", invalid)
		}
	}
}

func TestCalculateUpdateForgot(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		got := CalculateUpdate(level, OutcomeForgot, t0)
		if got.NewLevel != 0 {
			t.Errorf("forgot at level %d: NewLevel = %d, want 0", level, got.NewLevel)
		}
		if !got.NextReview.Equal(day(1)) {
			t.Errorf("forgot at level %d: NextReview = %v, want %v", level, got.NextReview, day(1))
		}
	}
}

func TestCalculateUpdateHard(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		got := CalculateUpdate(level, OutcomeHard, t0)
		if got.NewLevel != level {
			t.Errorf("hard at level %d: NewLevel = %d, want %d", level, got.NewLevel, level)
		}
		if !got.NextReview.Equal(day(1)) {
			t.Errorf("hard at level %d: NextReview = %v, want %v", level, got.NextReview, day(1))
		}
	}
}

func TestCalculateUpdateEasy(t *testing.T) {
	wantDays := []int{2, 4, 8, 16, 32, 32} // interval of the level after promotion
	for level := 0; level <= MaxLevel; level++ {
		got := CalculateUpdate(level, OutcomeEasy, t0)

		wantLevel := level + 1
		if wantLevel > MaxLevel {
			wantLevel = MaxLevel
		}
		if got.NewLevel != wantLevel {
			t.Errorf("easy at level %d: NewLevel = %d, want %d", level, got.NewLevel, wantLevel)
		}
		if !got.NextReview.Equal(day(wantDays[level])) {
			t.Errorf("easy at level %d: NextReview = %v, want %v", level, got.NextReview, day(wantDays[level]))
		}
	}
}

func TestCalculateUpdateEasyMidLevel(t *testing.T) {
	got := CalculateUpdate(3, OutcomeEasy, t0)
	if got.NewLevel != 4 {
		t.Errorf("NewLevel = %d, want 4", got.NewLevel)
	}
	if !got.NextReview.Equal(day(16)) {
		t.Errorf("NextReview = %v, want today+16", got.NextReview)
	}
}

func TestCalculateUpdateEasyCapped(t *testing.T) {
	got := CalculateUpdate(MaxLevel, OutcomeEasy, t0)
	if got.NewLevel != MaxLevel {
		t.Errorf("NewLevel = %d, want %d (capped)", got.NewLevel, MaxLevel)
	}
	if !got.NextReview.Equal(day(32)) {
		t.Errorf("NextReview = %v, want today+32", got.NextReview)
	}
}

func TestCalculateUpdateAnchorsAtStartOfDay(t *testing.T) {
	morning := time.Date(2025, 6, 15, 0, 10, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 23, 50, 0, 0, time.UTC)

	a := CalculateUpdate(2, OutcomeEasy, morning)
	b := CalculateUpdate(2, OutcomeEasy, evening)
	if !a.NextReview.Equal(b.NextReview) {
		t.Errorf("same-day reviews disagree: %v vs %v", a.NextReview, b.NextReview)
	}
}
