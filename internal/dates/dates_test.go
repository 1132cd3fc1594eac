package dates

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(t0)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", t0, got, want)
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	if !SameDay(morning, night) {
		t.Error("SameDay should treat any two instants on one calendar day as equal")
	}
	if SameDay(night, night.Add(2*time.Second)) {
		t.Error("SameDay should not match across midnight")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name    string
		earlier time.Time
		later   time.Time
		want    int
	}{
		{"same day", t0, t0.Add(5 * time.Hour), 0},
		{"across midnight", time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC), 1},
		{"one week", t0, t0.AddDate(0, 0, 7), 7},
		{"negative when later comes first", t0.AddDate(0, 0, 3), t0, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.earlier, tt.later); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsTodayAndYesterday(t *testing.T) {
	today := StartOfDay(t0)
	yesterday := today.AddDate(0, 0, -1)
	twoDaysAgo := today.AddDate(0, 0, -2)

	if !IsToday(today, t0) {
		t.Error("IsToday(startOfToday) should be true")
	}
	if IsToday(yesterday, t0) {
		t.Error("IsToday(yesterday) should be false")
	}
	if !IsYesterday(yesterday, t0) {
		t.Error("IsYesterday(yesterday) should be true")
	}
	if IsYesterday(twoDaysAgo, t0) {
		t.Error("IsYesterday(two days ago) should be false")
	}
}
