package notification

import (
	"testing"
	"time"
)

func quietPrefs(start, end, tz string) *NotificationPreferences {
	return &NotificationPreferences{
		QuietHoursEnabled:  true,
		QuietHoursStart:    start,
		QuietHoursEnd:      end,
		QuietHoursTimezone: tz,
	}
}

func TestInQuietHoursSameDayWindow(t *testing.T) {
	prefs := quietPrefs("13:00", "15:00", "UTC")

	inside := time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)
	before := time.Date(2026, 8, 15, 12, 59, 0, 0, time.UTC)
	after := time.Date(2026, 8, 15, 15, 0, 0, 0, time.UTC)

	if !prefs.InQuietHours(inside) {
		t.Error("14:00 should be inside a 13:00-15:00 window")
	}
	if prefs.InQuietHours(before) {
		t.Error("12:59 should be outside a 13:00-15:00 window")
	}
	if prefs.InQuietHours(after) {
		t.Error("15:00 should be outside a 13:00-15:00 window")
	}
}

func TestInQuietHoursOvernightWindow(t *testing.T) {
	prefs := quietPrefs("22:00", "07:00", "UTC")

	lateNight := time.Date(2026, 8, 15, 23, 30, 0, 0, time.UTC)
	earlyMorning := time.Date(2026, 8, 16, 6, 30, 0, 0, time.UTC)
	midday := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	if !prefs.InQuietHours(lateNight) {
		t.Error("23:30 should be inside a 22:00-07:00 window")
	}
	if !prefs.InQuietHours(earlyMorning) {
		t.Error("06:30 should be inside a 22:00-07:00 window")
	}
	if prefs.InQuietHours(midday) {
		t.Error("12:00 should be outside a 22:00-07:00 window")
	}
}

func TestInQuietHoursDisabledOrUnset(t *testing.T) {
	now := time.Date(2026, 8, 15, 23, 30, 0, 0, time.UTC)

	disabled := quietPrefs("22:00", "07:00", "UTC")
	disabled.QuietHoursEnabled = false
	if disabled.InQuietHours(now) {
		t.Error("disabled quiet hours should never match")
	}

	unset := &NotificationPreferences{QuietHoursEnabled: true}
	if unset.InQuietHours(now) {
		t.Error("quiet hours without a window should never match")
	}

	malformed := quietPrefs("ten pm", "07:00", "UTC")
	if malformed.InQuietHours(now) {
		t.Error("malformed window should never match")
	}
}

func TestQuietHoursEndAfter(t *testing.T) {
	prefs := quietPrefs("22:00", "07:00", "UTC")

	lateNight := time.Date(2026, 8, 15, 23, 30, 0, 0, time.UTC)
	got := prefs.QuietHoursEndAfter(lateNight)
	want := time.Date(2026, 8, 16, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("after 23:30 got %v, want %v", got, want)
	}

	earlyMorning := time.Date(2026, 8, 16, 6, 30, 0, 0, time.UTC)
	got = prefs.QuietHoursEndAfter(earlyMorning)
	if !got.Equal(want) {
		t.Errorf("after 06:30 got %v, want %v", got, want)
	}
}

func TestInQuietHoursHonorsTimezone(t *testing.T) {
	prefs := quietPrefs("22:00", "07:00", "America/New_York")

	// 03:00 UTC is 23:00 or 22:00 in New York depending on DST, inside
	// the window either way.
	nyNight := time.Date(2026, 8, 16, 3, 0, 0, 0, time.UTC)
	if !prefs.InQuietHours(nyNight) {
		t.Error("03:00 UTC should fall inside New York quiet hours")
	}

	// 16:00 UTC is 11:00 or 12:00 in New York, outside the window.
	nyMidday := time.Date(2026, 8, 16, 16, 0, 0, 0, time.UTC)
	if prefs.InQuietHours(nyMidday) {
		t.Error("16:00 UTC should fall outside New York quiet hours")
	}
}
