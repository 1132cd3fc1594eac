package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"evergreenMuseAPI/middleware"

	"github.com/gorilla/mux"
)

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), middleware.ClerkIDKey, "clerk_test_user")
	return req.WithContext(ctx)
}

func TestToggleHabitRequiresAuth(t *testing.T) {
	h := NewHabitHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/habits/abc/toggle", strings.NewReader("{}"))
	rr := httptest.NewRecorder()

	h.ToggleHabit(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestToggleHabitRejectsInvalidID(t *testing.T) {
	h := NewHabitHandler(nil)

	req := authedRequest(t, http.MethodPost, "/api/v1/habits/not-a-uuid/toggle", "")
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rr := httptest.NewRecorder()

	h.ToggleHabit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestToggleHabitRejectsMalformedDate(t *testing.T) {
	h := NewHabitHandler(nil)

	req := authedRequest(t, http.MethodPost,
		"/api/v1/habits/7f9c24e5-2f0b-4b7e-9d15-0b5b3f6a8c21/toggle",
		`{"date": "15-06-2025"}`)
	req = mux.SetURLVars(req, map[string]string{"id": "7f9c24e5-2f0b-4b7e-9d15-0b5b3f6a8c21"})
	rr := httptest.NewRecorder()

	h.ToggleHabit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestToggleHabitRejectsDatesOutsideWindow(t *testing.T) {
	h := NewHabitHandler(nil)

	tooOld := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	future := time.Now().AddDate(0, 0, 3).Format("2006-01-02")

	for _, date := range []string{tooOld, future} {
		req := authedRequest(t, http.MethodPost,
			"/api/v1/habits/7f9c24e5-2f0b-4b7e-9d15-0b5b3f6a8c21/toggle",
			`{"date": "`+date+`"}`)
		req = mux.SetURLVars(req, map[string]string{"id": "7f9c24e5-2f0b-4b7e-9d15-0b5b3f6a8c21"})
		rr := httptest.NewRecorder()

		h.ToggleHabit(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("date %s: expected 400, got %d", date, rr.Code)
		}
	}
}

func TestCreateHabitRequiresTitle(t *testing.T) {
	h := NewHabitHandler(nil)

	req := authedRequest(t, http.MethodPost, "/api/v1/habits", `{"title": "   "}`)
	rr := httptest.NewRecorder()

	h.CreateHabit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetCalendarValidatesMonth(t *testing.T) {
	h := NewHabitHandler(nil)

	req := authedRequest(t, http.MethodGet, "/api/v1/habits/calendar?year=2025&month=13", "")
	rr := httptest.NewRecorder()

	h.GetCalendar(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
