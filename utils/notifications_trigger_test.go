package utils

import (
	"context"
	"sync"
	"testing"
	"time"

	"evergreenMuseAPI/internal/notification"

	"github.com/google/uuid"
)

type fakeNotifier struct {
	mu       sync.Mutex
	requests []*notification.CreateNotificationRequest
}

func (f *fakeNotifier) CreateNotification(ctx context.Context, req *notification.CreateNotificationRequest) (*notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return &notification.Notification{ID: uuid.New(), UserID: req.UserID, Type: req.Type}, nil
}

func (f *fakeNotifier) sent() []*notification.CreateNotificationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func TestStreakAtRiskFires(t *testing.T) {
	notifier := &fakeNotifier{}
	userID := uuid.New()

	StreakAtRisk(notifier, userID, "Morning run", 12)

	sent := notifier.sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sent))
	}
	req := sent[0]
	if req.Type != notification.TypeStreakRisk {
		t.Errorf("type = %s, want %s", req.Type, notification.TypeStreakRisk)
	}
	if req.UserID != userID {
		t.Errorf("user = %s, want %s", req.UserID, userID)
	}
	if req.Data["habit"] != "Morning run" || req.Data["days"] != 12 {
		t.Errorf("unexpected data payload: %v", req.Data)
	}
}

func TestStreakAtRiskSkipsZeroStreak(t *testing.T) {
	notifier := &fakeNotifier{}

	StreakAtRisk(notifier, uuid.New(), "Morning run", 0)

	if len(notifier.sent()) != 0 {
		t.Fatal("a dead streak should not trigger a risk warning")
	}
}

func TestStreakMilestoneReachedOnlyAtMilestones(t *testing.T) {
	notifier := &fakeNotifier{}
	userID := uuid.New()

	for _, days := range []int{1, 6, 8, 13, 29, 99} {
		StreakMilestoneReached(notifier, userID, "Read", days)
	}
	if len(notifier.sent()) != 0 {
		t.Fatalf("non-milestone lengths fired %d notifications", len(notifier.sent()))
	}

	for _, days := range []int{7, 14, 30, 60, 100, 365} {
		StreakMilestoneReached(notifier, userID, "Read", days)
	}
	sent := notifier.sent()
	if len(sent) != 6 {
		t.Fatalf("expected 6 milestone notifications, got %d", len(sent))
	}
	for _, req := range sent {
		if req.Type != notification.TypeStreakMilestone {
			t.Errorf("type = %s, want %s", req.Type, notification.TypeStreakMilestone)
		}
	}
}

func TestScheduleReviewReminderCarriesDueTime(t *testing.T) {
	notifier := &fakeNotifier{}
	dueAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	ScheduleReviewReminder(notifier, uuid.New(), dueAt)

	sent := notifier.sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sent))
	}
	if sent[0].Type != notification.TypeReviewDue {
		t.Errorf("type = %s, want %s", sent[0].Type, notification.TypeReviewDue)
	}
	if sent[0].ScheduledFor == nil || !sent[0].ScheduledFor.Equal(dueAt) {
		t.Errorf("scheduled_for = %v, want %v", sent[0].ScheduledFor, dueAt)
	}
}

func TestPostLikedSkipsSelfLike(t *testing.T) {
	notifier := &fakeNotifier{}
	author := uuid.New()

	PostLiked(notifier, author, author, "self")
	if len(notifier.sent()) != 0 {
		t.Fatal("liking your own post should not notify")
	}

	liker := uuid.New()
	PostLiked(notifier, author, liker, "friend")
	sent := notifier.sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sent))
	}
	if sent[0].Type != notification.TypePostLiked {
		t.Errorf("type = %s, want %s", sent[0].Type, notification.TypePostLiked)
	}
	if sent[0].ActorID == nil || *sent[0].ActorID != liker {
		t.Errorf("actor = %v, want %s", sent[0].ActorID, liker)
	}
}

func TestTriggersTolerateNilNotifier(t *testing.T) {
	// Must not panic.
	StreakAtRisk(nil, uuid.New(), "x", 5)
	StreakMilestoneReached(nil, uuid.New(), "x", 7)
	ScheduleReviewReminder(nil, uuid.New(), time.Now())
	PostLiked(nil, uuid.New(), uuid.New(), "x")
}
