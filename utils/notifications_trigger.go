package utils

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"evergreenMuseAPI/internal/notification"
)

// NotificationCreator is the slice of the notification service the
// triggers need, kept as an interface so utils stays decoupled from the
// services package.
type NotificationCreator interface {
	CreateNotification(ctx context.Context, req *notification.CreateNotificationRequest) (*notification.Notification, error)
}

// streakMilestones are the streak lengths worth celebrating.
var streakMilestones = map[int]bool{7: true, 14: true, 30: true, 60: true, 100: true, 365: true}

// StreakMilestoneReached fires a push when a habit's streak lands exactly
// on a milestone. Called from the toggle path after the streak grew.
func StreakMilestoneReached(notifier NotificationCreator, userID uuid.UUID, habitTitle string, streakLen int) {
	if notifier == nil || !streakMilestones[streakLen] {
		return
	}

	bgCtx := context.Background()

	req := &notification.CreateNotificationRequest{
		UserID:   userID,
		Type:     notification.TypeStreakMilestone,
		Priority: notification.PriorityHigh,
		Data: map[string]any{
			"habit": habitTitle,
			"days":  streakLen,
		},
	}

	if _, err := notifier.CreateNotification(bgCtx, req); err != nil {
		log.Printf("Failed to create streak milestone notification for user %s: %v", userID, err)
	}
}

// StreakAtRisk warns the user that a habit streak lapses at midnight:
// the streak survived through yesterday but today has no completion yet.
// Called from the habit read path; the notification service's rate limit
// keeps repeated reads from repeating the warning.
func StreakAtRisk(notifier NotificationCreator, userID uuid.UUID, habitTitle string, streakLen int) {
	if notifier == nil || streakLen <= 0 {
		return
	}

	bgCtx := context.Background()

	req := &notification.CreateNotificationRequest{
		UserID:   userID,
		Type:     notification.TypeStreakRisk,
		Priority: notification.PriorityHigh,
		Data: map[string]any{
			"habit": habitTitle,
			"days":  streakLen,
		},
	}

	if _, err := notifier.CreateNotification(bgCtx, req); err != nil {
		log.Printf("Failed to create streak risk notification for user %s: %v", userID, err)
	}
}

// ScheduleReviewReminder queues a review_due notification for the moment a
// seed comes back due. The dispatcher's scheduled-notification processor
// picks it up when the time arrives.
func ScheduleReviewReminder(notifier NotificationCreator, userID uuid.UUID, dueAt time.Time) {
	if notifier == nil {
		return
	}

	bgCtx := context.Background()

	req := &notification.CreateNotificationRequest{
		UserID:       userID,
		Type:         notification.TypeReviewDue,
		Priority:     notification.PriorityNormal,
		ScheduledFor: &dueAt,
		Data:         map[string]any{},
	}

	if _, err := notifier.CreateNotification(bgCtx, req); err != nil {
		log.Printf("Failed to schedule review reminder for user %s: %v", userID, err)
	}
}

// PostLiked notifies a post's author that someone liked it.
func PostLiked(notifier NotificationCreator, authorID uuid.UUID, likerID uuid.UUID, likerUsername string) {
	if notifier == nil || authorID == likerID {
		return
	}

	bgCtx := context.Background()

	req := &notification.CreateNotificationRequest{
		UserID:   authorID,
		Type:     notification.TypePostLiked,
		Priority: notification.PriorityNormal,
		ActorID:  &likerID,
		Data: map[string]any{
			"username": likerUsername,
		},
	}

	if _, err := notifier.CreateNotification(bgCtx, req); err != nil {
		log.Printf("Failed to create post liked notification for user %s: %v", authorID, err)
	}
}
