package notification

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeStreakMilestone NotificationType = "streak_milestone"
	TypeStreakRisk      NotificationType = "streak_risk"
	TypeReviewDue       NotificationType = "review_due"
	TypePostLiked       NotificationType = "post_liked"
	TypeTest            NotificationType = "test"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusRead    NotificationStatus = "read"
	StatusFailed  NotificationStatus = "failed"
)

type Notification struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	Type          NotificationType     `json:"type"`
	Priority      NotificationPriority `json:"priority"`
	Status        NotificationStatus   `json:"status"`
	Title         string               `json:"title"`
	Body          string               `json:"body"`
	Data          map[string]any       `json:"data"`
	ActorID       *uuid.UUID           `json:"actor_id,omitempty"`
	ScheduledFor  *time.Time           `json:"scheduled_for,omitempty"`
	SentAt        *time.Time           `json:"sent_at,omitempty"`
	ReadAt        *time.Time           `json:"read_at,omitempty"`
	FailedAt      *time.Time           `json:"failed_at,omitempty"`
	FailureReason *string              `json:"failure_reason,omitempty"`
	RetryCount    int                  `json:"retry_count"`
	ActionURL     *string              `json:"action_url,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	ExpiresAt     *time.Time           `json:"expires_at,omitempty"`
}

type DeviceToken struct {
	Token    string    `json:"token"`
	Platform string    `json:"platform"`
	AddedAt  time.Time `json:"added_at"`
	LastUsed time.Time `json:"last_used"`
}

type NotificationPreferences struct {
	ID                      uuid.UUID       `json:"id"`
	UserID                  uuid.UUID       `json:"user_id"`
	PushEnabled             bool            `json:"push_enabled"`
	InAppEnabled            bool            `json:"in_app_enabled"`
	EnabledTypes            map[string]bool `json:"enabled_types"`
	QuietHoursEnabled       bool            `json:"quiet_hours_enabled"`
	QuietHoursStart         string          `json:"quiet_hours_start"` // HH:MM format
	QuietHoursEnd           string          `json:"quiet_hours_end"`
	QuietHoursTimezone      string          `json:"quiet_hours_timezone"`
	MaxNotificationsPerHour int             `json:"max_notifications_per_hour"`
	MaxNotificationsPerDay  int             `json:"max_notifications_per_day"`
	DeviceTokens            []DeviceToken   `json:"device_tokens"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// InQuietHours reports whether now falls inside the user's quiet-hours
// window. A window whose start is later than its end spans midnight.
func (p *NotificationPreferences) InQuietHours(now time.Time) bool {
	if !p.QuietHoursEnabled || p.QuietHoursStart == "" || p.QuietHoursEnd == "" {
		return false
	}

	loc, err := time.LoadLocation(p.QuietHoursTimezone)
	if err != nil || p.QuietHoursTimezone == "" {
		loc = time.UTC
	}

	start, errStart := time.Parse("15:04", p.QuietHoursStart)
	end, errEnd := time.Parse("15:04", p.QuietHoursEnd)
	if errStart != nil || errEnd != nil {
		return false
	}

	local := now.In(loc)
	minutes := local.Hour()*60 + local.Minute()
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()

	if startMin <= endMin {
		return minutes >= startMin && minutes < endMin
	}
	return minutes >= startMin || minutes < endMin
}

// QuietHoursEndAfter returns the next moment the quiet-hours window
// closes at or after now. Callers should only use it when InQuietHours
// reported true.
func (p *NotificationPreferences) QuietHoursEndAfter(now time.Time) time.Time {
	loc, err := time.LoadLocation(p.QuietHoursTimezone)
	if err != nil || p.QuietHoursTimezone == "" {
		loc = time.UTC
	}

	end, err := time.Parse("15:04", p.QuietHoursEnd)
	if err != nil {
		return now
	}

	local := now.In(loc)
	endToday := time.Date(local.Year(), local.Month(), local.Day(), end.Hour(), end.Minute(), 0, 0, loc)
	if !endToday.After(local) {
		endToday = endToday.AddDate(0, 0, 1)
	}
	return endToday
}

type NotificationTemplate struct {
	ID              uuid.UUID            `json:"id"`
	Type            NotificationType     `json:"type"`
	TitleTemplate   string               `json:"title_template"`
	BodyTemplate    string               `json:"body_template"`
	DefaultPriority NotificationPriority `json:"default_priority"`
	TTLHours        int                  `json:"ttl_hours"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
