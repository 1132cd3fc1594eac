package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"evergreenMuseAPI/internal/notification"
)

// PushNotificationProvider abstracts the push transport so the
// dispatcher can run with FCM in production and a mock in tests.
type PushNotificationProvider interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error
}

type DispatchJob struct {
	Notification *notification.Notification
	Preferences  *notification.NotificationPreferences
}

type NotificationDispatcher struct {
	service      *NotificationService
	pushProvider PushNotificationProvider
	jobQueue     chan *DispatchJob
	workerCount  int
	stopChan     chan struct{}
	wg           sync.WaitGroup
}

func NewNotificationDispatcher(service *NotificationService) *NotificationDispatcher {
	d := &NotificationDispatcher{
		service:     service,
		jobQueue:    make(chan *DispatchJob, 100),
		workerCount: 5,
		stopChan:    make(chan struct{}),
	}

	for i := 0; i < d.workerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	d.wg.Add(1)
	go d.processScheduledNotifications()

	d.wg.Add(1)
	go d.cleanupExpiredNotifications()

	return d
}

func (d *NotificationDispatcher) SetPushProvider(provider PushNotificationProvider) {
	d.pushProvider = provider
}

func (d *NotificationDispatcher) worker(id int) {
	defer d.wg.Done()

	for {
		select {
		case job := <-d.jobQueue:
			d.processJob(job)
		case <-d.stopChan:
			return
		}
	}
}

func (d *NotificationDispatcher) processJob(job *DispatchJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	notif := job.Notification
	prefs := job.Preferences

	if prefs.PushEnabled && len(prefs.DeviceTokens) > 0 && d.pushProvider != nil {
		err := d.pushProvider.SendPush(ctx, prefs.DeviceTokens, notif.Title, notif.Body, notif.Data)
		if err != nil {
			log.Printf("push delivery failed for notification %s: %v", notif.ID, err)
			d.markAsFailed(ctx, notif, err.Error())
			return
		}
	}

	d.markAsSent(ctx, notif)
}

// DispatchNotification queues a notification for delivery. Blocks up to
// 5 seconds when the queue is full, then drops with an error.
func (d *NotificationDispatcher) DispatchNotification(ctx context.Context, notif *notification.Notification, prefs *notification.NotificationPreferences) error {
	job := &DispatchJob{
		Notification: notif,
		Preferences:  prefs,
	}

	select {
	case d.jobQueue <- job:
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("dispatch queue full, notification %s dropped", notif.ID)
	}
}

func (d *NotificationDispatcher) processScheduledNotifications() {
	defer d.wg.Done()

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.dispatchDueScheduled()
		case <-d.stopChan:
			return
		}
	}
}

func (d *NotificationDispatcher) dispatchDueScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := `
	SELECT id, user_id, type, priority, status, title, body,
		   actor_id, scheduled_for, action_url, created_at, expires_at
	FROM notifications
	WHERE status = $1 AND scheduled_for IS NOT NULL AND scheduled_for <= NOW()
	LIMIT 100
	`

	rows, err := d.service.db.Query(ctx, query, notification.StatusPending)
	if err != nil {
		log.Printf("failed to fetch scheduled notifications: %v", err)
		return
	}
	defer rows.Close()

	var due []*notification.Notification
	for rows.Next() {
		notif := &notification.Notification{}
		err := rows.Scan(
			&notif.ID, &notif.UserID, &notif.Type, &notif.Priority, &notif.Status,
			&notif.Title, &notif.Body, &notif.ActorID, &notif.ScheduledFor,
			&notif.ActionURL, &notif.CreatedAt, &notif.ExpiresAt,
		)
		if err != nil {
			log.Printf("failed to scan scheduled notification: %v", err)
			continue
		}
		due = append(due, notif)
	}
	rows.Close()

	for _, notif := range due {
		prefs, err := d.service.GetUserPreferencesByUUID(ctx, notif.UserID)
		if err != nil {
			continue
		}
		d.DispatchNotification(ctx, notif, prefs)
	}
}

func (d *NotificationDispatcher) cleanupExpiredNotifications() {
	defer d.wg.Done()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			result, err := d.service.db.Exec(ctx, "DELETE FROM notifications WHERE expires_at < NOW()")
			if err != nil {
				log.Printf("failed to clean up expired notifications: %v", err)
			} else if result.RowsAffected() > 0 {
				log.Printf("cleaned up %d expired notifications", result.RowsAffected())
			}
			cancel()
		case <-d.stopChan:
			return
		}
	}
}

func (d *NotificationDispatcher) markAsSent(ctx context.Context, notif *notification.Notification) {
	query := `UPDATE notifications SET status = $1, sent_at = NOW() WHERE id = $2`
	_, err := d.service.db.Exec(ctx, query, notification.StatusSent, notif.ID)
	if err != nil {
		log.Printf("failed to mark notification %s as sent: %v", notif.ID, err)
	}
}

func (d *NotificationDispatcher) markAsFailed(ctx context.Context, notif *notification.Notification, reason string) {
	retriable := notif.RetryCount < 3 &&
		(notif.Priority == notification.PriorityHigh || notif.Priority == notification.PriorityUrgent)

	if retriable {
		retryAt := time.Now().Add(5 * time.Minute)
		query := `
		UPDATE notifications
		SET status = $1, failure_reason = $2, retry_count = retry_count + 1, scheduled_for = $3
		WHERE id = $4
		`
		_, err := d.service.db.Exec(ctx, query, notification.StatusPending, reason, retryAt, notif.ID)
		if err != nil {
			log.Printf("failed to schedule retry for notification %s: %v", notif.ID, err)
		}
		return
	}

	query := `UPDATE notifications SET status = $1, failed_at = NOW(), failure_reason = $2 WHERE id = $3`
	_, err := d.service.db.Exec(ctx, query, notification.StatusFailed, reason, notif.ID)
	if err != nil {
		log.Printf("failed to mark notification %s as failed: %v", notif.ID, err)
	}
}

func (d *NotificationDispatcher) Stop() {
	close(d.stopChan)
	d.wg.Wait()
}

// MockPushProvider records pushes instead of delivering them.
type MockPushProvider struct {
	mu    sync.Mutex
	Sent  []MockPush
	Fail  bool
}

type MockPush struct {
	Tokens []notification.DeviceToken
	Title  string
	Body   string
}

func (m *MockPushProvider) SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("mock push failure")
	}
	m.Sent = append(m.Sent, MockPush{Tokens: tokens, Title: title, Body: body})
	return nil
}
