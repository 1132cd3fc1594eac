package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"evergreenMuseAPI/internal/dates"
	"evergreenMuseAPI/internal/habit"
	"evergreenMuseAPI/internal/streak"
	"evergreenMuseAPI/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HabitService struct {
	db                  *pgxpool.Pool
	notificationService *NotificationService
}

func NewHabitService(db *pgxpool.Pool, notificationService *NotificationService) *HabitService {
	return &HabitService{db: db, notificationService: notificationService}
}

func (s *HabitService) getUserID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}
	return userID, nil
}

// GetHabits returns the user's habits, newest first. Streak staleness is
// corrected lazily here: a habit whose last completion is older than
// yesterday gets its streak zeroed in the returned snapshot and in the DB,
// so no background job is needed.
func (s *HabitService) GetHabits(ctx context.Context, clerkID string) ([]*habit.Habit, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, title, streak, last_completed, completed_dates, created_at, updated_at
	FROM habits
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	var habits []*habit.Habit
	for rows.Next() {
		h := &habit.Habit{}
		err := rows.Scan(
			&h.ID,
			&h.UserID,
			&h.Title,
			&h.Streak,
			&h.LastCompleted,
			&h.CompletedDates,
			&h.CreatedAt,
			&h.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}

		if corrected, changed := streak.CheckAndReset(h.Streak, h.LastCompleted, now); changed {
			h.Streak = corrected
			if _, err := s.db.Exec(ctx, "UPDATE habits SET streak = 0, updated_at = NOW() WHERE id = $1", h.ID); err != nil {
				log.Printf("GetHabits: failed to persist streak reset for habit %s: %v", h.ID, err)
			}
		} else if h.Streak > 0 && h.LastCompleted != nil && dates.IsYesterday(*h.LastCompleted, now) {
			// Streak survived yesterday but today is still unmarked.
			go utils.StreakAtRisk(s.notificationService, userID, h.Title, h.Streak)
		}

		habits = append(habits, h)
	}

	return habits, nil
}

func (s *HabitService) CreateHabit(ctx context.Context, clerkID string, req *habit.CreateHabitRequest) (*habit.Habit, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	INSERT INTO habits (id, user_id, title, streak, completed_dates, created_at, updated_at)
	VALUES ($1, $2, $3, 0, '{}', NOW(), NOW())
	RETURNING id, user_id, title, streak, last_completed, completed_dates, created_at, updated_at
	`

	h := &habit.Habit{}
	err = s.db.QueryRow(ctx, query, uuid.New(), userID, req.Title).Scan(
		&h.ID,
		&h.UserID,
		&h.Title,
		&h.Streak,
		&h.LastCompleted,
		&h.CompletedDates,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return h, nil
}

// ToggleHabit flips the completion state of targetDate for the habit and
// persists the streak engine's output. The date set itself is written with
// array_append/array_remove so two racing toggles stay commutative at the
// row level instead of one blindly overwriting the other.
func (s *HabitService) ToggleHabit(ctx context.Context, clerkID string, habitID uuid.UUID, targetDate time.Time) (*habit.Habit, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	h := &habit.Habit{}
	query := `
	SELECT id, user_id, title, streak, last_completed, completed_dates, created_at, updated_at
	FROM habits
	WHERE id = $1 AND user_id = $2
	`
	err = s.db.QueryRow(ctx, query, habitID, userID).Scan(
		&h.ID,
		&h.UserID,
		&h.Title,
		&h.Streak,
		&h.LastCompleted,
		&h.CompletedDates,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("habit not found")
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	now := time.Now()
	day := dates.StartOfDay(targetDate)

	snap := streak.Snapshot{
		CompletedDates:  h.CompletedDates,
		Streak:          h.Streak,
		LastCompletedAt: h.LastCompleted,
	}
	wasCompleted := false
	for _, d := range snap.CompletedDates {
		if dates.SameDay(d, day) {
			wasCompleted = true
			break
		}
	}

	next := streak.ToggleCompletion(snap, day, now)

	dateOp := "array_append(completed_dates, $2)"
	if wasCompleted {
		dateOp = "array_remove(completed_dates, $2)"
	}
	updateQuery := fmt.Sprintf(`
	UPDATE habits
	SET completed_dates = %s, streak = $3, last_completed = $4, updated_at = NOW()
	WHERE id = $1
	RETURNING id, user_id, title, streak, last_completed, completed_dates, created_at, updated_at
	`, dateOp)

	updated := &habit.Habit{}
	err = s.db.QueryRow(ctx, updateQuery, habitID, day, next.Streak, next.LastCompletedAt).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Title,
		&updated.Streak,
		&updated.LastCompleted,
		&updated.CompletedDates,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	if !wasCompleted && updated.Streak > snap.Streak {
		go utils.StreakMilestoneReached(s.notificationService, userID, updated.Title, updated.Streak)
	}

	return updated, nil
}

func (s *HabitService) DeleteHabit(ctx context.Context, clerkID string, habitID uuid.UUID) error {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(ctx, "DELETE FROM habits WHERE id = $1 AND user_id = $2", habitID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("habit not found")
	}
	return nil
}

// GetCalendar reports, for each day of the given month up to today, whether
// every habit that already existed on that day was completed on it.
func (s *HabitService) GetCalendar(ctx context.Context, clerkID string, year int, month time.Month) ([]habit.CalendarDay, error) {
	habits, err := s.GetHabits(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var calendar []habit.CalendarDay
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		entry := habit.CalendarDay{Date: day.Format("2006-01-02")}

		if dates.DaysBetween(day, now) >= 0 {
			existing := 0
			completed := 0
			for _, h := range habits {
				if dates.DaysBetween(h.CreatedAt, day) < 0 {
					continue
				}
				existing++
				for _, c := range h.CompletedDates {
					if dates.SameDay(c, day) {
						completed++
						break
					}
				}
			}
			entry.AllComplete = existing > 0 && completed == existing
		}

		calendar = append(calendar, entry)
	}

	return calendar, nil
}
