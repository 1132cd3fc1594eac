package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"evergreenMuseAPI/internal/seed"
	"evergreenMuseAPI/internal/srs"
	"evergreenMuseAPI/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LearningService struct {
	db                  *pgxpool.Pool
	notificationService *NotificationService
}

func NewLearningService(db *pgxpool.Pool, notificationService *NotificationService) *LearningService {
	return &LearningService{db: db, notificationService: notificationService}
}

func (s *LearningService) getUserID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}
	return userID, nil
}

func (s *LearningService) GetSeeds(ctx context.Context, clerkID string) ([]*seed.Seed, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, front, back, category, box, next_review, created_at
	FROM seeds
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seeds: %w", err)
	}
	defer rows.Close()

	return scanSeeds(rows)
}

// CreateSeed plants a new learning seed in box 0, due immediately.
func (s *LearningService) CreateSeed(ctx context.Context, clerkID string, req *seed.CreateSeedRequest) (*seed.Seed, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	query := `
	INSERT INTO seeds (id, user_id, front, back, category, box, next_review, created_at)
	VALUES ($1, $2, $3, $4, $5, 0, NOW(), NOW())
	RETURNING id, user_id, front, back, category, box, next_review, created_at
	`

	sd := &seed.Seed{}
	err = s.db.QueryRow(ctx, query, uuid.New(), userID, req.Front, req.Back, category).Scan(
		&sd.ID,
		&sd.UserID,
		&sd.Front,
		&sd.Back,
		&sd.Category,
		&sd.Box,
		&sd.NextReview,
		&sd.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create seed: %w", err)
	}

	return sd, nil
}

// GetReviewSession returns the currently due seeds in a randomized order.
// Each review removes its seed from the caller's queue; the session ends
// when the queue is exhausted.
func (s *LearningService) GetReviewSession(ctx context.Context, clerkID string) (*seed.ReviewSessionResponse, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, front, back, category, box, next_review, created_at
	FROM seeds
	WHERE user_id = $1 AND next_review <= NOW()
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get due seeds: %w", err)
	}
	defer rows.Close()

	due, err := scanSeeds(rows)
	if err != nil {
		return nil, err
	}

	shuffled := utils.ShuffleSeeds(due)
	return &seed.ReviewSessionResponse{Seeds: shuffled, Count: len(shuffled)}, nil
}

// ReviewSeed applies a review outcome: the scheduler computes the new box
// and due date, both are persisted, and a reminder is queued for the day
// the seed comes back.
func (s *LearningService) ReviewSeed(ctx context.Context, clerkID string, seedID uuid.UUID, outcome srs.Outcome) (*seed.Seed, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	var currentBox int
	err = s.db.QueryRow(ctx, "SELECT box FROM seeds WHERE id = $1 AND user_id = $2", seedID, userID).Scan(&currentBox)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("seed not found")
		}
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}

	update := srs.CalculateUpdate(currentBox, outcome, time.Now())

	query := `
	UPDATE seeds
	SET box = $3, next_review = $4
	WHERE id = $1 AND user_id = $2
	RETURNING id, user_id, front, back, category, box, next_review, created_at
	`

	sd := &seed.Seed{}
	err = s.db.QueryRow(ctx, query, seedID, userID, update.NewLevel, update.NextReview).Scan(
		&sd.ID,
		&sd.UserID,
		&sd.Front,
		&sd.Back,
		&sd.Category,
		&sd.Box,
		&sd.NextReview,
		&sd.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update seed: %w", err)
	}

	go utils.ScheduleReviewReminder(s.notificationService, userID, update.NextReview)

	return sd, nil
}

func (s *LearningService) DeleteSeed(ctx context.Context, clerkID string, seedID uuid.UUID) error {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(ctx, "DELETE FROM seeds WHERE id = $1 AND user_id = $2", seedID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete seed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("seed not found")
	}
	return nil
}

func scanSeeds(rows pgx.Rows) ([]*seed.Seed, error) {
	var seeds []*seed.Seed
	for rows.Next() {
		sd := &seed.Seed{}
		err := rows.Scan(
			&sd.ID,
			&sd.UserID,
			&sd.Front,
			&sd.Back,
			&sd.Category,
			&sd.Box,
			&sd.NextReview,
			&sd.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seed: %w", err)
		}
		seeds = append(seeds, sd)
	}
	return seeds, nil
}
