package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"evergreenMuseAPI/internal/dates"
	"evergreenMuseAPI/internal/srs"
	"evergreenMuseAPI/internal/stats"
	"evergreenMuseAPI/internal/user"
	"evergreenMuseAPI/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	u := &user.User{
		ID:            uuid.New(),
		ClerkID:       req.ClerkID,
		Email:         req.Email,
		Username:      req.Username,
		Bio:           req.Bio,
		ProfilePicURL: req.ProfilePicURL,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	query := `
	INSERT INTO users (id, clerk_id, email, username, bio, profile_pic_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, clerk_id, email, username, bio, profile_pic_url, email_verified, created_at, updated_at
	`

	err := s.db.QueryRow(
		ctx,
		query,
		u.ID,
		u.ClerkID,
		u.Email,
		u.Username,
		u.Bio,
		u.ProfilePicURL,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.Bio,
		&u.ProfilePicURL,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		// The unique index on username doubles as the username lock.
		if strings.Contains(err.Error(), "users_username_key") {
			return nil, fmt.Errorf("username @%s is already taken", req.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *UserService) GetUserByClerkID(ctx context.Context, clerkID string) (*user.User, error) {
	query := `
	SELECT id, clerk_id, email, username, bio, profile_pic_url, email_verified, created_at, updated_at
	FROM users
	WHERE clerk_id = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, clerkID).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.Bio,
		&u.ProfilePicURL,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserService) UpdateProfileByClerkID(ctx context.Context, clerkID string, req *user.UpdateProfileRequest) (*user.User, error) {
	query := `
	UPDATE users
	SET
		username = COALESCE(NULLIF($2, ''), username),
		bio = COALESCE(NULLIF($3, ''), bio),
		profile_pic_url = COALESCE(NULLIF($4, ''), profile_pic_url),
		updated_at = NOW()
	WHERE clerk_id = $1
	RETURNING id, clerk_id, email, username, bio, profile_pic_url, email_verified, created_at, updated_at
	`

	u := &user.User{}
	err := s.db.QueryRow(
		ctx,
		query,
		clerkID,
		req.Username,
		req.Bio,
		req.ProfilePicURL,
	).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.Bio,
		&u.ProfilePicURL,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		if strings.Contains(err.Error(), "users_username_key") {
			return nil, fmt.Errorf("username @%s is already taken", req.Username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

func (s *UserService) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	result, err := s.db.Exec(ctx, "DELETE FROM users WHERE clerk_id = $1", clerkID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func (s *UserService) SetEmailVerified(ctx context.Context, clerkID string, verified bool) error {
	_, err := s.db.Exec(ctx, "UPDATE users SET email_verified = $2, updated_at = NOW() WHERE clerk_id = $1", clerkID, verified)
	if err != nil {
		return fmt.Errorf("failed to update email verification: %w", err)
	}
	return nil
}

func (s *UserService) SearchUsers(ctx context.Context, query string, limit int) (*user.SearchResult, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	sqlQuery := `
	SELECT id, clerk_id, email, username, bio, profile_pic_url, email_verified, created_at, updated_at
	FROM users
	WHERE username ILIKE $1
	ORDER BY username
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, sqlQuery, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u := &user.User{}
		err := rows.Scan(
			&u.ID,
			&u.ClerkID,
			&u.Email,
			&u.Username,
			&u.Bio,
			&u.ProfilePicURL,
			&u.EmailVerified,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return &user.SearchResult{Users: users, Count: len(users)}, nil
}

// GetUserStats assembles the dashboard summary: habit counts and streaks,
// seed due/mastered counts, posts, and the blended growth score.
func (s *UserService) GetUserStats(ctx context.Context, clerkID string) (*stats.UserStats, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}

	result := &stats.UserStats{}

	query := `
	SELECT
		COUNT(*) AS total_habits,
		COUNT(*) FILTER (WHERE last_completed = CURRENT_DATE) AS completed_today,
		COALESCE(MAX(streak), 0) AS best_streak,
		COALESCE(SUM(cardinality(completed_dates)), 0) AS total_completions
	FROM habits
	WHERE user_id = $1
	`
	err = s.db.QueryRow(ctx, query, userID).Scan(
		&result.TotalHabits,
		&result.CompletedToday,
		&result.BestStreak,
		&result.TotalCompletions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit stats: %w", err)
	}

	query = `
	SELECT
		COUNT(*) AS total_seeds,
		COUNT(*) FILTER (WHERE next_review <= NOW()) AS seeds_due,
		COUNT(*) FILTER (WHERE box = $2) AS seeds_mastered
	FROM seeds
	WHERE user_id = $1
	`
	err = s.db.QueryRow(ctx, query, userID, srs.MaxLevel).Scan(
		&result.TotalSeeds,
		&result.SeedsDue,
		&result.SeedsMastered,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get seed stats: %w", err)
	}

	err = s.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts WHERE author_id = $1", userID).Scan(&result.PostsCount)
	if err != nil {
		log.Printf("GetUserStats: failed to count posts for %s: %v", userID, err)
	}

	// BestStreak can be stale until the habit list applies its lazy reset;
	// double-check it here against last_completed.
	var lastCompleted *time.Time
	err = s.db.QueryRow(ctx, "SELECT MAX(last_completed) FROM habits WHERE user_id = $1 AND streak > 0", userID).Scan(&lastCompleted)
	if err == nil && lastCompleted != nil {
		now := time.Now()
		if !dates.IsToday(*lastCompleted, now) && !dates.IsYesterday(*lastCompleted, now) {
			result.BestStreak = 0
		}
	}

	result.GrowthScore = utils.CalculateGrowthScore(result.BestStreak, result.TotalCompletions, result.SeedsMastered)

	return result, nil
}
