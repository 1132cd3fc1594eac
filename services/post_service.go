package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"evergreenMuseAPI/internal/post"
	"evergreenMuseAPI/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostService struct {
	db                  *pgxpool.Pool
	notificationService *NotificationService
}

func NewPostService(db *pgxpool.Pool, notificationService *NotificationService) *PostService {
	return &PostService{db: db, notificationService: notificationService}
}

func (s *PostService) getUserID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}
	return userID, nil
}

// GetFeed returns the global feed, newest first, with author profile data
// joined in.
func (s *PostService) GetFeed(ctx context.Context, page, pageSize int) (*post.FeedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `
	SELECT p.id, p.author_id, u.username, COALESCE(u.profile_pic_url, ''),
		   p.title, p.text, p.image_url, p.image_caption,
		   p.song_title, p.artist_name, p.album_art_url, p.audio_preview_url,
		   p.like_ids, p.created_at
	FROM posts p
	JOIN users u ON u.id = p.author_id
	ORDER BY p.created_at DESC
	LIMIT $1 OFFSET $2
	`

	rows, err := s.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}
	defer rows.Close()

	var posts []*post.Post
	for rows.Next() {
		p := &post.Post{}
		err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.AuthorUsername,
			&p.AuthorProfilePicURL,
			&p.Title,
			&p.Text,
			&p.ImageURL,
			&p.ImageCaption,
			&p.SongTitle,
			&p.ArtistName,
			&p.AlbumArtURL,
			&p.AudioPreviewURL,
			&p.LikeIDs,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.LikeCount = len(p.LikeIDs)
		posts = append(posts, p)
	}

	var totalCount int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts").Scan(&totalCount); err != nil {
		log.Printf("GetFeed: failed to count posts: %v", err)
	}

	return &post.FeedResponse{
		Posts:      posts,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

func (s *PostService) CreatePost(ctx context.Context, clerkID string, req *post.CreatePostRequest) (*post.Post, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	INSERT INTO posts (
		id, author_id, title, text, image_url, image_caption,
		song_title, artist_name, album_art_url, audio_preview_url,
		like_ids, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, '{}', NOW())
	RETURNING id, author_id, title, text, image_url, image_caption,
			  song_title, artist_name, album_art_url, audio_preview_url,
			  like_ids, created_at
	`

	p := &post.Post{}
	err = s.db.QueryRow(
		ctx,
		query,
		uuid.New(),
		userID,
		req.Title,
		req.Text,
		req.ImageURL,
		req.ImageCaption,
		req.SongTitle,
		req.ArtistName,
		req.AlbumArtURL,
		req.AudioPreviewURL,
	).Scan(
		&p.ID,
		&p.AuthorID,
		&p.Title,
		&p.Text,
		&p.ImageURL,
		&p.ImageCaption,
		&p.SongTitle,
		&p.ArtistName,
		&p.AlbumArtURL,
		&p.AudioPreviewURL,
		&p.LikeIDs,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.db.QueryRow(ctx, "SELECT username, COALESCE(profile_pic_url, '') FROM users WHERE id = $1", userID).
		Scan(&p.AuthorUsername, &p.AuthorProfilePicURL)

	return p, nil
}

func (s *PostService) DeletePost(ctx context.Context, clerkID string, postID uuid.UUID) error {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(ctx, "DELETE FROM posts WHERE id = $1 AND author_id = $2", postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("post not found")
	}
	return nil
}

// LikePost adds the liker's clerk id to the post's like set. array_append
// keeps concurrent likes commutative; the WHERE guard keeps the operation
// idempotent for double-clicks.
func (s *PostService) LikePost(ctx context.Context, clerkID string, postID uuid.UUID) (*post.Post, error) {
	query := `
	UPDATE posts
	SET like_ids = array_append(like_ids, $2)
	WHERE id = $1 AND NOT ($2 = ANY(like_ids))
	RETURNING author_id, like_ids
	`

	var authorID uuid.UUID
	var likeIDs []string
	err := s.db.QueryRow(ctx, query, postID, clerkID).Scan(&authorID, &likeIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already liked or missing; return the current state either way.
			return s.getPost(ctx, postID)
		}
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	likerID, lookupErr := s.getUserID(ctx, clerkID)
	if lookupErr == nil {
		var likerUsername string
		s.db.QueryRow(ctx, "SELECT username FROM users WHERE id = $1", likerID).Scan(&likerUsername)
		go utils.PostLiked(s.notificationService, authorID, likerID, likerUsername)
	}

	return s.getPost(ctx, postID)
}

// UnlikePost removes the liker's clerk id from the post's like set.
func (s *PostService) UnlikePost(ctx context.Context, clerkID string, postID uuid.UUID) (*post.Post, error) {
	_, err := s.db.Exec(ctx, "UPDATE posts SET like_ids = array_remove(like_ids, $2) WHERE id = $1", postID, clerkID)
	if err != nil {
		return nil, fmt.Errorf("failed to unlike post: %w", err)
	}
	return s.getPost(ctx, postID)
}

func (s *PostService) getPost(ctx context.Context, postID uuid.UUID) (*post.Post, error) {
	query := `
	SELECT p.id, p.author_id, u.username, COALESCE(u.profile_pic_url, ''),
		   p.title, p.text, p.image_url, p.image_caption,
		   p.song_title, p.artist_name, p.album_art_url, p.audio_preview_url,
		   p.like_ids, p.created_at
	FROM posts p
	JOIN users u ON u.id = p.author_id
	WHERE p.id = $1
	`

	p := &post.Post{}
	err := s.db.QueryRow(ctx, query, postID).Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorUsername,
		&p.AuthorProfilePicURL,
		&p.Title,
		&p.Text,
		&p.ImageURL,
		&p.ImageCaption,
		&p.SongTitle,
		&p.ArtistName,
		&p.AlbumArtURL,
		&p.AudioPreviewURL,
		&p.LikeIDs,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	p.LikeCount = len(p.LikeIDs)
	return p, nil
}
