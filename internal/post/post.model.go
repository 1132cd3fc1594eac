package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed entry. The song fields are optional metadata filled in
// when the author attaches a track; LikeIDs holds the clerk ids of users
// who liked the post.
type Post struct {
	ID                  uuid.UUID `json:"id"`
	AuthorID            uuid.UUID `json:"authorId"`
	AuthorUsername      string    `json:"authorUsername"`
	AuthorProfilePicURL string    `json:"authorProfilePicUrl,omitempty"`
	Title               string    `json:"title,omitempty"`
	Text                string    `json:"text"`
	ImageURL            string    `json:"imageUrl,omitempty"`
	ImageCaption        string    `json:"imageCaption,omitempty"`
	SongTitle           string    `json:"songTitle,omitempty"`
	ArtistName          string    `json:"artistName,omitempty"`
	AlbumArtURL         string    `json:"albumArtUrl,omitempty"`
	AudioPreviewURL     string    `json:"audioPreviewUrl,omitempty"`
	LikeIDs             []string  `json:"likeIds"`
	LikeCount           int       `json:"likeCount"`
	CreatedAt           time.Time `json:"createdAt"`
}
