package seed

import (
	"time"

	"github.com/google/uuid"
)

// Seed is a single spaced-repetition learning item. Box is the Leitner
// level (0..5); NextReview is the moment the seed becomes due again.
type Seed struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	Category   string    `json:"category"`
	Box        int       `json:"box"`
	NextReview time.Time `json:"nextReview"`
	CreatedAt  time.Time `json:"createdAt"`
}
