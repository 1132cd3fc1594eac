package habit

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"userId"`
	Title          string      `json:"title"`
	Streak         int         `json:"streak"`
	LastCompleted  *time.Time  `json:"lastCompleted"`
	CompletedDates []time.Time `json:"completedDates"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
