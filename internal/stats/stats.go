package stats

// UserStats is the dashboard summary assembled lazily from the habit,
// seed and post tables on read.
type UserStats struct {
	TotalHabits      int     `json:"total_habits"`
	CompletedToday   int     `json:"completed_today"`
	BestStreak       int     `json:"best_streak"`
	TotalCompletions int     `json:"total_completions"`
	SeedsDue         int     `json:"seeds_due"`
	SeedsMastered    int     `json:"seeds_mastered"`
	TotalSeeds       int     `json:"total_seeds"`
	PostsCount       int     `json:"posts_count"`
	GrowthScore      float64 `json:"growth_score"`
}
