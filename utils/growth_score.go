package utils

import "math"

// CalculateGrowthScore blends habit consistency and learning progress into
// a single dashboard number. Streaks dominate, mastered seeds count flat,
// raw completion volume trickles in.
func CalculateGrowthScore(bestStreak, totalCompletions, masteredSeeds int) float64 {
	streakScore := math.Pow(float64(bestStreak), 2) * 0.3
	completionScore := float64(totalCompletions) * 0.05
	masteryScore := float64(masteredSeeds) * 1.0

	return streakScore + completionScore + masteryScore
}
