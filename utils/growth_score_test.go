package utils

import "testing"

func TestCalculateGrowthScore(t *testing.T) {
	tests := []struct {
		name                                        string
		bestStreak, totalCompletions, masteredSeeds int
		want                                        float64
	}{
		{"zero everything", 0, 0, 0, 0},
		{"streak only", 10, 0, 0, 30},
		{"completions only", 0, 100, 0, 5},
		{"mastery only", 0, 0, 3, 3},
		{"mixed", 7, 40, 2, 7*7*0.3 + 40*0.05 + 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGrowthScore(tt.bestStreak, tt.totalCompletions, tt.masteredSeeds)
			if got != tt.want {
				t.Errorf("CalculateGrowthScore = %v, want %v", got, tt.want)
			}
		})
	}
}
