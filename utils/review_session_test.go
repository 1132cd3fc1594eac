package utils

import (
	"testing"

	"evergreenMuseAPI/internal/seed"

	"github.com/google/uuid"
)

func TestShuffleSeedsKeepsAllSeeds(t *testing.T) {
	seeds := make([]*seed.Seed, 20)
	for i := range seeds {
		seeds[i] = &seed.Seed{ID: uuid.New()}
	}

	shuffled := ShuffleSeeds(seeds)
	if len(shuffled) != len(seeds) {
		t.Fatalf("shuffled length = %d, want %d", len(shuffled), len(seeds))
	}

	seen := make(map[uuid.UUID]bool, len(seeds))
	for _, s := range shuffled {
		seen[s.ID] = true
	}
	for _, s := range seeds {
		if !seen[s.ID] {
			t.Errorf("seed %s missing after shuffle", s.ID)
		}
	}
}

func TestShuffleSeedsDoesNotMutateInput(t *testing.T) {
	seeds := make([]*seed.Seed, 10)
	ids := make([]uuid.UUID, 10)
	for i := range seeds {
		seeds[i] = &seed.Seed{ID: uuid.New()}
		ids[i] = seeds[i].ID
	}

	ShuffleSeeds(seeds)
	for i, s := range seeds {
		if s.ID != ids[i] {
			t.Fatal("input slice order changed")
		}
	}
}

func TestShuffleSeedsEmpty(t *testing.T) {
	if got := ShuffleSeeds(nil); len(got) != 0 {
		t.Errorf("ShuffleSeeds(nil) length = %d, want 0", len(got))
	}
}
