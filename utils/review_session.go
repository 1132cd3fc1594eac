package utils

import (
	"math/rand"
	"time"

	"evergreenMuseAPI/internal/seed"
)

// ShuffleSeeds returns the due seeds in a fresh random order for a review
// session. The input slice is left untouched.
func ShuffleSeeds(seeds []*seed.Seed) []*seed.Seed {
	shuffled := make([]*seed.Seed, len(seeds))
	copy(shuffled, seeds)

	source := rand.NewSource(time.Now().UnixNano())
	r := rand.New(source)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
