// Package generate creates cities, companies and people with plausible
// randomized attributes, driven by the parameter files in seeddata.
//
// All generators draw from a caller-provided rand.Rand, so a fixed seed
// reproduces the exact same society.
package generate

import (
	"math"
	"math/rand"

	"github.com/edelooff/smallville/internal/seeddata"
)

func gauss(rng *rand.Rand, params seeddata.Gauss) float64 {
	return rng.NormFloat64()*params.StdDev + params.Mean
}

// pickMember applies the Central Limit Theorem to random index picking.
// Averaging three uniform draws yields a near-normal distribution over the
// collection's index range, truncated within bounds without any need for
// clamping or rejection.
func pickMember(rng *rand.Rand, collection []string) string {
	average := (rng.Float64() + rng.Float64() + rng.Float64()) / 3
	return collection[int(average*float64(len(collection)))]
}

// sample returns a random selection of size elements, without replacement.
func sample(rng *rand.Rand, collection []string, size int) []string {
	picked := make([]string, size)
	for i, j := range rng.Perm(len(collection))[:size] {
		picked[i] = collection[j]
	}
	return picked
}

func round(value float64) int {
	return int(math.Round(value))
}
