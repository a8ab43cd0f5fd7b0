package core

import "math/rand"

// Random is the source of randomness for layout and opponent decisions.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded math/rand source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform integer in [lo, hi], like the inclusive
// range helper used for placement. An empty range collapses to lo.
func between(rng Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// pick returns a uniformly chosen element of planets, or nil when empty.
func pick(rng Random, planets []*Planet) *Planet {
	if len(planets) == 0 {
		return nil
	}
	return planets[rng.Intn(len(planets))]
}
