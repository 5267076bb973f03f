package random

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is a uniform random number generator over [0, 1). Every variate
// generator takes one explicitly so that tests can substitute a fixed
// sequence of draws.
type Source interface {
	Float64() float64
}

// New returns a Source seeded with seed. The returned *rand.Rand also
// satisfies rand.Source, so it can be handed to gonum's distuv types.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewFromClock returns a Source seeded from the current time, so runs are not
// reproducible.
func NewFromClock() *rand.Rand {
	return New(ClockSeed())
}

// ClockSeed returns a seed derived from the current time.
func ClockSeed() uint64 {
	// Set the random seed to the current time for sufficient uniqueness.
	return uint64(time.Now().UTC().UnixNano())
}

// Seeds derives n seeds from base. The seeds are spread with a splitmix64
// step so that neighbouring experiments do not share correlated streams.
func Seeds(base uint64, n int) []uint64 {
	seeds := make([]uint64, n)
	state := base
	for i := range seeds {
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		seeds[i] = z ^ (z >> 31)
	}
	return seeds
}
