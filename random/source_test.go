package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equalf(t, a.Float64(), b.Float64(), "expected identical draw %d for identical seeds", i)
	}
}

func TestNew_DrawsInUnitInterval(t *testing.T) {
	src := New(7)
	for i := 0; i < 10000; i++ {
		u := src.Float64()
		if u < 0 || u >= 1 {
			t.Fatalf("expected draw in [0, 1); got %v", u)
		}
	}
}

func TestSeeds(t *testing.T) {
	seeds := Seeds(1, 5)
	assert.Len(t, seeds, 5)
	assert.Equal(t, seeds, Seeds(1, 5), "expected Seeds() to be deterministic")

	seen := map[uint64]bool{}
	for _, s := range seeds {
		assert.Falsef(t, seen[s], "expected distinct seeds; got duplicate %d", s)
		seen[s] = true
	}
	assert.NotEqual(t, Seeds(1, 1), Seeds(2, 1))
}

func TestSequence_Wraps(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	assert.Equal(t, []float64{0.1, 0.2, 0.1}, got)
	assert.Equal(t, 3, s.Drawn())
}
