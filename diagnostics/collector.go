package diagnostics

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes a retained set of samples.
type Summary struct {
	Count    int
	Mean     float64
	Variance float64 // Population variance.
	Min      float64
	P50      float64
	P95      float64
	Max      float64
}

// Collector retains samples so that they can be summarized once a run has
// finished. Storage is O(n), which is fine for the bounded sample counts used
// here.
type Collector struct {
	samples []float64
}

func NewCollector(capacity int) *Collector {
	return &Collector{samples: make([]float64, 0, capacity)}
}

func (c *Collector) AddAll(xs []float64) {
	c.samples = append(c.samples, xs...)
}

// Aggregate summarizes the collected samples.
func (c *Collector) Aggregate() (*Summary, error) {
	// The stats package requires input arrays to be non-empty.
	if len(c.samples) == 0 {
		return &Summary{}, nil
	}

	data := stats.Float64Data(c.samples)
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("calculating mean: %w", err)
	}
	variance, err := stats.PopulationVariance(data)
	if err != nil {
		return nil, fmt.Errorf("calculating variance: %w", err)
	}
	lo, err := stats.Min(data)
	if err != nil {
		return nil, fmt.Errorf("calculating min: %w", err)
	}
	hi, err := stats.Max(data)
	if err != nil {
		return nil, fmt.Errorf("calculating max: %w", err)
	}
	p50, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("calculating p50: %w", err)
	}
	p95, err := stats.Percentile(data, 95)
	if err != nil {
		return nil, fmt.Errorf("calculating p95: %w", err)
	}

	return &Summary{
		Count:    len(c.samples),
		Mean:     mean,
		Variance: variance,
		Min:      lo,
		P50:      p50,
		P95:      p95,
		Max:      hi,
	}, nil
}
