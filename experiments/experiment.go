// Package experiments defines the fixed sampling pipelines. Each one draws
// samples, aggregates them and renders a table; none share state, so they can
// run in any order or concurrently given separate sources.
package experiments

import (
	"strconv"

	"github.com/kcz17/montecarlo/config"
	"github.com/kcz17/montecarlo/csvout"
	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/histogram"
	"github.com/kcz17/montecarlo/random"
	"golang.org/x/exp/rand"
)

// Column headers read by name by the plotting script, so they must not change.
const (
	headerInterval   = "区間"
	headerCount      = "個数"
	headerN          = "n"
	headerSampleMean = "サンプル平均"
	headerSampleVar  = "サンプル分散"
	headerValue      = "Xの値"
)

// Result is the output of one experiment run. Samples holds the raw draws in
// order, for diagnostics.
type Result struct {
	Table   *csvout.Table
	Samples []float64
}

type Experiment interface {
	Name() string
	Filename() string
	Run(src random.Source) (*Result, error)
	// Reference returns the exact distribution the experiment samples from.
	Reference(src rand.Source) diagnostics.Reference
}

// FromConfig returns the experiments in their canonical order.
func FromConfig(c *config.Config) []Experiment {
	histogramSamples := *c.Sampling.HistogramSamples
	return []Experiment{
		&ExponentialHistogram{
			Lambda:   *c.Exponential.Lambda,
			BinWidth: *c.Exponential.BinWidth,
			NumBins:  c.NumExponentialBins(),
			Max:      *c.Exponential.Max,
			Samples:  histogramSamples,
		},
		&ParetoHistogram{
			A:        *c.Pareto.A,
			X0:       *c.Pareto.X0,
			BinWidth: *c.Pareto.BinWidth,
			NumBins:  *c.Pareto.NumBins,
			Samples:  histogramSamples,
		},
		&ParetoRunning{
			A:        *c.Pareto.A,
			X0:       *c.Pareto.X0,
			Expected: *c.Pareto.ExpectedValue,
			Samples:  *c.Sampling.RunningSamples,
		},
		&NormalHistogram{
			Mu:       *c.Normal.Mu,
			Variance: *c.Normal.Variance,
			BinWidth: *c.Normal.BinWidth,
			Samples:  histogramSamples,
		},
		&PoissonHistogram{
			Lambda:  *c.Poisson.Lambda,
			Samples: histogramSamples,
		},
	}
}

// intervalTable renders continuous bins as interval,count rows.
func intervalTable(bins []histogram.Bin) *csvout.Table {
	t := csvout.NewTable(headerInterval, headerCount)
	for _, b := range bins {
		t.Append(b.Label(), strconv.Itoa(b.Count))
	}
	return t
}

// sampleHistogram draws n samples into a histogram with the given binning.
func sampleHistogram(binning histogram.Binning, n int, draw func() float64) (*histogram.Histogram, []float64, error) {
	h, err := histogram.New(binning)
	if err != nil {
		return nil, nil, err
	}
	samples := make([]float64, n)
	for i := range samples {
		x := draw()
		samples[i] = x
		h.Add(x)
	}
	return h, samples, nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
