package experiments

import (
	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/histogram"
	"github.com/kcz17/montecarlo/random"
	"github.com/kcz17/montecarlo/variate"
	"golang.org/x/exp/rand"
)

// ExponentialHistogram bins exponential variates into NumBins bins of
// BinWidth starting at zero, plus an overflow bin for values at or beyond Max.
type ExponentialHistogram struct {
	Lambda   float64
	BinWidth float64
	NumBins  int
	Max      float64 // Max is the lower bound of the overflow bin.
	Samples  int
}

func (*ExponentialHistogram) Name() string { return "exponential histogram" }

func (*ExponentialHistogram) Filename() string { return "p1-2_exponential_hist.csv" }

func (e *ExponentialHistogram) Run(src random.Source) (*Result, error) {
	binning := histogram.Binning{Width: e.BinWidth, NumBins: e.NumBins, Bound: e.Max}
	h, samples, err := sampleHistogram(binning, e.Samples, func() float64 {
		return variate.Exponential(src, e.Lambda)
	})
	if err != nil {
		return nil, err
	}
	return &Result{Table: intervalTable(h.Bins()), Samples: samples}, nil
}

func (e *ExponentialHistogram) Reference(src rand.Source) diagnostics.Reference {
	return diagnostics.ExponentialReference(e.Lambda, src)
}
