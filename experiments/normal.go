package experiments

import (
	"math"

	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/histogram"
	"github.com/kcz17/montecarlo/random"
	"github.com/kcz17/montecarlo/variate"
	"golang.org/x/exp/rand"
)

// NormalHistogram bins approximately normal variates into unbounded bins of
// BinWidth aligned on zero. The distribution is parametrised by its variance.
type NormalHistogram struct {
	Mu       float64
	Variance float64
	BinWidth float64
	Samples  int
}

func (*NormalHistogram) Name() string { return "normal histogram" }

func (*NormalHistogram) Filename() string { return "p2_normal_hist.csv" }

func (n *NormalHistogram) Run(src random.Source) (*Result, error) {
	sigma := math.Sqrt(n.Variance)
	h, samples, err := sampleHistogram(histogram.Binning{Width: n.BinWidth}, n.Samples, func() float64 {
		return variate.Normal(src, n.Mu, sigma)
	})
	if err != nil {
		return nil, err
	}
	return &Result{Table: intervalTable(h.Bins()), Samples: samples}, nil
}

func (n *NormalHistogram) Reference(src rand.Source) diagnostics.Reference {
	return diagnostics.NormalReference(n.Mu, n.Variance, src)
}
