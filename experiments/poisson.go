package experiments

import (
	"strconv"

	"github.com/kcz17/montecarlo/csvout"
	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/histogram"
	"github.com/kcz17/montecarlo/random"
	"github.com/kcz17/montecarlo/variate"
	"golang.org/x/exp/rand"
)

// PoissonHistogram counts Poisson variates by value.
type PoissonHistogram struct {
	Lambda  float64
	Samples int
}

func (*PoissonHistogram) Name() string { return "poisson histogram" }

func (*PoissonHistogram) Filename() string { return "p3_poisson_hist.csv" }

func (p *PoissonHistogram) Run(src random.Source) (*Result, error) {
	h := histogram.NewDiscrete()
	samples := make([]float64, p.Samples)
	for i := range samples {
		k := variate.Poisson(src, p.Lambda)
		samples[i] = float64(k)
		h.Add(k)
	}

	t := csvout.NewTable(headerValue, headerCount)
	for _, b := range h.Bins() {
		t.Append(strconv.Itoa(b.Value), strconv.Itoa(b.Count))
	}
	return &Result{Table: t, Samples: samples}, nil
}

func (p *PoissonHistogram) Reference(src rand.Source) diagnostics.Reference {
	return diagnostics.PoissonReference(p.Lambda, src)
}
