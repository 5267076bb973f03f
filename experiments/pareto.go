package experiments

import (
	"strconv"

	"github.com/kcz17/montecarlo/csvout"
	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/histogram"
	"github.com/kcz17/montecarlo/random"
	"github.com/kcz17/montecarlo/running"
	"github.com/kcz17/montecarlo/variate"
	"golang.org/x/exp/rand"
)

// ParetoHistogram bins Pareto variates into NumBins bins of BinWidth
// starting at X0, plus an overflow bin.
type ParetoHistogram struct {
	A        float64
	X0       float64
	BinWidth float64
	NumBins  int
	Samples  int
}

func (*ParetoHistogram) Name() string { return "pareto histogram" }

func (*ParetoHistogram) Filename() string { return "p1-3_pareto_hist.csv" }

func (p *ParetoHistogram) Run(src random.Source) (*Result, error) {
	binning := histogram.Binning{Origin: p.X0, Width: p.BinWidth, NumBins: p.NumBins}
	h, samples, err := sampleHistogram(binning, p.Samples, func() float64 {
		return variate.Pareto(src, p.A, p.X0)
	})
	if err != nil {
		return nil, err
	}
	return &Result{Table: intervalTable(h.Bins()), Samples: samples}, nil
}

func (p *ParetoHistogram) Reference(src rand.Source) diagnostics.Reference {
	return diagnostics.ParetoReference(p.A, p.X0, src)
}

// ParetoRunning records the running sample mean and the running mean squared
// deviation from Expected after every draw.
type ParetoRunning struct {
	A        float64
	X0       float64
	Expected float64
	Samples  int
}

func (*ParetoRunning) Name() string { return "pareto law of large numbers" }

func (*ParetoRunning) Filename() string { return "p1-4_p1-5_pareto_lln.csv" }

func (p *ParetoRunning) Run(src random.Source) (*Result, error) {
	samples := make([]float64, 0, p.Samples)
	rows := running.Collect(p.Samples, p.Expected, func() float64 {
		x := variate.Pareto(src, p.A, p.X0)
		samples = append(samples, x)
		return x
	})

	t := csvout.NewTable(headerN, headerSampleMean, headerSampleVar)
	for _, row := range rows {
		t.Append(strconv.Itoa(row.N), formatFloat(row.Mean), formatFloat(row.Variance))
	}
	return &Result{Table: t, Samples: samples}, nil
}

func (p *ParetoRunning) Reference(src rand.Source) diagnostics.Reference {
	return diagnostics.ParetoReference(p.A, p.X0, src)
}
