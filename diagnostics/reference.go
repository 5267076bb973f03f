// Package diagnostics checks generated samples against reference
// distributions from gonum.
package diagnostics

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Reference draws samples from an exact distribution to compare generated
// samples against.
type Reference interface {
	Rand() float64
}

func ExponentialReference(lambda float64, src rand.Source) Reference {
	return distuv.Exponential{Rate: lambda, Src: src}
}

func ParetoReference(a, x0 float64, src rand.Source) Reference {
	return distuv.Pareto{Xm: x0, Alpha: a, Src: src}
}

func NormalReference(mu, variance float64, src rand.Source) Reference {
	return distuv.Normal{Mu: mu, Sigma: math.Sqrt(variance), Src: src}
}

func PoissonReference(lambda float64, src rand.Source) Reference {
	return distuv.Poisson{Lambda: lambda, Src: src}
}

// Draw returns n samples from ref.
func Draw(ref Reference, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = ref.Rand()
	}
	return xs
}

// Report is the outcome of checking one set of generated samples.
type Report struct {
	Summary *Summary
	KS      *KSResult
}

// Check summarizes samples and tests them against an equally sized draw from
// ref.
func Check(samples []float64, ref Reference, percentile Percentile) (*Report, error) {
	c := NewCollector(len(samples))
	c.AddAll(samples)
	summary, err := c.Aggregate()
	if err != nil {
		return nil, err
	}

	ks, err := KolmogorovSmirnovTest(Draw(ref, len(samples)), samples, percentile)
	if err != nil {
		return nil, err
	}

	return &Report{Summary: summary, KS: ks}, nil
}
