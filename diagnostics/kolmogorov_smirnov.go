package diagnostics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

type Percentile = int

const (
	P90 Percentile = iota
	P95
	P97d5
	P99
	P99d5
	P99d9
)

// coefficients are KS-coefficients.
// Retrieved from: https://www.webdepot.umontreal.ca/Usagers/angers/MonDepotPublic/STT3500H10/Critical_KS.pdf
var coefficients = map[Percentile]float64{
	P90:   1.22,
	P95:   1.36,
	P97d5: 1.48,
	P99:   1.63,
	P99d5: 1.73,
	P99d9: 1.95,
}

// ParsePercentile maps a config name such as "p95" to a Percentile.
func ParsePercentile(name string) (Percentile, error) {
	switch name {
	case "p90":
		return P90, nil
	case "p95":
		return P95, nil
	case "p97.5":
		return P97d5, nil
	case "p99":
		return P99, nil
	case "p99.5":
		return P99d5, nil
	case "p99.9":
		return P99d9, nil
	}
	return 0, fmt.Errorf("unknown percentile %q", name)
}

// KSResult is the outcome of a two-sample Kolmogorov-Smirnov test.
type KSResult struct {
	Statistic     float64
	CriticalValue float64
	// Rejected is true when the two samples appear to come from different
	// distributions.
	Rejected bool
}

// KolmogorovSmirnovTest performs a two-tailed two-sample KS-test of candidate
// against control.
func KolmogorovSmirnovTest(control []float64, candidate []float64, percentile Percentile) (*KSResult, error) {
	coeff, ok := coefficients[percentile]
	if !ok {
		return nil, fmt.Errorf("unexpected percentile %v, see Percentile type", percentile)
	}
	if len(control) == 0 || len(candidate) == 0 {
		return nil, fmt.Errorf("KolmogorovSmirnovTest() expected non-empty samples; got %d control and %d candidate", len(control), len(candidate))
	}

	criticalValue := coeff * math.Sqrt(float64(len(control)+len(candidate))/float64(len(control)*len(candidate)))

	// Copy the input slices so we can sort them.
	sortedControl := make([]float64, len(control))
	copy(sortedControl, control)
	sort.Float64s(sortedControl)

	sortedCandidate := make([]float64, len(candidate))
	copy(sortedCandidate, candidate)
	sort.Float64s(sortedCandidate)

	// Pass in nil weights as gonum's stat package allows inputs to be
	// weighted, which is not relevant to our situation.
	statistic := stat.KolmogorovSmirnov(sortedControl, nil, sortedCandidate, nil)

	return &KSResult{
		Statistic:     statistic,
		CriticalValue: criticalValue,
		Rejected:      statistic > criticalValue,
	}, nil
}
