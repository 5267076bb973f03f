// Package running tracks cumulative sample statistics one draw at a time, to
// show the law of large numbers at work.
package running

// Row is the state after the N-th sample.
type Row struct {
	N    int
	Mean float64
	// Variance is the mean squared deviation from the known expected value,
	// not from the running mean.
	Variance float64
}

// Accumulator keeps the cumulative sum and the cumulative sum of squared
// deviations from Expected.
type Accumulator struct {
	Expected float64

	n        int
	sum      float64
	sumSqDev float64
}

func NewAccumulator(expected float64) *Accumulator {
	return &Accumulator{Expected: expected}
}

// Add records x and returns the updated running statistics.
func (a *Accumulator) Add(x float64) Row {
	a.n++
	a.sum += x
	d := x - a.Expected
	a.sumSqDev += d * d
	return a.Row()
}

// Row returns the current running statistics. It is the zero Row before any
// sample has been added.
func (a *Accumulator) Row() Row {
	if a.n == 0 {
		return Row{}
	}
	return Row{
		N:        a.n,
		Mean:     a.sum / float64(a.n),
		Variance: a.sumSqDev / float64(a.n),
	}
}

// Collect draws n samples from next and returns one Row per draw.
func Collect(n int, expected float64, next func() float64) []Row {
	acc := NewAccumulator(expected)
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, acc.Add(next()))
	}
	return rows
}
