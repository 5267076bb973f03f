// Package histogram groups samples into fixed-width bins.
package histogram

import (
	"fmt"
	"math"
	"sort"
)

// Binning describes fixed-width bins starting at Origin. When NumBins is
// positive, values at or beyond Max() fall into a single overflow bin; when it
// is zero the bins are unbounded in both directions.
type Binning struct {
	Origin  float64
	Width   float64
	NumBins int
	// Bound, when non-zero, is the exact overflow bound. Otherwise the bound
	// is Origin+NumBins*Width, which can differ from a configured limit by a
	// rounding error.
	Bound float64
}

// Max returns the lower bound of the overflow bin, or +Inf when the binning
// is unbounded.
func (b Binning) Max() float64 {
	if b.NumBins <= 0 {
		return math.Inf(1)
	}
	if b.Bound != 0 {
		return b.Bound
	}
	return b.Origin + float64(b.NumBins)*b.Width
}

// Bin is one bucket of a histogram. Overflow bins have Upper set to +Inf.
type Bin struct {
	Lower    float64
	Upper    float64
	Overflow bool
	Count    int
}

// Label renders the bin as a half-open interval with one decimal place, for
// example "[0.3..0.4)" or "[10.0..+inf)". Labels contain no commas.
func (b Bin) Label() string {
	if b.Overflow {
		return fmt.Sprintf("[%.1f..+inf)", b.Lower)
	}
	return fmt.Sprintf("[%.1f..%.1f)", b.Lower, b.Upper)
}

// Histogram counts continuous samples per bin.
type Histogram struct {
	binning  Binning
	counts   map[int]int
	overflow int
	total    int
}

func New(binning Binning) (*Histogram, error) {
	if !(binning.Width > 0) || math.IsInf(binning.Width, 0) {
		return nil, fmt.Errorf("histogram.New() expected positive finite bin width; got %v", binning.Width)
	}
	if binning.Bound != 0 && !(binning.Bound > binning.Origin) {
		return nil, fmt.Errorf("histogram.New() expected overflow bound above origin %v; got %v", binning.Origin, binning.Bound)
	}
	if binning.NumBins < 0 {
		return nil, fmt.Errorf("histogram.New() expected non-negative bin count; got %d", binning.NumBins)
	}
	return &Histogram{
		binning: binning,
		counts:  map[int]int{},
	}, nil
}

// Add assigns x to the bin floor((x-Origin)/Width), or to the overflow bin
// when x is at or beyond the upper bound.
func (h *Histogram) Add(x float64) {
	h.total++
	if h.binning.NumBins > 0 && x >= h.binning.Max() {
		h.overflow++
		return
	}

	index := int(math.Floor((x - h.binning.Origin) / h.binning.Width))
	if h.binning.NumBins > 0 && index >= h.binning.NumBins {
		// Rounding can push a value just below the bound past the last bin.
		index = h.binning.NumBins - 1
	}
	h.counts[index]++
}

// Total returns the number of samples added.
func (h *Histogram) Total() int {
	return h.total
}

// Bins returns the non-empty bins in increasing order of lower bound, with
// the overflow bin last.
func (h *Histogram) Bins() []Bin {
	indices := make([]int, 0, len(h.counts))
	for i := range h.counts {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	bins := make([]Bin, 0, len(indices)+1)
	for _, i := range indices {
		lower := h.binning.Origin + float64(i)*h.binning.Width
		bins = append(bins, Bin{
			Lower: lower,
			Upper: lower + h.binning.Width,
			Count: h.counts[i],
		})
	}
	if h.overflow > 0 {
		bins = append(bins, Bin{
			Lower:    h.binning.Max(),
			Upper:    math.Inf(1),
			Overflow: true,
			Count:    h.overflow,
		})
	}
	return bins
}
