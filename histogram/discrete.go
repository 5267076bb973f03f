package histogram

import "sort"

// IntBin is the count of one integer value.
type IntBin struct {
	Value int
	Count int
}

// Discrete counts integer samples by their raw value.
type Discrete struct {
	counts map[int]int
	total  int
}

func NewDiscrete() *Discrete {
	return &Discrete{counts: map[int]int{}}
}

func (d *Discrete) Add(k int) {
	d.counts[k]++
	d.total++
}

func (d *Discrete) Total() int {
	return d.total
}

// Bins returns the observed values in increasing order.
func (d *Discrete) Bins() []IntBin {
	bins := make([]IntBin, 0, len(d.counts))
	for k, c := range d.counts {
		bins = append(bins, IntBin{Value: k, Count: c})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Value < bins[j].Value })
	return bins
}
