package random

// Sequence replays a fixed list of uniform draws, wrapping around when the
// list is exhausted.
type Sequence struct {
	values []float64
	next   int
	drawn  int
}

func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("NewSequence() expected at least one value")
	}
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.drawn++
	return v
}

// Drawn returns how many values have been consumed so far.
func (s *Sequence) Drawn() int {
	return s.drawn
}
