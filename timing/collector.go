package timing

import (
	"time"

	"github.com/jamiealquiza/tachymeter"
)

type Aggregation struct {
	Count int           // Count is the number of durations recorded.
	Total time.Duration // Total is the sum of all durations.
	Avg   time.Duration // Avg is the mean duration.
	Max   time.Duration // Max is the longest duration.
}

// Collector uses the jamiealquiza/tachymeter library to capture and aggregate
// experiment durations locally.
type Collector struct {
	clock Clock // Used to read the current time in a testable manner.
	tach  *tachymeter.Tachymeter
}

func NewCollector(window int) *Collector {
	return NewCollectorWithClock(NewRealtimeClock(), window)
}

func NewCollectorWithClock(clock Clock, window int) *Collector {
	return &Collector{
		clock: clock,
		tach: tachymeter.New(&tachymeter.Config{
			Size: window,
		}),
	}
}

func (c *Collector) Add(d time.Duration) {
	c.tach.AddTime(d)
}

// Time runs f and records how long it took.
func (c *Collector) Time(f func() error) (time.Duration, error) {
	start := c.clock.Now()
	err := f()
	elapsed := c.clock.Now().Sub(start)
	c.Add(elapsed)
	return elapsed, err
}

func (c *Collector) Aggregate() *Aggregation {
	metrics := c.tach.Calc()
	return &Aggregation{
		Count: metrics.Count,
		Total: metrics.Time.Cumulative,
		Avg:   metrics.Time.Avg,
		Max:   metrics.Time.Max,
	}
}
