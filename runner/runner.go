// Package runner executes the experiments and writes their tables to disk.
package runner

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/kcz17/montecarlo/csvout"
	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/experiments"
	"github.com/kcz17/montecarlo/logging"
	"github.com/kcz17/montecarlo/random"
	"github.com/kcz17/montecarlo/timing"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	OutputDir string
	// Seed of 0 means a seed is taken from the wall clock.
	Seed     uint64
	Parallel bool

	Diagnostics bool
	Percentile  diagnostics.Percentile
}

type Runner struct {
	options     Options
	experiments []experiments.Experiment
	logger      logging.Logger
	timings     *timing.Collector
	// logMux serializes logger calls when experiments run in parallel.
	logMux sync.Mutex
}

func New(options Options, exps []experiments.Experiment, logger logging.Logger) *Runner {
	return &Runner{
		options:     options,
		experiments: exps,
		logger:      logger,
		timings:     timing.NewCollector(len(exps)),
	}
}

// Output describes one written file.
type Output struct {
	Experiment string
	Path       string
	Rows       int
}

// Run executes every experiment and writes its table. Each experiment draws
// from its own source derived from the base seed, so the written files do not
// depend on whether the run is parallel. Run stops at the first error; files
// written before it are left in place.
func (r *Runner) Run(ctx context.Context) ([]Output, error) {
	seed := r.options.Seed
	if seed == 0 {
		seed = random.ClockSeed()
	}
	r.logger.LogRunStarted(r.options.OutputDir, seed)

	if err := os.MkdirAll(r.options.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", r.options.OutputDir, err)
	}

	seeds := random.Seeds(seed, len(r.experiments))
	outputs := make([]Output, len(r.experiments))

	if r.options.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, e := range r.experiments {
			i, e := i, e
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := r.runOne(e, seeds[i])
				if err != nil {
					return err
				}
				outputs[i] = *out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, e := range r.experiments {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out, err := r.runOne(e, seeds[i])
			if err != nil {
				return nil, err
			}
			outputs[i] = *out
		}
	}

	r.logger.LogRunCompleted(r.timings.Aggregate())
	return outputs, nil
}

func (r *Runner) runOne(e experiments.Experiment, seed uint64) (*Output, error) {
	r.log(func(l logging.Logger) { l.LogExperimentStarted(e.Name()) })

	var result *experiments.Result
	var path string
	elapsed, err := r.timings.Time(func() error {
		var err error
		result, err = e.Run(random.New(seed))
		if err != nil {
			return fmt.Errorf("running %s: %w", e.Name(), err)
		}
		path, err = csvout.Write(r.options.OutputDir, e.Filename(), result.Table)
		return err
	})
	if err != nil {
		return nil, err
	}
	r.log(func(l logging.Logger) { l.LogExperimentCompleted(e.Name(), path, result.Table.Len(), elapsed) })

	if r.options.Diagnostics {
		// The reference stream is offset from the experiment's own seed so the
		// two samples are independent.
		ref := e.Reference(random.New(seed ^ 0x5bd1e995))
		report, err := diagnostics.Check(result.Samples, ref, r.options.Percentile)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", e.Name(), err)
		}
		r.log(func(l logging.Logger) {
			l.LogSampleSummary(e.Name(), report.Summary)
			l.LogGoodnessOfFit(e.Name(), report.KS)
		})
	}

	return &Output{
		Experiment: e.Name(),
		Path:       path,
		Rows:       result.Table.Len(),
	}, nil
}

func (r *Runner) log(f func(logging.Logger)) {
	r.logMux.Lock()
	defer r.logMux.Unlock()
	f(r.logger)
}
