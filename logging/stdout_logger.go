package logging

import (
	"log"
	"time"

	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/timing"
)

// stdoutLogger logs progress to standard output.
type stdoutLogger struct{}

func NewStdoutLogger() *stdoutLogger {
	return &stdoutLogger{}
}

func (*stdoutLogger) LogRunStarted(outputDir string, seed uint64) {
	log.Printf("starting data generation into %s (seed %d)\n", outputDir, seed)
}

func (*stdoutLogger) LogExperimentStarted(name string) {
	log.Printf("%s: sampling\n", name)
}

func (*stdoutLogger) LogExperimentCompleted(name string, path string, rows int, elapsed time.Duration) {
	log.Printf("%s: wrote %d rows to %s in %v\n", name, rows, path, elapsed)
}

func (*stdoutLogger) LogSampleSummary(name string, s *diagnostics.Summary) {
	log.Printf("%s: n: %d, mean: %.4f, var: %.4f, min: %.4f, p50: %.4f, p95: %.4f, max: %.4f\n",
		name, s.Count, s.Mean, s.Variance, s.Min, s.P50, s.P95, s.Max)
}

func (*stdoutLogger) LogGoodnessOfFit(name string, r *diagnostics.KSResult) {
	verdict := "consistent with reference"
	if r.Rejected {
		verdict = "differs from reference"
	}
	log.Printf("%s: KS statistic: %.4f, critical value: %.4f, %s\n", name, r.Statistic, r.CriticalValue, verdict)
}

func (*stdoutLogger) LogRunCompleted(t *timing.Aggregation) {
	log.Printf("all %d files written in %v (slowest %v); plot them with the external plotting script\n", t.Count, t.Total, t.Max)
}

func (*stdoutLogger) Close() {}
