package logging

import (
	"fmt"
	"time"

	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/timing"
)

type Logger interface {
	LogRunStarted(outputDir string, seed uint64)
	LogExperimentStarted(name string)
	LogExperimentCompleted(name string, path string, rows int, elapsed time.Duration)
	LogSampleSummary(name string, summary *diagnostics.Summary)
	LogGoodnessOfFit(name string, result *diagnostics.KSResult)
	LogRunCompleted(timings *timing.Aggregation)
	Close() // Close flushes any buffered output.
}

// Drivers lists the accepted values for the logging driver setting.
var Drivers = []string{"noop", "stdout", "zap", "influxdb"}

// InfluxDBOptions configures the influxdb driver.
type InfluxDBOptions struct {
	Host   string
	Token  string
	Org    string
	Bucket string
}

func New(driver string, influx InfluxDBOptions) (Logger, error) {
	switch driver {
	case "noop":
		return NewNoopLogger(), nil
	case "stdout":
		return NewStdoutLogger(), nil
	case "zap":
		logger, err := NewZapLogger()
		if err != nil {
			return nil, fmt.Errorf("creating zap logger: %w", err)
		}
		return logger, nil
	case "influxdb":
		return NewInfluxDBLogger(influx.Host, influx.Token, influx.Org, influx.Bucket), nil
	}
	return nil, fmt.Errorf("expected logging driver one of %v; got %q", Drivers, driver)
}

// noopLogger does not perform any logging.
type noopLogger struct{}

func NewNoopLogger() *noopLogger {
	return &noopLogger{}
}

func (*noopLogger) LogRunStarted(string, uint64) {}

func (*noopLogger) LogExperimentStarted(string) {}

func (*noopLogger) LogExperimentCompleted(string, string, int, time.Duration) {}

func (*noopLogger) LogSampleSummary(string, *diagnostics.Summary) {}

func (*noopLogger) LogGoodnessOfFit(string, *diagnostics.KSResult) {}

func (*noopLogger) LogRunCompleted(*timing.Aggregation) {}

func (*noopLogger) Close() {}
