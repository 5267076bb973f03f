package logging

import (
	"log"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/timing"
)

// influxDBLogger logs the output to an external InfluxDB instance.
type influxDBLogger struct {
	client      influxdb2.Client
	asyncWriter api.WriteAPI
}

func NewInfluxDBLogger(baseURL, authToken, org, bucket string) *influxDBLogger {
	options := influxdb2.DefaultOptions()
	options.WriteOptions().SetBatchSize(100)
	options.WriteOptions().SetFlushInterval(250)

	client := influxdb2.NewClientWithOptions(baseURL, authToken, options)
	writeAPI := client.WriteAPI(org, bucket)

	// Create a goroutine for reading and logging async write errors.
	errorsCh := writeAPI.Errors()
	go func() {
		for err := range errorsCh {
			log.Printf("influxdb2 logging async write error: %v\n", err)
		}
	}()

	return &influxDBLogger{
		client:      client,
		asyncWriter: writeAPI,
	}
}

func (l *influxDBLogger) LogRunStarted(outputDir string, seed uint64) {
	p := influxdb2.NewPointWithMeasurement("montecarlo_run").
		AddTag("output_dir", outputDir).
		AddField("seed", seed).
		AddField("state", "started").
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogExperimentStarted(string) {
	// Completion points carry the elapsed time; start events are not stored.
}

func (l *influxDBLogger) LogExperimentCompleted(name string, path string, rows int, elapsed time.Duration) {
	p := influxdb2.NewPointWithMeasurement("montecarlo_experiment").
		AddTag("experiment", name).
		AddField("path", path).
		AddField("rows", rows).
		AddField("elapsed", elapsed.Seconds()).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogSampleSummary(name string, s *diagnostics.Summary) {
	p := influxdb2.NewPointWithMeasurement("montecarlo_sample_summary").
		AddTag("experiment", name).
		AddField("count", s.Count).
		AddField("mean", s.Mean).
		AddField("variance", s.Variance).
		AddField("min", s.Min).
		AddField("p50", s.P50).
		AddField("p95", s.P95).
		AddField("max", s.Max).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogGoodnessOfFit(name string, r *diagnostics.KSResult) {
	p := influxdb2.NewPointWithMeasurement("montecarlo_goodness_of_fit").
		AddTag("experiment", name).
		AddField("statistic", r.Statistic).
		AddField("critical_value", r.CriticalValue).
		AddField("rejected", r.Rejected).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogRunCompleted(t *timing.Aggregation) {
	p := influxdb2.NewPointWithMeasurement("montecarlo_run").
		AddField("state", "completed").
		AddField("files", t.Count).
		AddField("total", t.Total.Seconds()).
		AddField("max", t.Max.Seconds()).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) Close() {
	l.asyncWriter.Flush()
	l.client.Close()
}
