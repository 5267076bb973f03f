package logging

import (
	"time"

	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/timing"
	"go.uber.org/zap"
)

// zapLogger writes structured JSON logs.
type zapLogger struct {
	logger *zap.Logger
}

func NewZapLogger() (*zapLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{logger: logger}, nil
}

func newZapLoggerFrom(logger *zap.Logger) *zapLogger {
	return &zapLogger{logger: logger}
}

func (l *zapLogger) LogRunStarted(outputDir string, seed uint64) {
	l.logger.Info("run started", zap.String("outputDir", outputDir), zap.Uint64("seed", seed))
}

func (l *zapLogger) LogExperimentStarted(name string) {
	l.logger.Info("experiment started", zap.String("experiment", name))
}

func (l *zapLogger) LogExperimentCompleted(name string, path string, rows int, elapsed time.Duration) {
	l.logger.Info("experiment completed",
		zap.String("experiment", name),
		zap.String("path", path),
		zap.Int("rows", rows),
		zap.Duration("elapsed", elapsed))
}

func (l *zapLogger) LogSampleSummary(name string, s *diagnostics.Summary) {
	l.logger.Info("sample summary",
		zap.String("experiment", name),
		zap.Int("count", s.Count),
		zap.Float64("mean", s.Mean),
		zap.Float64("variance", s.Variance),
		zap.Float64("min", s.Min),
		zap.Float64("p50", s.P50),
		zap.Float64("p95", s.P95),
		zap.Float64("max", s.Max))
}

func (l *zapLogger) LogGoodnessOfFit(name string, r *diagnostics.KSResult) {
	fields := []zap.Field{
		zap.String("experiment", name),
		zap.Float64("statistic", r.Statistic),
		zap.Float64("criticalValue", r.CriticalValue),
	}
	if r.Rejected {
		l.logger.Warn("samples differ from reference distribution", fields...)
		return
	}
	l.logger.Info("samples consistent with reference distribution", fields...)
}

func (l *zapLogger) LogRunCompleted(t *timing.Aggregation) {
	l.logger.Info("run completed",
		zap.Int("files", t.Count),
		zap.Duration("total", t.Total),
		zap.Duration("avg", t.Avg),
		zap.Duration("max", t.Max))
}

func (l *zapLogger) Close() {
	_ = l.logger.Sync()
}
