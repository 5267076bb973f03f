package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	return v
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	c, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "./output", *c.Output.Dir)
	assert.Equal(t, uint64(0), *c.Sampling.Seed)
	assert.Equal(t, 20000, *c.Sampling.HistogramSamples)
	assert.Equal(t, 2000, *c.Sampling.RunningSamples)
	assert.False(t, *c.Sampling.Parallel)
	assert.Equal(t, 2.0, *c.Exponential.Lambda)
	assert.Equal(t, 100, c.NumExponentialBins())
	assert.Equal(t, 1.0, *c.Pareto.X0)
	assert.Equal(t, 10, *c.Pareto.NumBins)
	assert.Equal(t, 2.0, *c.Pareto.ExpectedValue)
	assert.Equal(t, 7.0, *c.Normal.Variance)
	assert.Equal(t, 1.62, *c.Poisson.Lambda)
	assert.Equal(t, "stdout", *c.Logging.Driver)
	assert.False(t, *c.Diagnostics.Enabled)
	assert.Equal(t, "p95", *c.Diagnostics.Percentile)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	c, err := Load(newViper(t, `
output:
  dir: /tmp/samples
sampling:
  seed: 1234
  parallel: true
poisson:
  lambda: 3.5
logging:
  driver: zap
`))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/samples", *c.Output.Dir)
	assert.Equal(t, uint64(1234), *c.Sampling.Seed)
	assert.True(t, *c.Sampling.Parallel)
	assert.Equal(t, 3.5, *c.Poisson.Lambda)
	assert.Equal(t, "zap", *c.Logging.Driver)
	assert.Equal(t, 20000, *c.Sampling.HistogramSamples)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "Non-positive lambda", yaml: "exponential:\n  lambda: 0\n"},
		{name: "Unknown logging driver", yaml: "logging:\n  driver: syslog\n"},
		{name: "Negative sample count", yaml: "sampling:\n  histogramSamples: -1\n"},
		{name: "Unknown percentile", yaml: "diagnostics:\n  percentile: p42\n"},
		{name: "InfluxDB without host", yaml: "logging:\n  driver: influxdb\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.yaml))
			require.Error(t, err)
			_, ok := err.(validator.ValidationErrors)
			assert.Truef(t, ok, "expected validator.ValidationErrors; got %T: %v", err, err)
		})
	}
}

func TestLoad_OverflowBoundBelowBinWidth(t *testing.T) {
	_, err := Load(newViper(t, "exponential:\n  max: 0.05\n"))
	assert.Error(t, err)
}

func TestLoad_OverflowBoundNotMultipleOfBinWidth(t *testing.T) {
	_, err := Load(newViper(t, "exponential:\n  max: 1.0\n  binWidth: 0.4\n"))
	assert.Error(t, err)

	c, err := Load(newViper(t, "exponential:\n  max: 1.2\n  binWidth: 0.4\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumExponentialBins())
}

func TestLoad_NestedKeysFromEnvironment(t *testing.T) {
	t.Setenv("SAMPLING_SEED", "99")
	t.Setenv("POISSON_LAMBDA", "2.5")
	v := newViper(t, "")
	bindEnv(v)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), *c.Sampling.Seed)
	assert.Equal(t, 2.5, *c.Poisson.Lambda)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(newViper(t, "output: [unterminated"))
	assert.Error(t, err)
}
