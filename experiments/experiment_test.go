package experiments

import (
	"strconv"
	"strings"
	"testing"

	"github.com/kcz17/montecarlo/config"
	"github.com/kcz17/montecarlo/random"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultExperiments(t *testing.T) []Experiment {
	t.Helper()
	c, err := config.Load(viper.New())
	require.NoError(t, err)
	return FromConfig(c)
}

func TestFromConfig_FileNames(t *testing.T) {
	var names []string
	for _, e := range defaultExperiments(t) {
		names = append(names, e.Filename())
	}
	assert.Equal(t, []string{
		"p1-2_exponential_hist.csv",
		"p1-3_pareto_hist.csv",
		"p1-4_p1-5_pareto_lln.csv",
		"p2_normal_hist.csv",
		"p3_poisson_hist.csv",
	}, names)
}

// countColumnSum adds up the last column of every data row.
func countColumnSum(t *testing.T, rows [][]string) int {
	t.Helper()
	var sum int
	for _, row := range rows {
		n, err := strconv.Atoi(row[len(row)-1])
		require.NoError(t, err)
		sum += n
	}
	return sum
}

// lowerBound parses the lower bound from labels such as "[0.3..0.4)" or an
// integer value.
func lowerBound(t *testing.T, label string) float64 {
	t.Helper()
	label = strings.TrimPrefix(label, "[")
	if i := strings.Index(label, ".."); i >= 0 {
		label = label[:i]
	}
	x, err := strconv.ParseFloat(label, 64)
	require.NoError(t, err)
	return x
}

func TestHistograms_CountsSumAndOrder(t *testing.T) {
	for i, e := range defaultExperiments(t) {
		if _, ok := e.(*ParetoRunning); ok {
			continue
		}
		t.Run(e.Name(), func(t *testing.T) {
			result, err := e.Run(random.New(uint64(i + 1)))
			require.NoError(t, err)

			assert.Equal(t, 20000, countColumnSum(t, result.Table.Rows))
			assert.Len(t, result.Samples, 20000)
			for j := 1; j < len(result.Table.Rows); j++ {
				prev := lowerBound(t, result.Table.Rows[j-1][0])
				cur := lowerBound(t, result.Table.Rows[j][0])
				assert.Lessf(t, prev, cur, "expected increasing bins at row %d", j)
			}
			_, err = result.Table.Encode()
			assert.NoError(t, err)
		})
	}
}

func TestExponentialHistogram_Labels(t *testing.T) {
	e := &ExponentialHistogram{Lambda: 2, BinWidth: 0.1, NumBins: 100, Samples: 4}
	// 1-U = 1, e^-0.5, e^-30 and 1 again give 0, 0.25, 15 and 0.
	result, err := e.Run(random.NewSequence(0, 1-0.6065306597126334, 1-9.357622968840175e-14, 0))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"[0.0..0.1)", "2"},
		{"[0.2..0.3)", "1"},
		{"[10.0..+inf)", "1"},
	}, result.Table.Rows)
	assert.Equal(t, []string{"区間", "個数"}, result.Table.Header)
}

func TestParetoHistogram_OverflowLabel(t *testing.T) {
	p := &ParetoHistogram{A: 2, X0: 1, BinWidth: 0.5, NumBins: 10, Samples: 3}
	// Draws of 0, 0.75 and 0.99 give 1, 2 and 10.
	result, err := p.Run(random.NewSequence(0, 0.75, 0.99))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"[1.0..1.5)", "1"},
		{"[2.0..2.5)", "1"},
		{"[6.0..+inf)", "1"},
	}, result.Table.Rows)
}

func TestParetoRunning_Rows(t *testing.T) {
	p := &ParetoRunning{A: 2, X0: 1, Expected: 2, Samples: 2000}
	result, err := p.Run(random.New(9))
	require.NoError(t, err)

	assert.Equal(t, []string{"n", "サンプル平均", "サンプル分散"}, result.Table.Header)
	require.Len(t, result.Table.Rows, 2000)
	var sum float64
	for i, row := range result.Table.Rows {
		sum += result.Samples[i]
		assert.Equal(t, strconv.Itoa(i+1), row[0])
		mean, err := strconv.ParseFloat(row[1], 64)
		require.NoError(t, err)
		assert.InDeltaf(t, sum/float64(i+1), mean, 1e-9, "mean mismatch at row %d", i+1)
	}
}

func TestParetoRunning_FixedDraws(t *testing.T) {
	p := &ParetoRunning{A: 2, X0: 1, Expected: 2, Samples: 2}
	// Draws of 0.75 and 0 give 2 and 1.
	result, err := p.Run(random.NewSequence(0.75, 0))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1", "2", "0"},
		{"2", "1.5", "0.5"},
	}, result.Table.Rows)
}

func TestPoissonHistogram_FixedDraws(t *testing.T) {
	p := &PoissonHistogram{Lambda: 1.62, Samples: 3}
	// 0.1 stops immediately (0); 0.5, 0.5, 0.125 gives 2; 0.1 again gives 0.
	result, err := p.Run(random.NewSequence(0.1, 0.5, 0.5, 0.125, 0.1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Xの値", "個数"}, result.Table.Header)
	assert.Equal(t, [][]string{{"0", "2"}, {"2", "1"}}, result.Table.Rows)
}

func TestPoissonHistogram_EmpiricalMean(t *testing.T) {
	p := &PoissonHistogram{Lambda: 1.62, Samples: 20000}
	result, err := p.Run(random.New(17))
	require.NoError(t, err)

	var sum float64
	for _, x := range result.Samples {
		sum += x
	}
	assert.InDelta(t, 1.62, sum/float64(len(result.Samples)), 0.1)
}

func TestExperiments_ReproducibleForSeed(t *testing.T) {
	for _, e := range defaultExperiments(t) {
		t.Run(e.Name(), func(t *testing.T) {
			a, err := e.Run(random.New(5))
			require.NoError(t, err)
			b, err := e.Run(random.New(5))
			require.NoError(t, err)
			assert.Equal(t, a.Table, b.Table)
		})
	}
}

func TestFromConfig_ExponentialOverflowBound(t *testing.T) {
	exp, ok := defaultExperiments(t)[0].(*ExponentialHistogram)
	require.True(t, ok)
	assert.Equal(t, 10.0, exp.Max)
	assert.Equal(t, 100, exp.NumBins)

	// 1-U ~= e^-30 gives roughly 15, beyond the configured bound.
	exp.Samples = 1
	result, err := exp.Run(random.NewSequence(1 - 9.357622968840175e-14))
	require.NoError(t, err)
	require.Len(t, result.Table.Rows, 1)
	assert.Equal(t, "[10.0..+inf)", result.Table.Rows[0][0])
}
