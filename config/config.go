package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Output      Output      `mapstructure:"output" validate:"required"`
	Sampling    Sampling    `mapstructure:"sampling" validate:"required"`
	Exponential Exponential `mapstructure:"exponential" validate:"required"`
	Pareto      Pareto      `mapstructure:"pareto" validate:"required"`
	Normal      Normal      `mapstructure:"normal" validate:"required"`
	Poisson     Poisson     `mapstructure:"poisson" validate:"required"`
	Logging     Logging     `mapstructure:"logging" validate:"required"`
	Diagnostics Diagnostics `mapstructure:"diagnostics" validate:"required"`
}

type Output struct {
	Dir *string `mapstructure:"dir" validate:"required,min=1"`
}

type Sampling struct {
	// Seed of 0 seeds every run from the wall clock, so output differs
	// between runs.
	Seed             *uint64 `mapstructure:"seed" validate:"required"`
	HistogramSamples *int    `mapstructure:"histogramSamples" validate:"required,gt=0"`
	RunningSamples   *int    `mapstructure:"runningSamples" validate:"required,gt=0"`
	Parallel         *bool   `mapstructure:"parallel" validate:"required"`
}

type Exponential struct {
	Lambda   *float64 `mapstructure:"lambda" validate:"required,gt=0"`
	BinWidth *float64 `mapstructure:"binWidth" validate:"required,gt=0"`
	// Max is the lower bound of the overflow bin.
	Max *float64 `mapstructure:"max" validate:"required,gt=0"`
}

type Pareto struct {
	A             *float64 `mapstructure:"a" validate:"required,gt=0"`
	X0            *float64 `mapstructure:"x0" validate:"required,gt=0"`
	BinWidth      *float64 `mapstructure:"binWidth" validate:"required,gt=0"`
	NumBins       *int     `mapstructure:"numBins" validate:"required,gt=0"`
	ExpectedValue *float64 `mapstructure:"expectedValue" validate:"required"`
}

type Normal struct {
	Mu       *float64 `mapstructure:"mu" validate:"required"`
	Variance *float64 `mapstructure:"variance" validate:"required,gt=0"`
	BinWidth *float64 `mapstructure:"binWidth" validate:"required,gt=0"`
}

type Poisson struct {
	Lambda *float64 `mapstructure:"lambda" validate:"required,gt=0"`
}

type Logging struct {
	Driver   *string  `mapstructure:"driver" validate:"required,oneof=noop stdout zap influxdb"`
	InfluxDB InfluxDB `mapstructure:"influxdb"`
}

type InfluxDB struct {
	Host   *string `mapstructure:"host"`
	Token  *string `mapstructure:"token"`
	Org    *string `mapstructure:"org"`
	Bucket *string `mapstructure:"bucket"`
}

type Diagnostics struct {
	Enabled    *bool   `mapstructure:"enabled" validate:"required"`
	Percentile *string `mapstructure:"percentile" validate:"required,oneof=p90 p95 p97.5 p99 p99.5 p99.9"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Output.Dir", "./output")

	v.SetDefault("Sampling.Seed", 0)
	v.SetDefault("Sampling.HistogramSamples", 20000)
	v.SetDefault("Sampling.RunningSamples", 2000)
	v.SetDefault("Sampling.Parallel", false)

	v.SetDefault("Exponential.Lambda", 2)
	v.SetDefault("Exponential.BinWidth", 0.1)
	v.SetDefault("Exponential.Max", 10)

	v.SetDefault("Pareto.A", 2)
	v.SetDefault("Pareto.X0", 1)
	v.SetDefault("Pareto.BinWidth", 0.5)
	v.SetDefault("Pareto.NumBins", 10)
	v.SetDefault("Pareto.ExpectedValue", 2)

	v.SetDefault("Normal.Mu", 2)
	v.SetDefault("Normal.Variance", 7)
	v.SetDefault("Normal.BinWidth", 1)

	v.SetDefault("Poisson.Lambda", 1.62)

	v.SetDefault("Logging.Driver", "stdout")

	v.SetDefault("Diagnostics.Enabled", false)
	v.SetDefault("Diagnostics.Percentile", "p95")
}

// Load reads the configuration from v, applying defaults for every unset key.
// A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error when reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error occured while reading configuration file: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, err
	}
	if *config.Exponential.Max < *config.Exponential.BinWidth {
		return nil, fmt.Errorf("expected exponential.max >= exponential.binWidth; got max = %v, binWidth = %v",
			*config.Exponential.Max, *config.Exponential.BinWidth)
	}
	if !wholeMultiple(*config.Exponential.Max, *config.Exponential.BinWidth) {
		return nil, fmt.Errorf("expected exponential.max to be a whole multiple of exponential.binWidth; got max = %v, binWidth = %v",
			*config.Exponential.Max, *config.Exponential.BinWidth)
	}
	if *config.Logging.Driver == "influxdb" {
		if err := validator.New().Struct(&influxDBRequired{
			Host:   config.Logging.InfluxDB.Host,
			Token:  config.Logging.InfluxDB.Token,
			Org:    config.Logging.InfluxDB.Org,
			Bucket: config.Logging.InfluxDB.Bucket,
		}); err != nil {
			return nil, err
		}
	}

	return &config, nil
}

// influxDBRequired holds the InfluxDB settings that must be present once the
// influxdb logging driver is selected.
type influxDBRequired struct {
	Host   *string `validate:"required"`
	Token  *string `validate:"required"`
	Org    *string `validate:"required"`
	Bucket *string `validate:"required"`
}

// bindEnv lets every key be overridden from the environment, with nested
// keys joined by underscores, e.g. SAMPLING_SEED for sampling.seed.
func bindEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func ReadConfig() *Config {
	v := viper.New()
	bindEnv(v)
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	v.AddConfigPath(".")

	config, err := Load(v)
	if err == nil {
		return config
	}

	if _, ok := err.(*validator.InvalidValidationError); ok {
		log.Fatalf("unable to validate config: err = %s", err)
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		log.Fatalf("%s", err)
	}

	log.Printf("encountered validation errors:\n")
	for _, err := range validationErrs {
		fmt.Printf("\t%s\n", err.Error())
	}
	fmt.Println("Check your configuration file and try again.")
	os.Exit(1)
	return nil
}

// NumExponentialBins returns the number of finite exponential bins below Max.
func (c *Config) NumExponentialBins() int {
	return int(math.Round(*c.Exponential.Max / *c.Exponential.BinWidth))
}

// wholeMultiple reports whether x is n*step for a positive integer n, up to
// floating point error in the division.
func wholeMultiple(x, step float64) bool {
	ratio := x / step
	n := math.Round(ratio)
	return n >= 1 && math.Abs(ratio-n) <= 1e-9*n
}
