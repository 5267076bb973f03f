package main

import (
	"context"
	"log"

	"github.com/kcz17/montecarlo/config"
	"github.com/kcz17/montecarlo/diagnostics"
	"github.com/kcz17/montecarlo/experiments"
	"github.com/kcz17/montecarlo/logging"
	"github.com/kcz17/montecarlo/runner"
)

func main() {
	conf := config.ReadConfig()

	logger, err := logging.New(*conf.Logging.Driver, influxDBOptions(conf.Logging.InfluxDB))
	if err != nil {
		log.Fatalf("expected logging.New() returns nil err; got err = %v", err)
	}
	defer logger.Close()

	percentile, err := diagnostics.ParsePercentile(*conf.Diagnostics.Percentile)
	if err != nil {
		log.Fatalf("expected valid diagnostics percentile; got err = %v", err)
	}

	r := runner.New(runner.Options{
		OutputDir:   *conf.Output.Dir,
		Seed:        *conf.Sampling.Seed,
		Parallel:    *conf.Sampling.Parallel,
		Diagnostics: *conf.Diagnostics.Enabled,
		Percentile:  percentile,
	}, experiments.FromConfig(conf), logger)

	if _, err := r.Run(context.Background()); err != nil {
		logger.Close()
		log.Fatalf("data generation failed: %v", err)
	}
}

func influxDBOptions(c config.InfluxDB) logging.InfluxDBOptions {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return logging.InfluxDBOptions{
		Host:   deref(c.Host),
		Token:  deref(c.Token),
		Org:    deref(c.Org),
		Bucket: deref(c.Bucket),
	}
}
