// Package variate draws random variates from a handful of distributions. Each
// generator is a pure function of its parameters and the uniform draws it
// pulls from the supplied random.Source. Parameters are not validated.
package variate

import (
	"math"

	"github.com/kcz17/montecarlo/random"
)

// Exponential uses the inverse CDF, -ln(1-U)/lambda. Drawing 1-U keeps the
// argument of the logarithm in (0, 1].
func Exponential(src random.Source, lambda float64) float64 {
	return -math.Log(1-src.Float64()) / lambda
}

// Pareto uses the inverse CDF, x0*(1-U)^(-1/a). Every value is >= x0.
func Pareto(src random.Source, a, x0 float64) float64 {
	return x0 * math.Pow(1-src.Float64(), -1/a)
}

// normalUniforms is the number of uniform draws summed per normal variate.
// Twelve uniforms have variance 1, so the sum minus 6 approximates N(0, 1).
const normalUniforms = 12

// Normal approximates N(mu, sigma^2) by the central limit theorem: the sum of
// twelve uniforms minus six, scaled by sigma and shifted by mu. The tails are
// truncated at mu ± 6 sigma.
func Normal(src random.Source, mu, sigma float64) float64 {
	var sum float64
	for i := 0; i < normalUniforms; i++ {
		sum += src.Float64()
	}
	return mu + sigma*(sum-6)
}

// Poisson uses Knuth's method: multiply uniforms until the running product
// drops to exp(-lambda) or below, and return the number of multiplications
// minus one.
func Poisson(src random.Source, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= src.Float64()
		if p <= limit {
			return k - 1
		}
	}
}
