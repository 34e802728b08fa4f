// Package randgen draws pseudo-random sample sequences from the
// Rayleigh, Gamma, Weibull and Exponential distributions.
//
// Every generator takes a golang.org/x/exp/rand.Source. A nil source
// uses the package-global source of x/exp/rand, in the same way the
// gonum distuv types do.
package randgen

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInvalidCount is returned when the requested sample count is not positive.
	ErrInvalidCount = errors.New("randgen: sample count must be positive")

	// ErrInvalidParameter is returned for a non-positive or non-finite
	// shape, scale or rate parameter.
	ErrInvalidParameter = errors.New("randgen: distribution parameter must be positive and finite")
)

// Rander wraps the Rand method.
type Rander interface {
	// Rand returns a random sample drawn from the distribution.
	Rand() float64
}

// Sample draws n independent values from d.
func Sample(n int, d Rander) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidCount, n)
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand()
	}
	return xs, nil
}

// RayleighSamples draws n values from Rayleigh{Sigma: sigma}.
func RayleighSamples(n int, sigma float64, src rand.Source) ([]float64, error) {
	if err := checkParams("sigma", sigma); err != nil {
		return nil, err
	}
	return Sample(n, Rayleigh{Sigma: sigma, Src: src})
}

// GammaSamples draws n values from a Gamma distribution with shape v
// and rate b, that is scale 1/b.
func GammaSamples(n int, v, b float64, src rand.Source) ([]float64, error) {
	if err := checkParams("v", v, "b", b); err != nil {
		return nil, err
	}
	return Sample(n, distuv.Gamma{Alpha: v, Beta: b, Src: src})
}

// WeibullSamples draws n values from a Weibull distribution with scale a
// and shape b.
func WeibullSamples(n int, a, b float64, src rand.Source) ([]float64, error) {
	if err := checkParams("a", a, "b", b); err != nil {
		return nil, err
	}
	return Sample(n, distuv.Weibull{Lambda: a, K: b, Src: src})
}

// ExponentialSamples draws n values from an Exponential distribution
// with rate l.
func ExponentialSamples(n int, l float64, src rand.Source) ([]float64, error) {
	if err := checkParams("l", l); err != nil {
		return nil, err
	}
	return Sample(n, distuv.Exponential{Rate: l, Src: src})
}

// checkParams takes name, value pairs.
func checkParams(kv ...interface{}) error {
	for i := 0; i+1 < len(kv); i += 2 {
		v := kv[i+1].(float64)
		if !(v > 0) || math.IsInf(v, 1) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidParameter, kv[i], v)
		}
	}
	return nil
}
