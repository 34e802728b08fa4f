// Package theory evaluates closed-form probability density functions
// on an evenly spaced grid.
//
// Every evaluator returns the n-1 points x_i = i*deltaX for i = 1..n-1.
// The point x = 0 is never evaluated, so shape parameters below 1 do
// not hit the singularity at the origin.
package theory

import (
	"errors"
	"fmt"
	"math"

	"distanalysis/common"
)

var (
	// ErrInvalidCount is returned when the point count is below 1.
	ErrInvalidCount = errors.New("theory: point count must be at least 1")

	// ErrInvalidParameter is returned for a non-positive or non-finite
	// parameter or step.
	ErrInvalidParameter = errors.New("theory: parameter must be positive and finite")
)

// Rayleigh evaluates y = (2x/sigma) * exp(-x^2/sigma).
//
// This is not the textbook form (which uses sigma^2); it matches the
// randgen.Rayleigh generator only at sigma = 1 and is kept as is.
func Rayleigh(sigma float64, n int, deltaX float64) (common.Curve, error) {
	if err := check(n, deltaX, "sigma", sigma); err != nil {
		return common.Curve{}, err
	}
	return evaluate(n, deltaX, func(x float64) float64 {
		return ((2 * x) / sigma) * math.Exp(-(x*x)/sigma)
	}), nil
}

// Gamma evaluates y = b^v / Γ(v) * x^(v-1) * exp(-b*x) for shape v and rate b.
func Gamma(v, b float64, n int, deltaX float64) (common.Curve, error) {
	if err := check(n, deltaX, "v", v, "b", b); err != nil {
		return common.Curve{}, err
	}
	norm := math.Pow(b, v) / math.Gamma(v)
	return evaluate(n, deltaX, func(x float64) float64 {
		return norm * math.Pow(x, v-1) * math.Exp(-b*x)
	}), nil
}

// Weibull evaluates y = (b/a) * (x/a)^(b-1) * exp(-(x/a)^b) for scale a
// and shape b.
func Weibull(a, b float64, n int, deltaX float64) (common.Curve, error) {
	if err := check(n, deltaX, "a", a, "b", b); err != nil {
		return common.Curve{}, err
	}
	return evaluate(n, deltaX, func(x float64) float64 {
		return (b / a) * math.Pow(x/a, b-1) * math.Exp(-math.Pow(x/a, b))
	}), nil
}

// Exponential evaluates y = l * exp(-l*x) for rate l.
func Exponential(l float64, n int, deltaX float64) (common.Curve, error) {
	if err := check(n, deltaX, "l", l); err != nil {
		return common.Curve{}, err
	}
	return evaluate(n, deltaX, func(x float64) float64 {
		return l * math.Exp(-l*x)
	}), nil
}

func evaluate(n int, deltaX float64, f func(x float64) float64) common.Curve {
	c := common.NewCurve(n - 1)
	for i := 1; i < n; i++ {
		x := float64(i) * deltaX
		c.Append(x, f(x))
	}
	return c
}

func check(n int, deltaX float64, params ...interface{}) error {
	if n < 1 {
		return fmt.Errorf("%w: n=%d", ErrInvalidCount, n)
	}
	if !positive(deltaX) {
		return fmt.Errorf("%w: deltaX=%v", ErrInvalidParameter, deltaX)
	}
	for i := 0; i+1 < len(params); i += 2 {
		if v := params[i+1].(float64); !positive(v) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidParameter, params[i], v)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
