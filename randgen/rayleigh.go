package randgen

import (
	"math"

	"golang.org/x/exp/rand"
)

// Rayleigh generates values by the inverse transform
//
//	x = (Sigma / sqrt(2)) * sqrt(-2 ln u),  u uniform on (0, 1).
//
// With this parameterization x^2 is exponential with mean Sigma^2. It
// agrees with theory.Rayleigh only for Sigma = 1.
type Rayleigh struct {
	Sigma float64
	Src   rand.Source
}

// Rand returns a random sample drawn from the distribution.
func (r Rayleigh) Rand() float64 {
	var u float64
	// Float64 is on [0, 1); a zero draw is redrawn so ln(u) stays finite.
	for u == 0 {
		if r.Src == nil {
			u = rand.Float64()
		} else {
			u = rand.New(r.Src).Float64()
		}
	}
	return (r.Sigma / math.Sqrt2) * math.Sqrt(-2*math.Log(u))
}
