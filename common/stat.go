package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample sequence.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize describes samples for debug output. samples is not modified.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return Summary{
		N:      len(samples),
		Min:    floats.Min(samples),
		Max:    floats.Max(samples),
		Mean:   mean,
		StdDev: std,
	}
}
