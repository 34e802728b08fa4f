package evaluation

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"distanalysis/common"
)

var (
	// ErrInsufficientData is returned for an empty sample sequence.
	ErrInsufficientData = errors.New("evaluation: insufficient data, sample sequence is empty")

	// ErrInvalidBins is returned when the bin count is not positive.
	ErrInvalidBins = errors.New("evaluation: bin count must be positive")

	// ErrEmptyRange is returned when the bin width is zero: every sample
	// has the same value, or (max-min)/k underflows.
	ErrEmptyRange = errors.New("evaluation: empty range, zero bin width")

	// ErrNonFinite is returned when the sample range is NaN or infinite.
	ErrNonFinite = errors.New("evaluation: sample range is not finite")
)

// Histogram is a k-bin partition of a sample's range [Min, Min+k*Width].
//
// Bin i covers the open interval (Min+i*Width, Min+i*Width+Width).
// A sample equal to a bin edge is counted in no bin. This always drops
// the sample minimum, and drops the maximum unless rounding places the
// last upper edge above it.
type Histogram struct {
	Min    float64
	Width  float64
	Counts []int
	// N is the number of samples binned, counted or not.
	N int
}

// Bin partitions samples into k equal-width bins. samples is not modified.
func Bin(k int, samples []float64) (*Histogram, error) {
	if len(samples) == 0 {
		return nil, ErrInsufficientData
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidBins, k)
	}
	if floats.HasNaN(samples) {
		return nil, fmt.Errorf("%w: NaN sample", ErrNonFinite)
	}

	a, b := floats.Min(samples), floats.Max(samples)
	h := (b - a) / float64(k)
	if h == 0 {
		return nil, fmt.Errorf("%w: min=%v max=%v k=%d", ErrEmptyRange, a, b, k)
	}
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return nil, fmt.Errorf("%w: width %v", ErrNonFinite, h)
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	hist := &Histogram{Min: a, Width: h, Counts: make([]int, k), N: len(samples)}
	for i := range hist.Counts {
		lo, hi := hist.Lower(i), hist.Upper(i)
		// first sample > lo, first sample >= hi
		first := sort.Search(len(sorted), func(j int) bool { return sorted[j] > lo })
		last := sort.SearchFloat64s(sorted, hi)
		if last > first {
			hist.Counts[i] = last - first
		}
	}
	return hist, nil
}

// Lower returns the exclusive lower edge of bin i.
func (h *Histogram) Lower(i int) float64 {
	return h.Min + float64(i)*h.Width
}

// Upper returns the exclusive upper edge of bin i.
func (h *Histogram) Upper(i int) float64 {
	return h.Min + float64(i)*h.Width + h.Width
}

// Center returns the midpoint of bin i.
func (h *Histogram) Center(i int) float64 {
	return h.Min + float64(i)*h.Width + h.Width/2
}

// Counted is the number of samples that fell strictly inside a bin.
func (h *Histogram) Counted() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Mass is the fraction of samples counted. It is below 1 whenever a
// sample sits on a bin edge, so the density does not integrate to 1.
func (h *Histogram) Mass() float64 {
	if h.N == 0 {
		return 0
	}
	return float64(h.Counted()) / float64(h.N)
}

// Density normalizes the counts to count/(N*Width) at each bin center.
func (h *Histogram) Density() common.Curve {
	c := common.NewCurve(len(h.Counts))
	for i, count := range h.Counts {
		c.Append(h.Center(i), float64(count)/(float64(h.N)*h.Width))
	}
	return c
}
