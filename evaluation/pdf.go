// Package evaluation estimates probability density functions from
// samples.
package evaluation

import "distanalysis/common"

// PDF estimates the density of samples with a k-bin histogram and
// returns one point per bin: the bin center and count/(n*h), where h is
// the bin width (max-min)/k.
//
// Samples on a bin edge are excluded, see Histogram.
func PDF(k int, samples []float64) (common.Curve, error) {
	hist, err := Bin(k, samples)
	if err != nil {
		return common.Curve{}, err
	}
	return hist.Density(), nil
}
