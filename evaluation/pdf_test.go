package evaluation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestPDFEdgeExclusion(t *testing.T) {
	samples := []float64{0.0, 1.0, 2.0, 3.0, 4.0}
	c, err := PDF(2, samples)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, c.X)
	assert.Equal(t, []float64{0.1, 0.1}, c.Y)

	// 0, 2 and 4 sit on edges and are counted nowhere.
	hist, err := Bin(2, samples)
	require.NoError(t, err)
	assert.Equal(t, 0.0, hist.Min)
	assert.Equal(t, 2.0, hist.Width)
	assert.Equal(t, []int{1, 1}, hist.Counts)
	assert.Equal(t, 2, hist.Counted())
	assert.Equal(t, 0.4, hist.Mass())

	integral := 0.0
	for _, y := range c.Y {
		integral += y * hist.Width
	}
	assert.InDelta(t, 0.4, integral, 1e-12)
}

func TestPDFDoesNotModifyInput(t *testing.T) {
	samples := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	orig := append([]float64(nil), samples...)
	_, err := PDF(3, samples)
	require.NoError(t, err)
	assert.Equal(t, orig, samples)
}

func TestPDFMatchesBruteForce(t *testing.T) {
	src := rand.NewSource(11)
	samples := make([]float64, 2000)
	r := rand.New(src)
	for i := range samples {
		// coarse grid so plenty of samples land on edges
		samples[i] = float64(r.Intn(41)) / 4
	}
	for _, k := range []int{1, 2, 5, 8, 40, 97} {
		hist, err := Bin(k, samples)
		require.NoError(t, err)
		for i, got := range hist.Counts {
			want := 0
			for _, s := range samples {
				if hist.Min+float64(i)*hist.Width < s && s < hist.Min+float64(i)*hist.Width+hist.Width {
					want++
				}
			}
			assert.Equal(t, want, got, "k=%d bin %d", k, i)
		}
	}
}

func TestPDFProperties(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		n := 2 + r.Intn(500)
		k := 1 + r.Intn(200)
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = r.NormFloat64()*3 + 10
		}
		c, err := PDF(k, samples)
		require.NoError(t, err)
		require.Len(t, c.X, k)
		require.Len(t, c.Y, k)
		for i := range c.X {
			assert.True(t, c.Y[i] >= 0)
			if i > 0 {
				assert.Greater(t, c.X[i], c.X[i-1])
			}
		}
	}
}

func TestPDFContinuousMass(t *testing.T) {
	const n = 10000
	samples := make([]float64, n)
	r := rand.New(rand.NewSource(9))
	for i := range samples {
		samples[i] = r.Float64()
	}
	hist, err := Bin(50, samples)
	require.NoError(t, err)
	// the minimum is always on the first lower edge
	assert.Less(t, hist.Counted(), n)
	assert.GreaterOrEqual(t, hist.Counted(), n-2)
}

func TestPDFApproximatesExponential(t *testing.T) {
	d := distuv.Exponential{Rate: 1.5, Src: rand.NewSource(1)}
	samples := make([]float64, 100000)
	for i := range samples {
		samples[i] = d.Rand()
	}
	c, err := PDF(100, samples)
	require.NoError(t, err)
	for i, x := range c.X {
		if x > 2 {
			break
		}
		assert.InDelta(t, d.Prob(x), c.Y[i], 0.05, "at x=%v", x)
	}
}

func TestPDFErrors(t *testing.T) {
	_, err := PDF(10, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
	_, err = PDF(10, []float64{})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = PDF(0, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidBins)
	_, err = PDF(-4, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidBins)

	_, err = PDF(5, []float64{2.5, 2.5, 2.5})
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = PDF(1, []float64{7})
	assert.ErrorIs(t, err, ErrEmptyRange)

	_, err = PDF(5, []float64{1, math.NaN(), 2})
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = PDF(5, []float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = PDF(5, []float64{math.Inf(-1), math.Inf(1)})
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestPDFWidthUnderflow(t *testing.T) {
	// distinct samples, but (max-min)/k rounds to zero
	_, err := PDF(2, []float64{0, 5e-324})
	require.ErrorIs(t, err, ErrEmptyRange)
	assert.Contains(t, err.Error(), "min=0 max=5e-324 k=2")
	assert.NotContains(t, err.Error(), "all samples are equal")
}

func TestHistogramEdges(t *testing.T) {
	hist, err := Bin(4, []float64{-2, 6})
	require.NoError(t, err)
	assert.Equal(t, 2.0, hist.Width)
	assert.Equal(t, -2.0, hist.Lower(0))
	assert.Equal(t, 0.0, hist.Upper(0))
	assert.Equal(t, 4.0, hist.Lower(3))
	assert.Equal(t, 6.0, hist.Upper(3))
	assert.Equal(t, 5.0, hist.Center(3))
	assert.Equal(t, 0.0, hist.Mass())
}
