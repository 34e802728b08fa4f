package common

// Curve is a density function sampled at ordered points.
// X and Y always have the same length.
type Curve struct {
	X []float64
	Y []float64
}

// NewCurve returns an empty curve with room for n points.
func NewCurve(n int) Curve {
	if n < 0 {
		n = 0
	}
	return Curve{X: make([]float64, 0, n), Y: make([]float64, 0, n)}
}

// Append adds the point (x, y) at the end of c.
func (c *Curve) Append(x, y float64) {
	c.X = append(c.X, x)
	c.Y = append(c.Y, y)
}

// Len returns the number of points. Len and XY make a Curve usable as
// a plotter.XYer.
func (c Curve) Len() int {
	return len(c.X)
}

// XY returns point i.
func (c Curve) XY(i int) (float64, float64) {
	return c.X[i], c.Y[i]
}
