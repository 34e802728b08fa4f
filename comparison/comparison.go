// Package comparison builds, for each distribution, the empirical and
// the theoretical density curves and hands them to a Renderer.
package comparison

import (
	"fmt"

	"github.com/op/go-logging"
	"golang.org/x/exp/rand"

	"distanalysis/common"
	"distanalysis/evaluation"
	"distanalysis/randgen"
	"distanalysis/theory"
)

var log = logging.MustGetLogger("distanalysis/comparison")

// Panel is one distribution's comparison.
type Panel struct {
	Title       string
	Empirical   common.Curve
	Theoretical common.Curve
}

// Renderer draws a set of panels.
type Renderer interface {
	Render(panels []Panel) error
}

// Setup fixes the sample count, bin count and evaluation grid for one
// distribution.
type Setup struct {
	Title   string
	Samples int
	Bins    int
	Points  int
	DeltaX  float64
	Draw    func(n int, src rand.Source) ([]float64, error)
	Density func(n int, deltaX float64) (common.Curve, error)
}

// Setups are the four comparisons in grid order.
var Setups = []Setup{
	{
		Title:   "Rayleigh distribution",
		Samples: 100000,
		Bins:    100,
		Points:  100,
		DeltaX:  0.05,
		Draw: func(n int, src rand.Source) ([]float64, error) {
			return randgen.RayleighSamples(n, 1, src)
		},
		Density: func(n int, dx float64) (common.Curve, error) {
			return theory.Rayleigh(1, n, dx)
		},
	},
	{
		Title:   "Gamma distribution",
		Samples: 100000,
		Bins:    400,
		Points:  500,
		DeltaX:  0.01,
		Draw: func(n int, src rand.Source) ([]float64, error) {
			return randgen.GammaSamples(n, 0.5, 0.5, src)
		},
		Density: func(n int, dx float64) (common.Curve, error) {
			return theory.Gamma(0.5, 0.5, n, dx)
		},
	},
	{
		Title:   "Weibull distribution",
		Samples: 100000,
		Bins:    100,
		Points:  500,
		DeltaX:  0.01,
		Draw: func(n int, src rand.Source) ([]float64, error) {
			return randgen.WeibullSamples(n, 1, 5, src)
		},
		Density: func(n int, dx float64) (common.Curve, error) {
			return theory.Weibull(1, 5, n, dx)
		},
	},
	{
		Title:   "Exponential distribution",
		Samples: 100000,
		Bins:    100,
		Points:  500,
		DeltaX:  0.01,
		Draw: func(n int, src rand.Source) ([]float64, error) {
			return randgen.ExponentialSamples(n, 1.5, src)
		},
		Density: func(n int, dx float64) (common.Curve, error) {
			return theory.Exponential(1.5, n, dx)
		},
	},
}

// BuildPanel draws the samples, estimates their density and evaluates
// the closed-form density for s.
func BuildPanel(s Setup, src rand.Source) (Panel, error) {
	samples, err := s.Draw(s.Samples, src)
	if err != nil {
		return Panel{}, fmt.Errorf("%s: sampling: %w", s.Title, err)
	}
	hist, err := evaluation.Bin(s.Bins, samples)
	if err != nil {
		return Panel{}, fmt.Errorf("%s: estimate: %w", s.Title, err)
	}
	theoretical, err := s.Density(s.Points, s.DeltaX)
	if err != nil {
		return Panel{}, fmt.Errorf("%s: density: %w", s.Title, err)
	}

	if log.IsEnabledFor(logging.DEBUG) {
		sum := common.Summarize(samples)
		log.Debugf("%s: n=%d min=%.4g max=%.4g mean=%.4g sd=%.4g width=%.4g counted=%d (%.5f)",
			s.Title, sum.N, sum.Min, sum.Max, sum.Mean, sum.StdDev, hist.Width, hist.Counted(), hist.Mass())
	}
	return Panel{Title: s.Title, Empirical: hist.Density(), Theoretical: theoretical}, nil
}

// Build runs every setup in order. onPanel, if not nil, is called after
// each panel is built.
func Build(setups []Setup, src rand.Source, onPanel func(Panel)) ([]Panel, error) {
	panels := make([]Panel, 0, len(setups))
	for _, s := range setups {
		p, err := BuildPanel(s, src)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
		if onPanel != nil {
			onPanel(p)
		}
	}
	return panels, nil
}

// Run builds the panels for Setups and renders them with r.
func Run(r Renderer, src rand.Source, onPanel func(Panel)) error {
	panels, err := Build(Setups, src, onPanel)
	if err != nil {
		return err
	}
	log.Debugf("rendering %d panels", len(panels))
	if err := r.Render(panels); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
