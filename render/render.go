// Package render draws comparison panels as a grid of line plots with
// gonum/plot.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"

	"distanalysis/comparison"
)

var log = logging.MustGetLogger("distanalysis/render")

var (
	// ErrUnsupportedFormat is returned for an output format other than
	// png, jpg or eps.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")

	// ErrPanelCount is returned when the panel count is not Rows*Cols.
	ErrPanelCount = errors.New("render: panel count does not match grid")
)

// Grid lays panels out row by row.
type Grid struct {
	Rows, Cols int
	// XMin and XMax bound the x axis of every panel.
	XMin, XMax    float64
	Width, Height vg.Length
}

// DefaultGrid is a 2x2 grid with x in [0, 4].
func DefaultGrid() Grid {
	return Grid{
		Rows:   2,
		Cols:   2,
		XMin:   0,
		XMax:   4,
		Width:  vg.Points(800),
		Height: vg.Points(640),
	}
}

// Plot draws one panel: the empirical estimate in red, the closed-form
// density in blue, with legend and grid lines.
func (g Grid) Plot(panel comparison.Panel) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = panel.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "PDF(x)"
	p.Add(plotter.NewGrid())

	est, err := plotter.NewLine(panel.Empirical)
	if err != nil {
		return nil, fmt.Errorf("%s: empirical curve: %w", panel.Title, err)
	}
	est.LineStyle.Color = plotutil.Color(0)

	pdf, err := plotter.NewLine(panel.Theoretical)
	if err != nil {
		return nil, fmt.Errorf("%s: theoretical curve: %w", panel.Title, err)
	}
	pdf.LineStyle.Color = plotutil.Color(2)

	p.Add(est, pdf)
	p.Legend.Add("PDF estimate", est)
	p.Legend.Add("PDF", pdf)
	p.Legend.Top = true

	p.X.Min = g.XMin
	p.X.Max = g.XMax
	return p, nil
}

// Draw renders panels onto c.
func (g Grid) Draw(c draw.Canvas, panels []comparison.Panel) error {
	if len(panels) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %d panels for %dx%d", ErrPanelCount, len(panels), g.Rows, g.Cols)
	}
	plots := make([][]*plot.Plot, g.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, g.Cols)
		for col := range plots[r] {
			p, err := g.Plot(panels[r*g.Cols+col])
			if err != nil {
				return err
			}
			plots[r][col] = p
		}
	}

	t := draw.Tiles{
		Rows:      g.Rows,
		Cols:      g.Cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	canvases := plot.Align(plots, t, c)
	for r := range plots {
		for col := range plots[r] {
			plots[r][col].Draw(canvases[r][col])
		}
	}
	return nil
}

func newCanvas(format string, w, h vg.Length) (vg.CanvasSizer, io.WriterTo, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		img := vgimg.PngCanvas{Canvas: vgimg.New(w, h)}
		return img, img, nil
	case "jpg", "jpeg":
		img := vgimg.JpegCanvas{Canvas: vgimg.New(w, h)}
		return img, img, nil
	case "eps":
		img := vgeps.New(w, h)
		return img, img, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Write renders panels in format ("png", "jpg" or "eps") to w.
func (g Grid) Write(w io.Writer, format string, panels []comparison.Panel) error {
	c, out, err := newCanvas(format, g.Width, g.Height)
	if err != nil {
		return err
	}
	if err := g.Draw(draw.New(c), panels); err != nil {
		return err
	}
	_, err = out.WriteTo(w)
	return err
}

// Save writes the figure to path; the extension selects the format.
// No file is left behind when drawing or writing fails.
func (g Grid) Save(path string, panels []comparison.Panel) error {
	c, out, err := newCanvas(filepath.Ext(path), g.Width, g.Height)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := g.Draw(draw.New(c), panels); err != nil {
		return err
	}
	log.Debugf("writing %s", path)
	return writeFile(path, out)
}

// writeFile writes out to path, removing the partial file on error.
func writeFile(path string, out io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	_, err = out.WriteTo(f)
	return err
}

// File renders to a fixed path. It implements comparison.Renderer.
type File struct {
	Grid
	Path string
}

// Render saves panels to f.Path.
func (f File) Render(panels []comparison.Panel) error {
	return f.Save(f.Path, panels)
}
