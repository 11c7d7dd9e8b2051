package export

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/hogview/hog"
	"go.viam.com/hogview/utils"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// WriteBinPlot draws a bar chart of every bin summed over all cells. format is any format
// gonum/plot can write, such as "png" or "svg".
func WriteBinPlot(w io.Writer, d *hog.Descriptor, format string) error {
	stats, err := d.Stats()
	if err != nil {
		return err
	}
	bars, err := plotter.NewBarChart(plotter.Values(stats.BinTotals), vg.Points(16))
	if err != nil {
		return errors.Wrap(err, "building bar chart")
	}

	p := plot.New()
	p.Title.Text = "orientation mass"
	p.X.Label.Text = "bin center (degrees)"
	p.Y.Label.Text = "mass"
	p.Add(bars)
	labels := make([]string, len(d.BinAngles))
	for i, angle := range d.BinAngles {
		labels[i] = fmt.Sprintf("%.0f", utils.RadToDeg(angle))
	}
	p.NominalX(labels...)
	return writePlot(w, p, format)
}

// cellMassGrid exposes per cell total mass as a plotter.GridXYZ.
type cellMassGrid struct {
	d    *hog.Descriptor
	mass []float64
}

func (g cellMassGrid) Dims() (c, r int) { return g.d.DimX, g.d.DimY }

// Z flips rows so that cell row 0 is drawn at the top like in the image.
func (g cellMassGrid) Z(c, r int) float64 { return g.mass[c+(g.d.DimY-1-r)*g.d.DimX] }
func (g cellMassGrid) X(c int) float64    { return float64(c) }
func (g cellMassGrid) Y(r int) float64    { return float64(r) }

// WriteMassPlot draws a heat map of the total mass of every cell.
func WriteMassPlot(w io.Writer, d *hog.Descriptor, format string) error {
	if d.Empty() {
		return utils.NewInvalidInputError("descriptor has no cells (%dx%d)", d.DimX, d.DimY)
	}
	grid := cellMassGrid{d: d, mass: make([]float64, len(d.Histograms))}
	for i, h := range d.Histograms {
		grid.mass[i] = floats.Sum(h)
	}
	heat := plotter.NewHeatMap(grid, palette.Heat(32, 1))

	p := plot.New()
	p.Title.Text = "cell mass"
	p.X.Label.Text = "cell x"
	p.Y.Label.Text = "cell y (flipped)"
	p.Add(heat)
	return writePlot(w, p, format)
}

func writePlot(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return errors.Wrapf(err, "unsupported plot format %q", format)
	}
	_, err = wt.WriteTo(w)
	return err
}
