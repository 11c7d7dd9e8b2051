package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/hogview/export"
	"go.viam.com/hogview/hog"
	"go.viam.com/hogview/utils"
)

const (
	massHistogramBuckets = 10
	massHistogramWidth   = 40
)

func (r *runner) describeAction(c *cli.Context) error {
	paths, err := requireArgs(c, "at least one IMAGE")
	if err != nil {
		return err
	}

	summary := table.NewWriter()
	summary.SetOutputMirror(r.out)
	summary.AppendHeader(table.Row{"Image", "Size", "Grid", "Cell", "Bins", "Total mass", "Dominant angle"})

	var combined error
	var described []*hog.Descriptor
	var names []string
	for _, path := range paths {
		g, img, err := r.buildGrid(path)
		if err != nil {
			warningf(r.errOut, "%v", err)
			combined = multierr.Append(combined, err)
			continue
		}
		d := g.Descriptor()
		st, err := d.Stats()
		if err != nil {
			warningf(r.errOut, "%s: %v", path, err)
			combined = multierr.Append(combined, err)
			continue
		}
		dims := g.CellDims()
		summary.AppendRow(table.Row{
			path,
			fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
			fmt.Sprintf("%dx%d", g.DimX(), g.DimY()),
			fmt.Sprintf("%dx%d", dims.X, dims.Y),
			fmt.Sprintf("%d %s", g.NumBins(), signName(g.IgnoreSign())),
			fmt.Sprintf("%.3f", st.TotalMass),
			fmt.Sprintf("%.1f", utils.RadToDeg(st.DominantAngle)),
		})
		described = append(described, d)
		names = append(names, path)
	}
	if len(described) > 0 {
		summary.Render()
	}

	for i, d := range described {
		if c.Bool(describeFlagCells) {
			printf(r.out, "\n%s", names[i])
			r.printCells(d)
		}
		if c.Bool(describeFlagHistogram) {
			printf(r.out, "\n%s cell mass", names[i])
			if err := export.WriteMassHistogram(r.out, d, massHistogramBuckets, massHistogramWidth); err != nil {
				combined = multierr.Append(combined, err)
			}
		}
	}
	return combined
}

func (r *runner) printCells(d *hog.Descriptor) {
	cells := table.NewWriter()
	cells.SetOutputMirror(r.out)
	cells.AppendHeader(table.Row{"X", "Y", "Mass", "Histogram"})
	normalized := d.NormalizedVector()
	for i, hist := range d.Histograms {
		cells.AppendRow(table.Row{
			i % d.DimX,
			i / d.DimX,
			fmt.Sprintf("%.3f", floats.Sum(hist)),
			formatHistogram(normalized[i*d.NumBins : (i+1)*d.NumBins]),
		})
	}
	cells.Render()
}

func signName(ignoreSign bool) string {
	if ignoreSign {
		return "unsigned"
	}
	return "signed"
}
