package hog

import (
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"go.viam.com/hogview/utils"
)

// Descriptor is a snapshot of a grid's histograms. Histograms is indexed x + y*DimX and every
// entry holds NumBins raw masses.
type Descriptor struct {
	DimX       int         `json:"dim_x"`
	DimY       int         `json:"dim_y"`
	NumBins    int         `json:"num_bins"`
	IgnoreSign bool        `json:"ignore_sign"`
	CellWidth  int         `json:"cell_width"`
	CellHeight int         `json:"cell_height"`
	Histograms [][]float64 `json:"histograms"`
	BinAngles  []float64   `json:"bin_angles"`
}

// Descriptor copies the current masses of every cell.
func (g *Grid) Descriptor() *Descriptor {
	angles := make([]float64, g.cfg.NumBins)
	for i := range angles {
		angles[i] = (float64(i) + 0.5) * domainWidth(g.cfg.IgnoreSign) / float64(g.cfg.NumBins)
	}
	return &Descriptor{
		DimX:       g.dimX,
		DimY:       g.dimY,
		NumBins:    g.cfg.NumBins,
		IgnoreSign: g.cfg.IgnoreSign,
		CellWidth:  g.cfg.CellWidth,
		CellHeight: g.cfg.CellHeight,
		Histograms: lo.Map(g.cells, func(c *Cell, _ int) []float64 { return c.Masses() }),
		BinAngles:  angles,
	}
}

// Validate checks that the histogram and angle counts agree with the layout. Decoded
// descriptors should be validated before use.
func (d *Descriptor) Validate() error {
	if d.DimX < 0 || d.DimY < 0 {
		return utils.NewInvalidInputError("negative grid size %dx%d", d.DimX, d.DimY)
	}
	if d.NumBins < 1 {
		return utils.NewInvalidInputError("bin count must be at least 1, got %d", d.NumBins)
	}
	if d.CellWidth < 1 || d.CellHeight < 1 {
		return utils.NewInvalidInputError("cell dimensions must be positive, got (%d, %d)", d.CellWidth, d.CellHeight)
	}
	if len(d.Histograms) != d.DimX*d.DimY {
		return utils.NewInvalidInputError("expected %d histograms for a %dx%d grid, got %d",
			d.DimX*d.DimY, d.DimX, d.DimY, len(d.Histograms))
	}
	if len(d.BinAngles) != d.NumBins {
		return utils.NewInvalidInputError("expected %d bin angles, got %d", d.NumBins, len(d.BinAngles))
	}
	for i, h := range d.Histograms {
		if len(h) != d.NumBins {
			return utils.NewInvalidInputError("histogram %d has %d bins, expected %d", i, len(h), d.NumBins)
		}
		for _, m := range h {
			if !utils.IsFinite(m) || m < 0 {
				return utils.NewInvalidInputError("histogram %d has mass %v", i, m)
			}
		}
	}
	return nil
}

// Empty is true when the image was smaller than one cell.
func (d *Descriptor) Empty() bool {
	return d.DimX == 0 || d.DimY == 0
}

// Histogram returns the raw masses of the cell at (x, y).
func (d *Descriptor) Histogram(x, y int) ([]float64, error) {
	if x < 0 || x >= d.DimX {
		return nil, utils.NewIndexOutOfRangeError("cell x", x, d.DimX)
	}
	if y < 0 || y >= d.DimY {
		return nil, utils.NewIndexOutOfRangeError("cell y", y, d.DimY)
	}
	return d.Histograms[x+y*d.DimX], nil
}

// Vector concatenates the raw histograms in row major cell order.
func (d *Descriptor) Vector() []float64 {
	return lo.Flatten(d.Histograms)
}

// NormalizedVector is Vector with each cell divided by its own largest mass.
func (d *Descriptor) NormalizedVector() []float64 {
	out := make([]float64, 0, len(d.Histograms)*d.NumBins)
	for _, h := range d.Histograms {
		maxMass := floats.Max(h)
		for _, m := range h {
			if maxMass > 0 {
				m /= maxMass
			}
			out = append(out, m)
		}
	}
	return out
}

// Distance returns the Euclidean distance between the raw vectors of two descriptors with
// the same layout and orientation domain.
func (d *Descriptor) Distance(other *Descriptor) (float64, error) {
	if other == nil {
		return 0, utils.NewInvalidInputError("nil descriptor")
	}
	if d.IgnoreSign != other.IgnoreSign {
		return 0, utils.NewInvalidInputError(
			"cannot compare a %s descriptor with a %s one", signName(d.IgnoreSign), signName(other.IgnoreSign))
	}
	if d.DimX != other.DimX || d.DimY != other.DimY || d.NumBins != other.NumBins {
		return 0, utils.NewInvalidInputError(
			"descriptor layouts differ: %dx%dx%d vs %dx%dx%d",
			d.DimX, d.DimY, d.NumBins, other.DimX, other.DimY, other.NumBins)
	}
	if d.Empty() {
		return 0, nil
	}
	return floats.Distance(d.Vector(), other.Vector(), 2), nil
}

// Stats summarizes a descriptor.
type Stats struct {
	Cells      int
	EmptyCells int
	TotalMass  float64
	// Mean, StdDev, Median and P90 describe the distribution of per cell total mass.
	MeanCellMass   float64
	StdDevCellMass float64
	MedianCellMass float64
	P90CellMass    float64
	// BinTotals sums each bin over all cells.
	BinTotals     []float64
	DominantBin   int
	DominantAngle float64
}

// Stats computes totals over the whole grid. An empty descriptor has all zero stats.
func (d *Descriptor) Stats() (Stats, error) {
	s := Stats{
		Cells:     len(d.Histograms),
		BinTotals: make([]float64, d.NumBins),
	}
	if s.Cells == 0 {
		return s, nil
	}
	cellMass := lo.Map(d.Histograms, func(h []float64, _ int) float64 { return floats.Sum(h) })
	for _, h := range d.Histograms {
		floats.Add(s.BinTotals, h)
	}
	s.EmptyCells = lo.CountBy(cellMass, func(m float64) bool { return m == 0 })
	s.TotalMass = floats.Sum(cellMass)
	s.MeanCellMass, s.StdDevCellMass = stat.PopMeanStdDev(cellMass, nil)

	var err error
	if s.MedianCellMass, err = stats.Median(cellMass); err != nil {
		return Stats{}, err
	}
	if s.P90CellMass, err = stats.PercentileNearestRank(cellMass, 90); err != nil {
		return Stats{}, err
	}
	s.DominantBin = floats.MaxIdx(s.BinTotals)
	s.DominantAngle = d.BinAngles[s.DominantBin]
	return s, nil
}

func domainWidth(ignoreSign bool) float64 {
	return lo.Ternary(ignoreSign, halfTurn, fullTurn)
}

func signName(ignoreSign bool) string {
	return lo.Ternary(ignoreSign, "unsigned", "signed")
}
