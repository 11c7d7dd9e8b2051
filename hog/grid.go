// Package hog computes histogram of oriented gradients descriptors. An image is split into a
// regular grid of cells and every pixel votes its gradient magnitude into the orientation
// histogram of the cell it lies in.
package hog

import (
	"context"
	"image"

	"go.viam.com/hogview/rimage"
	"go.viam.com/hogview/utils"
)

// Grid owns one Cell per grid position along with the per pixel maps they were filled from.
// Pixels beyond the last whole cell on the right and bottom are not counted.
type Grid struct {
	cfg         Config
	dimX, dimY  int
	cells       []*Cell
	intensity   *rimage.Float64Image
	gradient    *rimage.GradientField
	orientation *rimage.OrientationMap
}

// NewGrid converts img to a single channel intensity image in [0, 1] and builds its grid.
func NewGrid(img image.Image, cfg Config, opts ...Option) (*Grid, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	intensity, err := rimage.ConvertToFloat64Gray(img)
	if err != nil {
		return nil, err
	}
	return newGrid(intensity, cfg, newOptions(opts))
}

// NewGridFromFloat64 builds a grid from an intensity image. Images with three or four
// channels are reduced to gray first.
func NewGridFromFloat64(img *rimage.Float64Image, cfg Config, opts ...Option) (*Grid, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if img.Empty() {
		return nil, utils.NewInvalidInputError("empty image")
	}
	if img.Channels() != 1 {
		gray, err := img.Gray()
		if err != nil {
			return nil, err
		}
		img = gray
	}
	return newGrid(img, cfg, newOptions(opts))
}

func newGrid(intensity *rimage.Float64Image, cfg Config, o *options) (*Grid, error) {
	var (
		gradient    *rimage.GradientField
		orientation *rimage.OrientationMap
		err         error
	)
	if o.parallel {
		gradient, err = rimage.ComputeGradientFieldParallel(intensity)
	} else {
		gradient, err = rimage.ComputeGradientField(intensity)
	}
	if err != nil {
		return nil, err
	}
	if o.parallel {
		orientation, err = rimage.ComputeOrientationMapParallel(gradient)
	} else {
		orientation, err = rimage.ComputeOrientationMap(gradient)
	}
	if err != nil {
		return nil, err
	}

	g := &Grid{
		cfg:         cfg,
		dimX:        intensity.Width() / cfg.CellWidth,
		dimY:        intensity.Height() / cfg.CellHeight,
		intensity:   intensity,
		gradient:    gradient,
		orientation: orientation,
	}
	o.logger.Debugw("grid size", "dim_x", g.dimX, "dim_y", g.dimY,
		"cell_width", cfg.CellWidth, "cell_height", cfg.CellHeight, "bins", cfg.NumBins)

	g.cells = make([]*Cell, g.dimX*g.dimY)
	for i := range g.cells {
		if g.cells[i], err = NewCell(cfg.NumBins, cfg.IgnoreSign); err != nil {
			return nil, err
		}
	}

	if o.parallel {
		err = utils.GroupWorkParallel(
			context.Background(),
			g.dimY,
			func(numGroups int) {
				o.logger.Debugw("accumulating in parallel", "groups", numGroups)
			},
			func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
				return func(memberNum, cellY int) {
					g.accumulateRow(cellY)
				}, nil
			},
		)
		if err != nil {
			return nil, err
		}
	} else {
		for cellY := 0; cellY < g.dimY; cellY++ {
			g.accumulateRow(cellY)
		}
	}
	return g, nil
}

// accumulateRow votes every pixel of cell row cellY. Rows are independent so they may run
// concurrently.
func (g *Grid) accumulateRow(cellY int) {
	width := g.dimX * g.cfg.CellWidth
	for py := cellY * g.cfg.CellHeight; py < (cellY+1)*g.cfg.CellHeight; py++ {
		for px := 0; px < width; px++ {
			cell := g.cells[px/g.cfg.CellWidth+cellY*g.dimX]
			cell.AddPixel(g.orientation.Orientation.At(py, px), g.orientation.Magnitude.At(py, px))
		}
	}
}

// DimX returns the number of whole cells across.
func (g *Grid) DimX() int {
	return g.dimX
}

// DimY returns the number of whole cells down.
func (g *Grid) DimY() int {
	return g.dimY
}

// CellDims returns the cell width and height in pixels.
func (g *Grid) CellDims() image.Point {
	return image.Point{g.cfg.CellWidth, g.cfg.CellHeight}
}

// NumBins returns the bin count shared by all cells.
func (g *Grid) NumBins() int {
	return g.cfg.NumBins
}

// IgnoreSign reports whether the cells fold opposite directions together.
func (g *Grid) IgnoreSign() bool {
	return g.cfg.IgnoreSign
}

// Config returns the config the grid was built with, defaults applied.
func (g *Grid) Config() Config {
	return g.cfg
}

// Cell returns the cell at grid position (x, y).
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if x < 0 || x >= g.dimX {
		return nil, utils.NewIndexOutOfRangeError("cell x", x, g.dimX)
	}
	if y < 0 || y >= g.dimY {
		return nil, utils.NewIndexOutOfRangeError("cell y", y, g.dimY)
	}
	return g.cells[x+y*g.dimX], nil
}

// Cells returns every cell in row major order, index x + y*DimX().
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// CellRect returns the pixel rectangle covered by the cell at (x, y).
func (g *Grid) CellRect(x, y int) image.Rectangle {
	return image.Rect(x*g.cfg.CellWidth, y*g.cfg.CellHeight, (x+1)*g.cfg.CellWidth, (y+1)*g.cfg.CellHeight)
}

// Intensity returns the single channel image the grid was computed from.
func (g *Grid) Intensity() *rimage.Float64Image {
	return g.intensity
}

// Gradient returns the per pixel centered differences.
func (g *Grid) Gradient() *rimage.GradientField {
	return g.gradient
}

// Orientation returns the per pixel gradient angles and magnitudes.
func (g *Grid) Orientation() *rimage.OrientationMap {
	return g.orientation
}
