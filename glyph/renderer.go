// Package glyph draws a descriptor as a field of arrows over a scaled copy of its source
// image, one fan of arrows per cell.
package glyph

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"go.uber.org/multierr"

	"go.viam.com/hogview/hog"
	"go.viam.com/hogview/logging"
	"go.viam.com/hogview/rimage"
	"go.viam.com/hogview/utils"
)

const (
	// DefaultCellSize is the side in pixels each cell is drawn at.
	DefaultCellSize = 20
	// DefaultLineRadius is the length of an arrow for a bin holding the cell's largest mass.
	DefaultLineRadius = 20
	// DefaultHeadAngle is the angle in degrees between an arrow shaft and its barbs.
	DefaultHeadAngle = 30
	// DefaultHeadFraction is the barb length relative to the shaft.
	DefaultHeadFraction = 0.3
)

// Config controls the look of the overlay.
type Config struct {
	CellSize     int
	LineRadius   float64
	Color        rimage.Color
	HeadAngle    float64
	HeadFraction float64
	LineWidth    float64
	Caption      bool
	// Outline draws the border of every cell in OutlineColor under the arrows.
	Outline      bool
	OutlineColor rimage.Color
}

// DefaultConfig returns white arrows on 20 pixel cells.
func DefaultConfig() Config {
	return Config{
		CellSize:     DefaultCellSize,
		LineRadius:   DefaultLineRadius,
		Color:        rimage.White,
		HeadAngle:    DefaultHeadAngle,
		HeadFraction: DefaultHeadFraction,
		LineWidth:    1,
		OutlineColor: rimage.Red,
	}
}

// Validate returns every out of range field.
func (cfg Config) Validate() error {
	var err error
	if cfg.CellSize <= 0 {
		err = multierr.Append(err, utils.NewInvalidConfigError("cell size must be positive, got %d", cfg.CellSize))
	}
	if cfg.LineRadius < 0 || !utils.IsFinite(cfg.LineRadius) {
		err = multierr.Append(err, utils.NewInvalidConfigError("line radius must be a non-negative number, got %v", cfg.LineRadius))
	}
	if cfg.HeadAngle < 0 || cfg.HeadAngle >= 90 {
		err = multierr.Append(err, utils.NewInvalidConfigError("head angle must be in [0, 90), got %v", cfg.HeadAngle))
	}
	if cfg.HeadFraction < 0 || cfg.HeadFraction > 1 {
		err = multierr.Append(err, utils.NewInvalidConfigError("head fraction must be in [0, 1], got %v", cfg.HeadFraction))
	}
	if cfg.LineWidth <= 0 {
		err = multierr.Append(err, utils.NewInvalidConfigError("line width must be positive, got %v", cfg.LineWidth))
	}
	return err
}

// Renderer draws descriptors. It is safe for concurrent use.
type Renderer struct {
	cfg    Config
	style  rimage.ArrowStyle
	logger logging.Logger
}

// NewRenderer validates cfg and returns a renderer for it.
func NewRenderer(cfg Config, logger logging.Logger) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("glyph")
	}
	return &Renderer{
		cfg: cfg,
		style: rimage.ArrowStyle{
			HeadAngle:    utils.DegToRad(cfg.HeadAngle),
			HeadFraction: cfg.HeadFraction,
			LineWidth:    cfg.LineWidth,
		},
		logger: logger,
	}, nil
}

// Config returns the renderer's config.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render draws the grid's descriptor over its intensity image.
func (r *Renderer) Render(g *hog.Grid) (image.Image, error) {
	return r.RenderDescriptor(g.Descriptor(), g.Intensity().ToGray())
}

// RenderDescriptor draws d over background, which is stretched to DimX*CellSize by
// DimY*CellSize. For every cell the top left pixel is set to the arrow color and each bin
// becomes an arrow from that corner at the bin's angle, scaled by the bin's share of the
// cell's largest mass.
func (r *Renderer) RenderDescriptor(d *hog.Descriptor, background image.Image) (image.Image, error) {
	if d.Empty() {
		return nil, utils.NewInvalidInputError("descriptor has no cells (%dx%d)", d.DimX, d.DimY)
	}
	size := r.cfg.CellSize
	width, height := d.DimX*size, d.DimY*size
	r.logger.Debugw("rendering", "width", width, "height", height, "cells", len(d.Histograms))

	dc := gg.NewContext(width, height)
	if background != nil {
		dc.DrawImage(resize.Resize(uint(width), uint(height), background, resize.Bilinear), 0, 0)
	}

	if r.cfg.Outline {
		for y := 0; y < d.DimY; y++ {
			for x := 0; x < d.DimX; x++ {
				cell := image.Rect(x*size, y*size, (x+1)*size, (y+1)*size)
				rimage.DrawRectangleEmpty(dc, cell, r.cfg.OutlineColor, r.cfg.LineWidth)
			}
		}
	}

	for y := 0; y < d.DimY; y++ {
		for x := 0; x < d.DimX; x++ {
			start := image.Point{x * size, y * size}
			dc.SetColor(r.cfg.Color)
			dc.SetPixel(start.X, start.Y)

			hist, err := d.Histogram(x, y)
			if err != nil {
				return nil, err
			}
			maxMass := 0.
			for _, m := range hist {
				maxMass = math.Max(maxMass, m)
			}
			if maxMass == 0 {
				continue
			}
			for bin, mass := range hist {
				rimage.DrawArrow(dc, start, d.BinAngles[bin], mass/maxMass*r.cfg.LineRadius, r.cfg.Color, r.style)
			}
		}
	}

	if r.cfg.Caption {
		mode := "unsigned"
		if !d.IgnoreSign {
			mode = "signed"
		}
		caption := fmt.Sprintf("%dx%d cells of %dx%d, %d %s bins",
			d.DimX, d.DimY, d.CellWidth, d.CellHeight, d.NumBins, mode)
		rimage.DrawString(dc, caption, image.Point{2, 2}, r.cfg.Color, 12)
	}
	return dc.Image(), nil
}
