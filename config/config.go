// Package config reads hogview's JSON5 configuration file.
package config

import (
	"fmt"

	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/hogview/glyph"
	"go.viam.com/hogview/hog"
	"go.viam.com/hogview/logging"
	"go.viam.com/hogview/rimage"
	"go.viam.com/hogview/utils"
)

// Config is the top level configuration.
type Config struct {
	Cell     CellConfig   `json:"cell"`
	Bins     BinsConfig   `json:"bins"`
	Render   RenderConfig `json:"render"`
	Parallel bool         `json:"parallel"`
	LogLevel string       `json:"log_level"`
}

// CellConfig is the size of a cell in pixels.
type CellConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BinsConfig describes each cell's histogram.
type BinsConfig struct {
	Count      int  `json:"count"`
	IgnoreSign bool `json:"ignore_sign"`
}

// RenderConfig describes the glyph overlay.
type RenderConfig struct {
	CellSize     int     `json:"cell_size"`
	LineRadius   float64 `json:"line_radius"`
	LineWidth    float64 `json:"line_width"`
	Color        string  `json:"color"`
	HeadAngleDeg float64 `json:"head_angle_deg"`
	HeadFraction float64 `json:"head_fraction"`
	Caption      bool    `json:"caption"`
	Outline      bool    `json:"outline"`
	OutlineColor string  `json:"outline_color"`
}

// Default returns the configuration used when no file is given. Fields missing from a file
// keep these values.
func Default() *Config {
	hogCfg := hog.DefaultConfig()
	glyphCfg := glyph.DefaultConfig()
	return &Config{
		Cell: CellConfig{Width: hogCfg.CellWidth, Height: hogCfg.CellHeight},
		Bins: BinsConfig{Count: hogCfg.NumBins, IgnoreSign: hogCfg.IgnoreSign},
		Render: RenderConfig{
			CellSize:     glyphCfg.CellSize,
			LineRadius:   glyphCfg.LineRadius,
			LineWidth:    glyphCfg.LineWidth,
			Color:        glyphCfg.Color.Hex(),
			HeadAngleDeg: glyphCfg.HeadAngle,
			HeadFraction: glyphCfg.HeadFraction,
			OutlineColor: glyphCfg.OutlineColor.Hex(),
		},
		LogLevel: logging.INFO.String(),
	}
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return fmt.Sprintf("%s.%s", path, field)
}

// Validate ensures all parts of the config are valid.
func (c *Config) Validate(path string) error {
	err := multierr.Combine(
		c.Cell.Validate(joinPath(path, "cell")),
		c.Bins.Validate(joinPath(path, "bins")),
		c.Render.Validate(joinPath(path, "render")),
	)
	if _, levelErr := logging.LevelFromString(c.LogLevel); levelErr != nil {
		err = multierr.Append(err, goutils.NewConfigValidationError(joinPath(path, "log_level"),
			utils.NewInvalidConfigError("%v", levelErr)))
	}
	return err
}

// Validate ensures both dimensions are positive.
func (c *CellConfig) Validate(path string) error {
	var err error
	if c.Width <= 0 {
		err = multierr.Append(err, goutils.NewConfigValidationError(path,
			utils.NewInvalidConfigError("width must be positive, got %d", c.Width)))
	}
	if c.Height <= 0 {
		err = multierr.Append(err, goutils.NewConfigValidationError(path,
			utils.NewInvalidConfigError("height must be positive, got %d", c.Height)))
	}
	return err
}

// Validate ensures there is at least one bin.
func (c *BinsConfig) Validate(path string) error {
	if c.Count < 1 {
		return goutils.NewConfigValidationError(path,
			utils.NewInvalidConfigError("count must be at least 1, got %d", c.Count))
	}
	return nil
}

// Validate ensures the overlay settings can be drawn.
func (c *RenderConfig) Validate(path string) error {
	cfg, err := c.GlyphConfig()
	if err != nil {
		return goutils.NewConfigValidationError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return goutils.NewConfigValidationError(path, err)
	}
	return nil
}

// GlyphConfig converts the section into a renderer config.
func (c *RenderConfig) GlyphConfig() (glyph.Config, error) {
	color, err := rimage.NewColorFromHex(c.Color)
	if err != nil {
		return glyph.Config{}, utils.NewInvalidConfigError("color: %v", err)
	}
	outlineColor, err := rimage.NewColorFromHex(c.OutlineColor)
	if err != nil {
		return glyph.Config{}, utils.NewInvalidConfigError("outline_color: %v", err)
	}
	return glyph.Config{
		CellSize:     c.CellSize,
		LineRadius:   c.LineRadius,
		Color:        color,
		HeadAngle:    c.HeadAngleDeg,
		HeadFraction: c.HeadFraction,
		LineWidth:    c.LineWidth,
		Caption:      c.Caption,
		Outline:      c.Outline,
		OutlineColor: outlineColor,
	}, nil
}

// HOGConfig returns the descriptor settings.
func (c *Config) HOGConfig() hog.Config {
	return hog.Config{
		CellWidth:  c.Cell.Width,
		CellHeight: c.Cell.Height,
		NumBins:    c.Bins.Count,
		IgnoreSign: c.Bins.IgnoreSign,
	}
}

// RenderConfig returns the overlay settings.
func (c *Config) RenderConfig() (glyph.Config, error) {
	return c.Render.GlyphConfig()
}

// Level returns the configured log level.
func (c *Config) Level() (logging.Level, error) {
	return logging.LevelFromString(c.LogLevel)
}
