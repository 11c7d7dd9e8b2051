package hog

import (
	"go.uber.org/multierr"

	"go.viam.com/hogview/utils"
)

const (
	// DefaultNumBins is the bin count used when a Config leaves NumBins unset.
	DefaultNumBins = 9
	// DefaultCellSize is the cell width and height used by DefaultConfig.
	DefaultCellSize = 8
)

// Config describes how an image is partitioned into cells and how each cell bins
// orientations.
type Config struct {
	CellWidth  int
	CellHeight int
	// NumBins defaults to DefaultNumBins when zero.
	NumBins int
	// IgnoreSign folds opposite directions together so bins span [0, pi) rather than
	// [0, 2pi).
	IgnoreSign bool
}

// DefaultConfig returns 8x8 cells with 9 unsigned bins.
func DefaultConfig() Config {
	return Config{
		CellWidth:  DefaultCellSize,
		CellHeight: DefaultCellSize,
		NumBins:    DefaultNumBins,
		IgnoreSign: true,
	}
}

func (cfg Config) withDefaults() Config {
	if cfg.NumBins == 0 {
		cfg.NumBins = DefaultNumBins
	}
	return cfg
}

// Validate returns every problem with the config, each wrapping utils.ErrInvalidConfig.
func (cfg Config) Validate() error {
	var err error
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		err = multierr.Append(err, utils.NewInvalidConfigError(
			"cell dimensions must be positive, got (%d, %d)", cfg.CellWidth, cfg.CellHeight))
	}
	if cfg.NumBins < 1 {
		err = multierr.Append(err, utils.NewInvalidConfigError("bin count must be at least 1, got %d", cfg.NumBins))
	}
	return err
}
