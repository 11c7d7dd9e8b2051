// Package cli contains the hogview command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/hogview/utils"
)

const (
	flagConfig   = "config"
	flagDebug    = "debug"
	flagCell     = "cell"
	flagBins     = "bins"
	flagSigned   = "signed"
	flagParallel = "parallel"

	describeFlagCells     = "cells"
	describeFlagHistogram = "histogram"

	renderFlagOut        = "out"
	renderFlagPanels     = "panels"
	renderFlagCellSize   = "cell-size"
	renderFlagLineRadius = "line-radius"
	renderFlagCaption    = "caption"
	renderFlagOutline    = "outline"

	exportFlagFormat = "format"
	exportFlagOut    = "out"
	exportFlagJobs   = "jobs"
)

// NewApp returns the hogview application writing regular output to out and diagnostics to
// errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	r := &runner{out: out, errOut: errOut}
	return &cli.App{
		Name:            "hogview",
		Usage:           "compute and draw histogram of oriented gradients descriptors",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  flagCell,
				Usage: "cell size in pixels as `WxH`",
			},
			&cli.IntFlag{
				Name:  flagBins,
				Usage: "orientation bins per cell",
			},
			&cli.BoolFlag{
				Name:  flagSigned,
				Usage: "bin over the full circle instead of folding opposite directions together",
			},
			&cli.BoolFlag{
				Name:  flagParallel,
				Usage: "spread per pixel work over all CPUs",
			},
		},
		Before: r.before,
		Commands: []*cli.Command{
			{
				Name:      "describe",
				Usage:     "print a summary of the descriptor of each image",
				ArgsUsage: "IMAGE...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  describeFlagCells,
						Usage: "also print every cell's histogram",
					},
					&cli.BoolFlag{
						Name:  describeFlagHistogram,
						Usage: "also print a histogram of per cell mass",
					},
				},
				Action: r.describeAction,
			},
			{
				Name:      "render",
				Usage:     "draw the descriptor of an image as arrows",
				ArgsUsage: "IMAGE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     renderFlagOut,
						Aliases:  []string{"o"},
						Usage:    "write the overlay to `FILE`; the extension picks the format",
						Required: true,
					},
					&cli.StringFlag{
						Name:  renderFlagPanels,
						Usage: "also write the intermediate maps as PNG files into `DIR`",
					},
					&cli.IntFlag{
						Name:  renderFlagCellSize,
						Usage: "pixels per cell in the overlay",
					},
					&cli.Float64Flag{
						Name:  renderFlagLineRadius,
						Usage: "length of the longest arrow of a cell",
					},
					&cli.BoolFlag{
						Name:  renderFlagCaption,
						Usage: "write the grid layout into the overlay",
					},
					&cli.BoolFlag{
						Name:  renderFlagOutline,
						Usage: "draw the border of every cell",
					},
				},
				Action: r.renderAction,
			},
			{
				Name:      "export",
				Usage:     "write descriptors to files or stdout",
				ArgsUsage: "IMAGE...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  exportFlagFormat,
						Usage: "one of json, csv, vector, normalized, binplot, massplot",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    exportFlagOut,
						Aliases: []string{"o"},
						Usage:   "write one file per image into `DIR`, or - for stdout",
						Value:   "-",
					},
					&cli.IntFlag{
						Name:  exportFlagJobs,
						Usage: "images processed at once",
						Value: utils.ParallelFactor,
					},
				},
				Action: r.exportAction,
			},
			{
				Name:   "version",
				Usage:  "print version info for this program",
				Action: r.versionAction,
			},
		},
	}
}
