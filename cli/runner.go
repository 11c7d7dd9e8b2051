package cli

import (
	"image"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/hogview/config"
	"go.viam.com/hogview/hog"
	"go.viam.com/hogview/logging"
	"go.viam.com/hogview/rimage"
)

// runner holds what every command needs once the global flags are applied.
type runner struct {
	out    io.Writer
	errOut io.Writer
	logger logging.Logger
	cfg    *config.Config
}

// before loads the config file, applies the global flag overrides and sets up logging.
func (r *runner) before(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String(flagConfig); path != "" {
		var err error
		if cfg, err = config.Read(path); err != nil {
			return err
		}
	}

	if c.IsSet(flagCell) {
		width, height, err := parseCellSize(c.String(flagCell))
		if err != nil {
			return err
		}
		cfg.Cell.Width, cfg.Cell.Height = width, height
	}
	if c.IsSet(flagBins) {
		cfg.Bins.Count = c.Int(flagBins)
	}
	if c.IsSet(flagSigned) {
		cfg.Bins.IgnoreSign = !c.Bool(flagSigned)
	}
	if c.IsSet(flagParallel) {
		cfg.Parallel = c.Bool(flagParallel)
	}
	if err := cfg.Validate("hogview"); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.Bool(flagDebug) {
		level = logging.DEBUG
	}
	r.logger = logging.NewBlankLogger("hogview")
	r.logger.AddAppender(logging.NewWriterAppender(r.errOut))
	r.logger.SetLevel(level)
	r.cfg = cfg
	return nil
}

// buildGrid reads an image file and computes its descriptor grid.
func (r *runner) buildGrid(path string) (*hog.Grid, image.Image, error) {
	img, err := rimage.ReadImageFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	r.logger.Debugw("read image", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	g, err := hog.NewGrid(img, r.cfg.HOGConfig(),
		hog.WithLogger(r.logger.Sublogger("hog")),
		hog.WithParallel(r.cfg.Parallel))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "describing %q", path)
	}
	return g, img, nil
}

func requireArgs(c *cli.Context, usage string) ([]string, error) {
	args := c.Args().Slice()
	if len(args) == 0 {
		return nil, errors.Errorf("%s requires %s", c.Command.Name, usage)
	}
	return args, nil
}
