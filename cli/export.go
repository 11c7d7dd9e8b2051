package cli

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"go.viam.com/hogview/export"
)

const stdoutPath = "-"

func (r *runner) exportAction(c *cli.Context) error {
	paths, err := requireArgs(c, "at least one IMAGE")
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(c.String(exportFlagFormat))
	if err != nil {
		return err
	}
	outDir := c.String(exportFlagOut)
	if outDir != stdoutPath {
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return errors.Wrapf(err, "creating output directory %q", outDir)
		}
	}
	jobs := c.Int(exportFlagJobs)
	if jobs < 1 {
		return errors.Errorf("--%s must be at least 1, got %d", exportFlagJobs, jobs)
	}

	encoded := make([]bytes.Buffer, len(paths))
	var group errgroup.Group
	group.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			g, _, err := r.buildGrid(path)
			if err != nil {
				return err
			}
			if err := export.Write(&encoded[i], g.Descriptor(), format); err != nil {
				return errors.Wrapf(err, "exporting %q", path)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if outDir == stdoutPath {
			if _, err := encoded[i].WriteTo(r.out); err != nil {
				return err
			}
			continue
		}
		outPath := filepath.Join(outDir, stem(path)+format.Extension())
		if err := os.WriteFile(outPath, encoded[i].Bytes(), 0o640); err != nil {
			return errors.Wrapf(err, "writing %q", outPath)
		}
		r.logger.Infow("exported descriptor", "image", path, "out", outPath, "format", string(format))
	}
	return nil
}
