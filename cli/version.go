package cli

import (
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func (r *runner) versionAction(c *cli.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("error reading build info")
	}
	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}
	printf(r.out, "%s %s built with %s", c.App.Name, version, info.GoVersion)
	return nil
}
