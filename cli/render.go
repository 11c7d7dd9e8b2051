package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/hogview/glyph"
	"go.viam.com/hogview/rimage"
)

func (r *runner) renderAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.Errorf("render requires exactly one IMAGE, got %d", c.Args().Len())
	}
	path := c.Args().First()
	outPath := c.String(renderFlagOut)
	if same, err := samePath(path, outPath); err != nil {
		return err
	} else if same {
		return errors.Errorf("refusing to overwrite input image %q", path)
	}

	glyphCfg, err := r.cfg.RenderConfig()
	if err != nil {
		return err
	}
	if c.IsSet(renderFlagCellSize) {
		glyphCfg.CellSize = c.Int(renderFlagCellSize)
	}
	if c.IsSet(renderFlagLineRadius) {
		glyphCfg.LineRadius = c.Float64(renderFlagLineRadius)
	}
	if c.IsSet(renderFlagCaption) {
		glyphCfg.Caption = c.Bool(renderFlagCaption)
	}
	if c.IsSet(renderFlagOutline) {
		glyphCfg.Outline = c.Bool(renderFlagOutline)
	}
	renderer, err := glyph.NewRenderer(glyphCfg, r.logger.Sublogger("glyph"))
	if err != nil {
		return err
	}

	g, _, err := r.buildGrid(path)
	if err != nil {
		return err
	}
	overlay, err := renderer.Render(g)
	if err != nil {
		return err
	}
	if err := rimage.WriteImageToFile(outPath, overlay); err != nil {
		return err
	}
	printf(r.out, "wrote %s", outPath)

	dir := c.String(renderFlagPanels)
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "creating panel directory %q", dir)
	}
	for _, panel := range glyph.Panels(g) {
		panelPath := filepath.Join(dir, stem(path)+"_"+panel.Name+".png")
		if err := rimage.WriteImageToFile(panelPath, panel.Image); err != nil {
			return err
		}
		printf(r.out, "wrote %s", panelPath)
	}
	return nil
}
