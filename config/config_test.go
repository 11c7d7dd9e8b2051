package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/hogview/hog"
	"go.viam.com/hogview/logging"
	"go.viam.com/hogview/rimage"
	"go.viam.com/hogview/utils"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Validate(""), test.ShouldBeNil)
	test.That(t, cfg.HOGConfig(), test.ShouldResemble, hog.DefaultConfig())

	render, err := cfg.RenderConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, render.CellSize, test.ShouldEqual, 20)
	test.That(t, render.LineRadius, test.ShouldEqual, 20.)
	test.That(t, render.Color, test.ShouldResemble, rimage.White)

	level, err := cfg.Level()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, level, test.ShouldEqual, logging.INFO)
}

func TestFromReader(t *testing.T) {
	cfg, err := FromReader("inline", strings.NewReader(`{
		// json5 allows comments
		cell: {width: 16, height: 12},
		bins: {count: 18, ignore_sign: false},
		render: {color: "#00ff00", caption: true, outline: true,},
		parallel: true,
		log_level: "debug",
	}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.HOGConfig(), test.ShouldResemble, hog.Config{CellWidth: 16, CellHeight: 12, NumBins: 18})
	test.That(t, cfg.Parallel, test.ShouldBeTrue)

	render, err := cfg.RenderConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, render.Color, test.ShouldResemble, rimage.NewColor(0, 255, 0))
	test.That(t, render.Caption, test.ShouldBeTrue)
	test.That(t, render.Outline, test.ShouldBeTrue)
	test.That(t, render.OutlineColor, test.ShouldResemble, rimage.Red)
	// untouched fields keep their defaults
	test.That(t, render.CellSize, test.ShouldEqual, 20)
	test.That(t, render.HeadFraction, test.ShouldEqual, 0.3)

	level, err := cfg.Level()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, level, test.ShouldEqual, logging.DEBUG)
}

func TestValidate(t *testing.T) {
	_, err := FromReader("bad", strings.NewReader(`{cell: {width: 0, height: -1}, bins: {count: 0}, log_level: "loud"}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, utils.ErrInvalidConfig), test.ShouldBeTrue)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 4)
	test.That(t, err.Error(), test.ShouldContainSubstring, "width must be positive, got 0")
	test.That(t, err.Error(), test.ShouldContainSubstring, "count must be at least 1")
	test.That(t, err.Error(), test.ShouldContainSubstring, "log_level")

	cfg := Default()
	cfg.Render.Color = "white"
	err = cfg.Validate("hogview")
	test.That(t, errors.Is(err, utils.ErrInvalidConfig), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "hogview.render")

	cfg = Default()
	cfg.Render.HeadAngleDeg = 120
	test.That(t, cfg.Validate(""), test.ShouldNotBeNil)

	_, err = FromReader("broken", strings.NewReader(`{cell: `))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "broken")
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hogview.json5")
	test.That(t, os.WriteFile(path, []byte(`{cell: {width: ${HOGVIEW_TEST_CELL}, height: 4}}`), 0o600), test.ShouldBeNil)

	t.Setenv("HOGVIEW_TEST_CELL", "6")
	cfg, err := Read(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Cell.Width, test.ShouldEqual, 6)
	test.That(t, cfg.Cell.Height, test.ShouldEqual, 4)

	_, err = Read(filepath.Join(dir, "missing.json5"))
	test.That(t, err, test.ShouldNotBeNil)
}
