package hog

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/hogview/utils"
)

func TestConfigValidate(t *testing.T) {
	test.That(t, DefaultConfig().Validate(), test.ShouldBeNil)
	test.That(t, DefaultConfig().IgnoreSign, test.ShouldBeTrue)

	err := Config{CellWidth: 0, CellHeight: 1, NumBins: 0}.Validate()
	test.That(t, errors.Is(err, utils.ErrInvalidConfig), test.ShouldBeTrue)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cell dimensions must be positive, got (0, 1)")

	cfg := Config{CellWidth: 4, CellHeight: 4}.withDefaults()
	test.That(t, cfg.NumBins, test.ShouldEqual, DefaultNumBins)
	test.That(t, cfg.Validate(), test.ShouldBeNil)
}
