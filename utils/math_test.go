package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90.)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestClamp(t *testing.T) {
	test.That(t, ClampF64(-0.5, 0, 1), test.ShouldEqual, 0.)
	test.That(t, ClampF64(0.25, 0, 1), test.ShouldEqual, 0.25)
	test.That(t, ClampF64(3, 0, 1), test.ShouldEqual, 1.)
	test.That(t, ClampInt(-4, 0, 255), test.ShouldEqual, 0)
	test.That(t, ClampInt(300, 0, 255), test.ShouldEqual, 255)
	test.That(t, ClampInt(12, 0, 255), test.ShouldEqual, 12)
}

func TestIsFinite(t *testing.T) {
	test.That(t, IsFinite(1.5), test.ShouldBeTrue)
	test.That(t, IsFinite(math.NaN()), test.ShouldBeFalse)
	test.That(t, IsFinite(math.Inf(-1)), test.ShouldBeFalse)
}
