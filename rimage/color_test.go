package rimage

import (
	"testing"

	"go.viam.com/test"
)

func TestNewColorFromHex(t *testing.T) {
	c, err := NewColorFromHex("#ff0000")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.R, test.ShouldEqual, uint8(255))
	test.That(t, c.G, test.ShouldEqual, uint8(0))
	test.That(t, c.H, test.ShouldAlmostEqual, 0.)
	test.That(t, c.Hex(), test.ShouldEqual, "#ff0000")
	test.That(t, c, test.ShouldResemble, Red)

	c, err = NewColorFromHex("#0f0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c, test.ShouldResemble, NewColor(0, 255, 0))

	_, err = NewColorFromHex("green")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "green")
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := White.RGBA()
	test.That(t, r, test.ShouldEqual, uint32(0xffff))
	test.That(t, g, test.ShouldEqual, uint32(0xffff))
	test.That(t, b, test.ShouldEqual, uint32(0xffff))
	test.That(t, a, test.ShouldEqual, uint32(0xffff))

	c := NewColorFromHSV(120, 1, 1)
	test.That(t, c.G, test.ShouldEqual, uint8(255))
	test.That(t, c.R, test.ShouldEqual, uint8(0))
}
