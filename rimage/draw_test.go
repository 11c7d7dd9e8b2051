package rimage

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/fogleman/gg"
	"go.viam.com/test"
)

func brightness(img image.Image, x, y int) uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return r + g + b
}

func TestDrawArrow(t *testing.T) {
	dc := gg.NewContext(40, 40)
	dc.SetColor(color.Black)
	dc.Clear()
	DrawArrow(dc, image.Point{5, 20}, 0, 30, color.White, DefaultArrowStyle)
	img := dc.Image()

	// the shaft runs along y = 20 to x = 35
	test.That(t, brightness(img, 20, 20), test.ShouldBeGreaterThan, uint32(0))
	test.That(t, brightness(img, 20, 5), test.ShouldEqual, uint32(0))
	// nothing past the tip
	test.That(t, brightness(img, 38, 20), test.ShouldEqual, uint32(0))
}

func TestDrawArrowSkipsEmpty(t *testing.T) {
	dc := gg.NewContext(10, 10)
	DrawArrow(dc, image.Point{5, 5}, 0, 0, color.White, DefaultArrowStyle)
	DrawArrow(dc, image.Point{5, 5}, 0, math.NaN(), color.White, DefaultArrowStyle)
	img := dc.Image()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			test.That(t, a, test.ShouldEqual, uint32(0))
		}
	}
}

func TestDrawString(t *testing.T) {
	dc := gg.NewContext(120, 30)
	DrawString(dc, "hog", image.Point{2, 2}, color.White, 16)
	img := dc.Image()
	lit := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 120; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				lit++
			}
		}
	}
	test.That(t, lit, test.ShouldBeGreaterThan, 0)
	test.That(t, Font(), test.ShouldNotBeNil)
}
