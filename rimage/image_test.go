package rimage

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"go.viam.com/test"

	"go.viam.com/hogview/utils"
)

func TestNewFloat64ImageFromSlice(t *testing.T) {
	img, err := NewFloat64ImageFromSlice(2, 3, 1, []float64{1, 2, 3, 4, 5, 6})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.Width(), test.ShouldEqual, 2)
	test.That(t, img.Height(), test.ShouldEqual, 3)
	test.That(t, img.Channels(), test.ShouldEqual, 1)
	test.That(t, img.At(1, 2, 0), test.ShouldEqual, 6.)
	test.That(t, img.Bounds(), test.ShouldResemble, image.Rect(0, 0, 2, 3))
	test.That(t, img.In(1, 2), test.ShouldBeTrue)
	test.That(t, img.In(2, 0), test.ShouldBeFalse)

	_, err = NewFloat64ImageFromSlice(2, 3, 1, []float64{1})
	test.That(t, errors.Is(err, utils.ErrInvalidInput), test.ShouldBeTrue)
	_, err = NewFloat64ImageFromSlice(0, 3, 1, nil)
	test.That(t, errors.Is(err, utils.ErrInvalidInput), test.ShouldBeTrue)
	_, err = NewFloat64ImageFromSlice(1, 1, 0, []float64{1})
	test.That(t, errors.Is(err, utils.ErrInvalidInput), test.ShouldBeTrue)
}

func TestFloat64ImagePlane(t *testing.T) {
	img, err := NewFloat64ImageFromSlice(2, 2, 3, []float64{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.Equal(img.Plane(1), mat.NewDense(2, 2, []float64{2, 5, 8, 11})), test.ShouldBeTrue)

	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	back := NewFloat64ImageFromDense(m)
	test.That(t, back.Width(), test.ShouldEqual, 3)
	test.That(t, back.At(2, 1, 0), test.ShouldEqual, 6.)
	test.That(t, mat.Equal(back.Plane(0), m), test.ShouldBeTrue)
}

func TestFloat64ImageGray(t *testing.T) {
	img := NewFloat64Image(2, 1, 3)
	img.Set(0, 0, 0, 1)
	img.Set(1, 0, 2, 1)
	gray, err := img.Gray()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gray.Channels(), test.ShouldEqual, 1)
	test.That(t, gray.At(0, 0, 0), test.ShouldAlmostEqual, 0.299)
	test.That(t, gray.At(1, 0, 0), test.ShouldAlmostEqual, 0.114)

	_, err = NewFloat64Image(2, 2, 2).Gray()
	test.That(t, errors.Is(err, utils.ErrInvalidInput), test.ShouldBeTrue)
	_, err = NewFloat64Image(0, 0, 1).Gray()
	test.That(t, errors.Is(err, utils.ErrInvalidInput), test.ShouldBeTrue)
}

func TestConvertToFloat64Gray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	g.SetGray(1, 1, color.Gray{Y: 51})
	g.SetGray(3, 3, color.Gray{Y: 255})
	img, err := ConvertToFloat64Gray(g)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.At(1, 1, 0), test.ShouldAlmostEqual, 0.2)
	test.That(t, img.At(3, 3, 0), test.ShouldEqual, 1.)

	// sub images are re-anchored at the origin
	sub, err := ConvertToFloat64Gray(g.SubImage(image.Rect(1, 1, 4, 4)))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sub.Width(), test.ShouldEqual, 3)
	test.That(t, sub.At(0, 0, 0), test.ShouldAlmostEqual, 0.2)

	g16 := image.NewGray16(image.Rect(0, 0, 1, 1))
	g16.SetGray16(0, 0, color.Gray16{Y: 0xffff})
	img, err = ConvertToFloat64Gray(g16)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.At(0, 0, 0), test.ShouldEqual, 1.)

	img, err = ConvertToFloat64Gray(checkerboard(4, 4))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.At(0, 0, 0), test.ShouldEqual, 1.)
	test.That(t, img.At(2, 0, 0), test.ShouldEqual, 0.)

	_, err = ConvertToFloat64Gray(nil)
	test.That(t, errors.Is(err, utils.ErrInvalidInput), test.ShouldBeTrue)
	_, err = ConvertToFloat64Gray(image.NewGray(image.Rectangle{}))
	test.That(t, errors.Is(err, utils.ErrInvalidInput), test.ShouldBeTrue)
}

func TestConvertToFloat64GrayKeeps16Bits(t *testing.T) {
	rgba64 := image.NewRGBA64(image.Rect(0, 0, 2, 1))
	rgba64.SetRGBA64(0, 0, color.RGBA64{0x1234, 0x1234, 0x1234, 0xffff})
	nrgba64 := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	nrgba64.SetNRGBA64(0, 0, color.NRGBA64{0x1234, 0x1234, 0x1234, 0xffff})
	nrgba64.SetNRGBA64(1, 0, color.NRGBA64{0xffff, 0, 0, 0xffff})

	for _, img := range []image.Image{rgba64, nrgba64} {
		gray, err := ConvertToFloat64Gray(img)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, gray.At(0, 0, 0), test.ShouldAlmostEqual, float64(0x1234)/0xffff, 1e-12)
		// an 8-bit path would give 0x12/0xff
		test.That(t, math.Abs(gray.At(0, 0, 0)-float64(0x12)/0xff), test.ShouldBeGreaterThan, 1e-4)
	}

	gray, err := ConvertToFloat64Gray(nrgba64)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gray.At(1, 0, 0), test.ShouldAlmostEqual, lumaR, 1e-12)
}

func TestFloat64ImageToGray(t *testing.T) {
	img, err := NewFloat64ImageFromSlice(3, 1, 1, []float64{-1, 0.5, 2})
	test.That(t, err, test.ShouldBeNil)
	g := img.ToGray()
	test.That(t, g.GrayAt(0, 0).Y, test.ShouldEqual, uint8(0))
	test.That(t, g.GrayAt(1, 0).Y, test.ShouldEqual, uint8(128))
	test.That(t, g.GrayAt(2, 0).Y, test.ShouldEqual, uint8(255))

	rgb := NewFloat64ImageFromImage(checkerboard(2, 2))
	test.That(t, rgb.Channels(), test.ShouldEqual, 3)
	test.That(t, rgb.At(1, 1, 2), test.ShouldEqual, 1.)
}
