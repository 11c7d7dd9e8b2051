package rimage

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/hogview/utils"
)

// GradientField holds the horizontal and vertical centered differences of a single channel
// image. Both planes have the size of the source image, rows first.
type GradientField struct {
	Horizontal *mat.Dense
	Vertical   *mat.Dense
}

// ComputeGradientField correlates img with [-1, 0, 1] along rows and along columns. Samples
// beyond the border take the value of the nearest edge sample, so on the first column
// h = I(1, y) - I(0, y) and a one pixel wide image has h = 0 everywhere.
func ComputeGradientField(img *Float64Image) (*GradientField, error) {
	return computeGradientField(img, false)
}

// ComputeGradientFieldParallel is ComputeGradientField with the convolutions spread over
// goroutines. The result is identical.
func ComputeGradientFieldParallel(img *Float64Image) (*GradientField, error) {
	return computeGradientField(img, true)
}

func computeGradientField(img *Float64Image, parallel bool) (*GradientField, error) {
	if img.Empty() {
		return nil, utils.NewInvalidInputError("cannot compute gradients of an empty image")
	}
	if img.Channels() != 1 {
		return nil, utils.NewInvalidInputError("gradients need a single channel image, got %d channels", img.Channels())
	}
	plane := img.Plane(0)
	kx, ky := GetDerivativeX(), GetDerivativeY()
	h, err := convolveFloat64(plane, kx, kx.Center(), BorderReplicate, parallel)
	if err != nil {
		return nil, err
	}
	v, err := convolveFloat64(plane, ky, ky.Center(), BorderReplicate, parallel)
	if err != nil {
		return nil, err
	}
	return &GradientField{Horizontal: h, Vertical: v}, nil
}

// Width returns the number of columns of the field.
func (gf *GradientField) Width() int {
	_, c := gf.Horizontal.Dims()
	return c
}

// Height returns the number of rows of the field.
func (gf *GradientField) Height() int {
	r, _ := gf.Horizontal.Dims()
	return r
}

// HorizontalPicture renders the horizontal gradient stretched from its minimum to its maximum.
func (gf *GradientField) HorizontalPicture() *image.Gray {
	return stretchedPicture(gf.Horizontal)
}

// VerticalPicture renders the vertical gradient stretched from its minimum to its maximum.
func (gf *GradientField) VerticalPicture() *image.Gray {
	return stretchedPicture(gf.Vertical)
}

// OrientationMap holds per pixel gradient angles in (-pi, pi] and magnitudes >= 0.
type OrientationMap struct {
	Orientation *mat.Dense
	Magnitude   *mat.Dense
}

// ComputeOrientationMap converts a gradient field to polar form with
// angle = atan2(v, h) and magnitude = hypot(h, v).
func ComputeOrientationMap(gf *GradientField) (*OrientationMap, error) {
	return computeOrientationMap(gf, false)
}

// ComputeOrientationMapParallel is ComputeOrientationMap spread over goroutines.
func ComputeOrientationMapParallel(gf *GradientField) (*OrientationMap, error) {
	return computeOrientationMap(gf, true)
}

func computeOrientationMap(gf *GradientField, parallel bool) (*OrientationMap, error) {
	if gf == nil || gf.Horizontal == nil || gf.Vertical == nil {
		return nil, utils.NewInvalidInputError("nil gradient field")
	}
	hr, hc := gf.Horizontal.Dims()
	vr, vc := gf.Vertical.Dims()
	if hr != vr || hc != vc {
		return nil, utils.NewInvalidInputError(
			"gradient planes differ in size (%d,%d) vs (%d,%d)", hc, hr, vc, vr)
	}
	orientation := mat.NewDense(hr, hc, nil)
	magnitude := mat.NewDense(hr, hc, nil)
	apply := func(x, y int) {
		h, v := gf.Horizontal.At(y, x), gf.Vertical.At(y, x) // in mat.Dense, indexing is (row, column)
		orientation.Set(y, x, math.Atan2(v, h))
		magnitude.Set(y, x, math.Hypot(h, v))
	}
	if parallel {
		utils.ParallelForEachPixel(image.Point{hc, hr}, apply)
	} else {
		for y := 0; y < hr; y++ {
			for x := 0; x < hc; x++ {
				apply(x, y)
			}
		}
	}
	return &OrientationMap{Orientation: orientation, Magnitude: magnitude}, nil
}

// Width returns the number of columns of the map.
func (om *OrientationMap) Width() int {
	_, c := om.Magnitude.Dims()
	return c
}

// Height returns the number of rows of the map.
func (om *OrientationMap) Height() int {
	r, _ := om.Magnitude.Dims()
	return r
}

// MaxMagnitude returns the largest magnitude in the map.
func (om *OrientationMap) MaxMagnitude() float64 {
	return mat.Max(om.Magnitude)
}

// MagnitudePicture creates a picture of the gradient magnitudes scaled so that the strongest
// one is white.
func (om *OrientationMap) MagnitudePicture() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, om.Width(), om.Height()))
	maxMag := om.MaxMagnitude()
	if maxMag <= 0 {
		return img
	}
	for y := 0; y < om.Height(); y++ {
		for x := 0; x < om.Width(); x++ {
			img.SetGray(x, y, color.Gray{Y: grayLevel(om.Magnitude.At(y, x) / maxMag)})
		}
	}
	return img
}

// OrientationPicture renders orientation / pi, clamped to [0, 1]. Angles in (-pi, 0) are
// black.
func (om *OrientationMap) OrientationPicture() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, om.Width(), om.Height()))
	for y := 0; y < om.Height(); y++ {
		for x := 0; x < om.Width(); x++ {
			img.SetGray(x, y, color.Gray{Y: grayLevel(om.Orientation.At(y, x) / math.Pi)})
		}
	}
	return img
}

// DirectionPicture creates a picture of the direction that the gradients point to, with
// the angle as hue. Pixels without gradient stay black.
func (om *OrientationMap) DirectionPicture() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, om.Width(), om.Height()))
	for y := 0; y < om.Height(); y++ {
		for x := 0; x < om.Width(); x++ {
			if om.Magnitude.At(y, x) == 0 {
				continue
			}
			deg := utils.RadToDeg(radZeroTo2Pi(om.Orientation.At(y, x)))
			img.Set(x, y, NewColorFromHSV(deg, 1, 1))
		}
	}
	return img
}

// changes the radians from between -pi,pi to 0,2pi.
func radZeroTo2Pi(rad float64) float64 {
	if rad < 0. {
		rad += 2. * math.Pi
	}
	return rad
}

func grayLevel(v float64) uint8 {
	return uint8(utils.ClampF64(v, 0, 1)*255 + 0.5)
}

func stretchedPicture(m *mat.Dense) *image.Gray {
	rows, cols := m.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	raw := m.RawMatrix()
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < rows; y++ {
		row := raw.Data[y*raw.Stride : y*raw.Stride+cols]
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}
	if hi <= lo {
		return img
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.SetGray(x, y, color.Gray{Y: grayLevel((m.At(y, x) - lo) / (hi - lo))})
		}
	}
	return img
}
