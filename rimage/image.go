package rimage

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/hogview/utils"
)

// Luma weights used to reduce colour samples to a single intensity channel.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Float64Image is a rectangular array of float64 samples with one or more channels per
// pixel. Samples are stored interleaved; the sample (x, y, c) lives at
// ((y * width) + x) * channels + c.
type Float64Image struct {
	width, height, channels int
	data                    []float64
}

// NewFloat64Image returns a zeroed image of the given size.
func NewFloat64Image(width, height, channels int) *Float64Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if channels < 1 {
		channels = 1
	}
	return &Float64Image{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]float64, width*height*channels),
	}
}

// NewFloat64ImageFromSlice wraps data, which must hold exactly width*height*channels samples.
func NewFloat64ImageFromSlice(width, height, channels int, data []float64) (*Float64Image, error) {
	if width <= 0 || height <= 0 {
		return nil, utils.NewInvalidInputError("image must have a positive size, got %dx%d", width, height)
	}
	if channels < 1 {
		return nil, utils.NewInvalidInputError("image must have at least one channel, got %d", channels)
	}
	if len(data) != width*height*channels {
		return nil, utils.NewInvalidInputError(
			"expected %d samples for a %dx%dx%d image, got %d", width*height*channels, width, height, channels, len(data))
	}
	return &Float64Image{width: width, height: height, channels: channels, data: data}, nil
}

// NewFloat64ImageFromDense copies a single-channel image out of a matrix whose rows are
// image rows.
func NewFloat64ImageFromDense(m *mat.Dense) *Float64Image {
	rows, cols := m.Dims()
	img := NewFloat64Image(cols, rows, 1)
	for y := 0; y < rows; y++ {
		mat.Row(img.data[y*cols:(y+1)*cols], y, m)
	}
	return img
}

// NewFloat64ImageFromImage converts img into a three channel (R, G, B) image with samples
// in [0, 1]. Alpha is dropped.
func NewFloat64ImageFromImage(img image.Image) *Float64Image {
	bounds := img.Bounds()
	out := NewFloat64Image(bounds.Dx(), bounds.Dy(), 3)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			c := color.NRGBA64Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
			k := out.k(x, y)
			out.data[k] = float64(c.R) / 0xffff
			out.data[k+1] = float64(c.G) / 0xffff
			out.data[k+2] = float64(c.B) / 0xffff
		}
	}
	return out
}

// ConvertToFloat64Gray converts any image into a single channel intensity image with
// samples in [0, 1]. Gray images are read directly. 16-bit colour images keep their full
// precision through a luma conversion; everything else is reduced to 8-bit gray first.
func ConvertToFloat64Gray(img image.Image) (*Float64Image, error) {
	if img == nil {
		return nil, utils.NewInvalidInputError("nil image")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, utils.NewInvalidInputError("empty image %v", bounds)
	}
	out := NewFloat64Image(bounds.Dx(), bounds.Dy(), 1)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < out.height; y++ {
			for x := 0; x < out.width; x++ {
				out.data[out.kxy(x, y)] = float64(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y) / 0xff
			}
		}
	case *image.Gray16:
		for y := 0; y < out.height; y++ {
			for x := 0; x < out.width; x++ {
				out.data[out.kxy(x, y)] = float64(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y) / 0xffff
			}
		}
	case *image.RGBA64, *image.NRGBA64:
		for y := 0; y < out.height; y++ {
			for x := 0; x < out.width; x++ {
				c := color.NRGBA64Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
				luma := lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B)
				out.data[out.kxy(x, y)] = utils.ClampF64(luma/0xffff, 0, 1)
			}
		}
	default:
		gray := imaging.Grayscale(img)
		for y := 0; y < out.height; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+out.width*4]
			for x := 0; x < out.width; x++ {
				out.data[out.kxy(x, y)] = float64(row[x*4]) / 0xff
			}
		}
	}
	return out, nil
}

func (f *Float64Image) kxy(x, y int) int {
	return (y * f.width) + x
}

func (f *Float64Image) k(x, y int) int {
	return f.kxy(x, y) * f.channels
}

// Width returns the number of columns.
func (f *Float64Image) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Float64Image) Height() int {
	return f.height
}

// Channels returns the number of samples per pixel.
func (f *Float64Image) Channels() int {
	return f.channels
}

// Bounds returns the image rectangle anchored at the origin.
func (f *Float64Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// Empty is true when the image has no pixels.
func (f *Float64Image) Empty() bool {
	return f == nil || f.width == 0 || f.height == 0
}

// In reports whether (x, y) is inside the image.
func (f *Float64Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// At returns the sample of channel c at (x, y).
func (f *Float64Image) At(x, y, c int) float64 {
	return f.data[f.k(x, y)+c]
}

// Set stores the sample of channel c at (x, y).
func (f *Float64Image) Set(x, y, c int, v float64) {
	f.data[f.k(x, y)+c] = v
}

// Plane copies channel c into a matrix with one row per image row.
func (f *Float64Image) Plane(c int) *mat.Dense {
	plane := make([]float64, f.width*f.height)
	for i := range plane {
		plane[i] = f.data[i*f.channels+c]
	}
	return mat.NewDense(f.height, f.width, plane)
}

// Gray returns a single channel version of the image. One channel images are copied, three
// and four channel images are reduced with luma weights (alpha is ignored).
func (f *Float64Image) Gray() (*Float64Image, error) {
	if f.Empty() {
		return nil, utils.NewInvalidInputError("empty image")
	}
	out := NewFloat64Image(f.width, f.height, 1)
	switch f.channels {
	case 1:
		copy(out.data, f.data)
	case 3, 4:
		for i := range out.data {
			k := i * f.channels
			out.data[i] = lumaR*f.data[k] + lumaG*f.data[k+1] + lumaB*f.data[k+2]
		}
	default:
		return nil, utils.NewInvalidInputError("cannot convert a %d channel image to gray", f.channels)
	}
	return out, nil
}

// ToGray renders channel 0 as an 8-bit gray picture, clamping samples to [0, 1].
func (f *Float64Image) ToGray() *image.Gray {
	img := image.NewGray(f.Bounds())
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			v := utils.ClampF64(f.At(x, y, 0), 0, 1)
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}
