package rimage

import (
	"image"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/hogview/utils"
)

// BorderPad selects how samples outside of an image are synthesized during convolution.
type BorderPad int

const (
	// BorderConstant pads with zeros.
	BorderConstant BorderPad = iota
	// BorderReplicate repeats the nearest edge sample: aaa|abcd|ddd.
	BorderReplicate
	// BorderReflect mirrors around the edge sample without repeating it: cb|abcd|cb.
	BorderReflect
)

func (b BorderPad) String() string {
	switch b {
	case BorderConstant:
		return "constant"
	case BorderReplicate:
		return "replicate"
	case BorderReflect:
		return "reflect"
	}
	return "unknown"
}

// Kernel is a convolution matrix. Content is indexed [row][column].
type Kernel struct {
	Content [][]float64
	Width   int
	Height  int
}

// NewKernel builds a kernel from rectangular content.
func NewKernel(content [][]float64) (*Kernel, error) {
	if len(content) == 0 || len(content[0]) == 0 {
		return nil, errors.New("kernel must not be empty")
	}
	width := len(content[0])
	for _, row := range content {
		if len(row) != width {
			return nil, errors.New("kernel rows must all have the same length")
		}
	}
	return &Kernel{Content: content, Width: width, Height: len(content)}, nil
}

// GetDerivativeX returns the 1x3 centered difference kernel [-1, 0, 1].
func GetDerivativeX() *Kernel {
	return &Kernel{[][]float64{{-1, 0, 1}}, 3, 1}
}

// GetDerivativeY returns the 3x1 centered difference kernel [-1, 0, 1] transposed.
func GetDerivativeY() *Kernel {
	return &Kernel{[][]float64{{-1}, {0}, {1}}, 1, 3}
}

// GetSobelX returns the Kernel corresponding to the Sobel kernel in the x direction.
func GetSobelX() *Kernel {
	return &Kernel{[][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	},
		3,
		3,
	}
}

// GetSobelY returns the Kernel corresponding to the Sobel kernel in the y direction.
func GetSobelY() *Kernel {
	return &Kernel{[][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	},
		3,
		3,
	}
}

// At returns the kernel weight at column x, row y.
func (k *Kernel) At(x, y int) float64 {
	return k.Content[y][x]
}

// Size returns the kernel width and height as a point.
func (k *Kernel) Size() image.Point {
	return image.Point{k.Width, k.Height}
}

// Center returns the default anchor of the kernel.
func (k *Kernel) Center() image.Point {
	return image.Point{k.Width / 2, k.Height / 2}
}

// borderIndex maps a possibly out of range index onto [0, n) following the border policy.
// ok is false when the sample should be the constant zero.
func borderIndex(i, n int, border BorderPad) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch border {
	case BorderReplicate:
		return utils.ClampInt(i, 0, n-1), true
	case BorderReflect:
		if n == 1 {
			return 0, true
		}
		period := 2 * (n - 1)
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - i
		}
		return i, true
	case BorderConstant:
		return 0, false
	}
	return 0, false
}

// PaddingFloat64 returns a copy of m grown so that a kernel of kernelSize anchored at anchor
// can be applied at every input position. Added samples follow the border policy.
func PaddingFloat64(m *mat.Dense, kernelSize, anchor image.Point, border BorderPad) (*mat.Dense, error) {
	if !anchor.In(image.Rectangle{Max: kernelSize}) {
		return nil, errors.Errorf("anchor %v is outside of a %v kernel", anchor, kernelSize)
	}
	rows, cols := m.Dims()
	paddedRows, paddedCols := rows+kernelSize.Y-1, cols+kernelSize.X-1
	padded := mat.NewDense(paddedRows, paddedCols, nil)
	for py := 0; py < paddedRows; py++ {
		y, yOk := borderIndex(py-anchor.Y, rows, border)
		for px := 0; px < paddedCols; px++ {
			x, xOk := borderIndex(px-anchor.X, cols, border)
			if yOk && xOk {
				padded.Set(py, px, m.At(y, x))
			}
		}
	}
	return padded, nil
}

// ConvolveFloat64 applies kernel to m without flipping it, so the output at (x, y) is
// sum(kernel(kx, ky) * m(x + kx - anchor.X, y + ky - anchor.Y)). There is no clamping and the
// output has the size of m.
func ConvolveFloat64(m *mat.Dense, kernel *Kernel, anchor image.Point, border BorderPad) (*mat.Dense, error) {
	return convolveFloat64(m, kernel, anchor, border, false)
}

// ConvolveFloat64Parallel is ConvolveFloat64 with the output pixels spread over
// goroutines. Each output sample is computed identically, so the result matches
// ConvolveFloat64 exactly.
func ConvolveFloat64Parallel(m *mat.Dense, kernel *Kernel, anchor image.Point, border BorderPad) (*mat.Dense, error) {
	return convolveFloat64(m, kernel, anchor, border, true)
}

func convolveFloat64(m *mat.Dense, kernel *Kernel, anchor image.Point, border BorderPad, parallel bool) (*mat.Dense, error) {
	if m == nil || m.IsEmpty() {
		return nil, utils.NewInvalidInputError("cannot convolve an empty matrix")
	}
	h, w := m.Dims()
	kernelSize := kernel.Size()
	padded, err := PaddingFloat64(m, kernelSize, anchor, border)
	if err != nil {
		return nil, err
	}
	result := mat.NewDense(h, w, nil)
	apply := func(x, y int) {
		sum := float64(0)
		for ky := 0; ky < kernelSize.Y; ky++ {
			for kx := 0; kx < kernelSize.X; kx++ {
				sum += padded.At(y+ky, x+kx) * kernel.At(kx, ky)
			}
		}
		result.Set(y, x, sum)
	}
	if parallel {
		utils.ParallelForEachPixel(image.Point{w, h}, apply)
		return result, nil
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			apply(x, y)
		}
	}
	return result, nil
}
