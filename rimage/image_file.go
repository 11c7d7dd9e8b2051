package rimage

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/ppm"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"
	"go.uber.org/multierr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register webp
)

// Format names an image encoding.
type Format string

// The known image formats. Webp is decode-only.
const (
	FormatPNG  = Format("png")
	FormatJPEG = Format("jpeg")
	FormatBMP  = Format("bmp")
	FormatTIFF = Format("tiff")
	FormatPPM  = Format("ppm")
	FormatQOI  = Format("qoi")
	FormatWEBP = Format("webp")
)

// FormatFromPath guesses an image format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".ppm", ".pnm":
		return FormatPPM, nil
	case ".qoi":
		return FormatQOI, nil
	case ".webp":
		return FormatWEBP, nil
	default:
		return "", errors.Errorf("unknown image extension %q", ext)
	}
}

// DecodeImage decodes an image of any registered format from r.
func DecodeImage(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", errors.Wrap(err, "cannot decode image")
	}
	return img, Format(name), nil
}

// ReadImageFromFile decodes the image stored at path.
func ReadImageFromFile(path string) (image.Image, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := DecodeImage(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return img, nil
}

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPPM:
		return ppm.Encode(w, toRGBA(img))
	case FormatQOI:
		return qoi.Encode(w, img)
	case FormatWEBP:
		return errors.New("webp encoding is not supported")
	default:
		return errors.Errorf("unknown image format %q", format)
	}
}

// WriteImageToFile encodes img into path using the format implied by its extension.
func WriteImageToFile(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	//nolint:gosec
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()

	w := bufio.NewWriter(f)
	if err := EncodeImage(w, img, format); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return w.Flush()
}

// toRGBA returns img itself when it already uses the RGBA model, otherwise an RGBA copy.
func toRGBA(img image.Image) image.Image {
	if img.ColorModel() == color.RGBAModel {
		return img
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
