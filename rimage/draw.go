package rimage

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

// init sets up the fonts we want to use.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Font returns the font we use for drawing.
func Font() *truetype.Font {
	return font
}

// DrawString writes a string to the given context at a particular point.
func DrawString(dc *gg.Context, text string, p image.Point, c color.Color, size float64) {
	dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))
	dc.SetColor(c)
	dc.DrawStringWrapped(text, float64(p.X), float64(p.Y), 0, 0, float64(dc.Width()), 1, 0)
}

// ArrowStyle controls the head of an arrow. HeadAngle is the angle in radians between the
// shaft and each barb, HeadFraction the barb length as a fraction of the shaft length.
type ArrowStyle struct {
	HeadAngle    float64
	HeadFraction float64
	LineWidth    float64
}

// DefaultArrowStyle has 30 degree barbs that are 30% of the shaft.
var DefaultArrowStyle = ArrowStyle{HeadAngle: math.Pi / 6, HeadFraction: 0.3, LineWidth: 1}

// DrawArrow draws an arrow of the given length from `from` in direction angle (radians,
// image coordinates so positive angles turn towards +y). Zero length arrows are skipped.
func DrawArrow(dc *gg.Context, from image.Point, angle, length float64, c color.Color, style ArrowStyle) {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return
	}
	x0, y0 := float64(from.X), float64(from.Y)
	x1, y1 := x0+length*math.Cos(angle), y0+length*math.Sin(angle)

	dc.SetColor(c)
	dc.SetLineWidth(style.LineWidth)
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()

	barb := length * style.HeadFraction
	if barb <= 0 {
		return
	}
	back := angle + math.Pi
	for _, side := range []float64{-1, 1} {
		a := back + side*style.HeadAngle
		dc.DrawLine(x1, y1, x1+barb*math.Cos(a), y1+barb*math.Sin(a))
		dc.Stroke()
	}
}

// DrawRectangleEmpty draws the given rectangle into the context. The positions of the
// rectangle are used to place it within the context.
func DrawRectangleEmpty(dc *gg.Context, r image.Rectangle, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Stroke()
}
