package glyph

import (
	"image"

	"go.viam.com/hogview/hog"
)

// Panel is one named intermediate picture of a grid computation.
type Panel struct {
	Name  string
	Image image.Image
}

// Panels returns the intermediate maps of a grid as pictures, in pipeline order: the
// intensity image, both gradient planes, orientation / pi, magnitude and a hue coded
// direction map.
func Panels(g *hog.Grid) []Panel {
	gradient, orientation := g.Gradient(), g.Orientation()
	return []Panel{
		{"intensity", g.Intensity().ToGray()},
		{"hgrad", gradient.HorizontalPicture()},
		{"vgrad", gradient.VerticalPicture()},
		{"orientation", orientation.OrientationPicture()},
		{"magnitude", orientation.MagnitudePicture()},
		{"direction", orientation.DirectionPicture()},
	}
}
