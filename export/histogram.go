package export

import (
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/hogview/hog"
)

// WriteMassHistogram prints a text histogram of per cell total mass with the given number
// of buckets, each bar at most width runes long. Nothing is printed for an empty
// descriptor.
func WriteMassHistogram(w io.Writer, d *hog.Descriptor, buckets, width int) error {
	if d.Empty() {
		return nil
	}
	mass := make([]float64, len(d.Histograms))
	for i, h := range d.Histograms {
		mass[i] = floats.Sum(h)
	}
	return histogram.Fprint(w, histogram.Hist(buckets, mass), histogram.Linear(width))
}
