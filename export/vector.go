package export

import (
	"bufio"
	"io"

	"go.viam.com/hogview/hog"
)

// WriteVector writes the flattened descriptor as space separated numbers on a single line.
// With normalized each cell is divided by its largest mass first.
func WriteVector(w io.Writer, d *hog.Descriptor, normalized bool) error {
	vector := d.Vector()
	if normalized {
		vector = d.NormalizedVector()
	}
	bw := bufio.NewWriter(w)
	for i, v := range vector {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(formatFloat(v)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
