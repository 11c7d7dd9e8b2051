package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"go.viam.com/hogview/hog"
)

// WriteCSV writes one row per cell in row major order: x, y and then the raw mass of every
// bin. The first row is a header.
func WriteCSV(w io.Writer, d *hog.Descriptor) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, d.NumBins+2)
	header = append(header, "x", "y")
	for i := 0; i < d.NumBins; i++ {
		header = append(header, fmt.Sprintf("bin%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for y := 0; y < d.DimY; y++ {
		for x := 0; x < d.DimX; x++ {
			hist, err := d.Histogram(x, y)
			if err != nil {
				return err
			}
			record := make([]string, 0, len(hist)+2)
			record = append(record, strconv.Itoa(x), strconv.Itoa(y))
			for _, m := range hist {
				record = append(record, formatFloat(m))
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
