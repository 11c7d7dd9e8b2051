// Package export writes descriptors out as JSON, CSV, plain vectors and plots.
package export

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/hogview/hog"
)

// Format names an output encoding.
type Format string

// The supported formats.
const (
	FormatJSON       Format = "json"
	FormatCSV        Format = "csv"
	FormatVector     Format = "vector"
	FormatBinPlot    Format = "binplot"
	FormatMassPlot   Format = "massplot"
	FormatNormalized Format = "normalized"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatCSV, FormatVector, FormatNormalized, FormatBinPlot, FormatMassPlot}

// ParseFormat reads a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown export format %q", name)
}

// Extension returns the file extension, with dot, used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatBinPlot, FormatMassPlot:
		return ".png"
	case FormatVector, FormatNormalized:
		return ".txt"
	}
	return ""
}

// Write encodes d to w in the given format.
func Write(w io.Writer, d *hog.Descriptor, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, d)
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatVector:
		return WriteVector(w, d, false)
	case FormatNormalized:
		return WriteVector(w, d, true)
	case FormatBinPlot:
		return WriteBinPlot(w, d, "png")
	case FormatMassPlot:
		return WriteMassPlot(w, d, "png")
	}
	return errors.Errorf("unknown export format %q", format)
}
