package export

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"go.viam.com/hogview/hog"
)

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d *hog.Descriptor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(d), "encoding descriptor")
}

// ReadJSON decodes and validates a descriptor written by WriteJSON.
func ReadJSON(r io.Reader) (*hog.Descriptor, error) {
	var d hog.Descriptor
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decoding descriptor")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
