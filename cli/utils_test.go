package cli

import (
	"bytes"
	"testing"

	"go.viam.com/test"
)

func TestSamePath(t *testing.T) {
	equal, _ := samePath("/x", "/x")
	test.That(t, equal, test.ShouldBeTrue)
	equal, _ = samePath("/x", "x")
	test.That(t, equal, test.ShouldBeFalse)
	equal, _ = samePath("/x/../y", "/y")
	test.That(t, equal, test.ShouldBeTrue)
}

func TestParseCellSize(t *testing.T) {
	for raw, expected := range map[string][2]int{
		"8x8":    {8, 8},
		"16X4":   {16, 4},
		" 12x6 ": {12, 6},
		"5":      {5, 5},
	} {
		w, h, err := parseCellSize(raw)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, [2]int{w, h}, test.ShouldResemble, expected)
	}
	for _, raw := range []string{"", "axb", "1x2x3", "8x"} {
		_, _, err := parseCellSize(raw)
		test.That(t, err, test.ShouldNotBeNil)
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	printf(&buf, "cells: %d", 4)
	test.That(t, buf.String(), test.ShouldEqual, "cells: 4\n")

	buf.Reset()
	warningf(&buf, "skipping %s", "a.png")
	test.That(t, buf.String(), test.ShouldContainSubstring, "Warning: ")
	test.That(t, buf.String(), test.ShouldEndWith, "skipping a.png\n")
}

func TestStem(t *testing.T) {
	test.That(t, stem("/tmp/dir/photo.large.png"), test.ShouldEqual, "photo.large")
	test.That(t, stem("noext"), test.ShouldEqual, "noext")
	test.That(t, formatHistogram([]float64{1, 0.5}), test.ShouldEqual, "1.00 0.50")
}
