package palette

import (
	"bytes"
	"testing"

	"storegen/raster"

	"github.com/google/go-cmp/cmp"
)

func TestRIFFRoundTrip(t *testing.T) {
	want := Colors(Brand())

	var buf bytes.Buffer
	n, err := WriteRIFF(&buf, want)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteRIFF() = %d, want %d", n, len(want))
	}
	if got, wantLen := buf.Len(), 8+4+8+4+4*len(want); got != wantLen {
		t.Errorf("document is %d bytes, want %d", got, wantLen)
	}

	got, err := ReadRIFF(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestReadRIFFRejectsOtherForms(t *testing.T) {
	doc := []byte("RIFF\x04\x00\x00\x00WAVE")
	if _, err := ReadRIFF(bytes.NewReader(doc)); err == nil {
		t.Errorf("ReadRIFF accepted a WAVE document")
	}
}

func TestBrandNamesUnique(t *testing.T) {
	seen := map[string]raster.Color{}
	for _, e := range Brand() {
		if _, ok := seen[e.Name]; ok {
			t.Errorf("duplicate palette entry %q", e.Name)
		}
		seen[e.Name] = e.Color
	}
	if seen["linkedin-blue"] != raster.Accent {
		t.Errorf("linkedin-blue = %v, want the icon accent %v", seen["linkedin-blue"], raster.Accent)
	}
}
