package pngenc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image/png"
	"math"
	"testing"

	"storegen/raster"

	"github.com/google/go-cmp/cmp"
)

type chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

func splitChunks(t *testing.T, b []byte) []chunk {
	t.Helper()

	if !bytes.HasPrefix(b, signature) {
		t.Fatalf("missing PNG signature: % x", b[:min(8, len(b))])
	}
	b = b[len(signature):]

	var res []chunk
	for len(b) > 0 {
		if len(b) < 12 {
			t.Fatalf("truncated chunk header: %d bytes left", len(b))
		}
		n := int(binary.BigEndian.Uint32(b))
		if len(b) < 12+n {
			t.Fatalf("truncated chunk: need %d bytes, have %d", 12+n, len(b))
		}
		res = append(res, chunk{
			Type: string(b[4:8]),
			Data: b[8 : 8+n],
			CRC:  binary.BigEndian.Uint32(b[8+n:]),
		})
		b = b[12+n:]
	}
	return res
}

func gradient(w, h int) []raster.Color {
	pix := make([]raster.Color, w*h)
	for y := range h {
		for x := range w {
			pix[y*w+x] = raster.Color{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x ^ y)}
		}
	}
	return pix
}

func TestRoundTrip(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{3, 5},
		{17, 2},
		{64, 48},
	}

	for _, sz := range sizes {
		pix := gradient(sz.w, sz.h)
		data, err := Bytes(sz.w, sz.h, pix)
		if err != nil {
			t.Fatalf("%dx%d: Bytes() error = %v", sz.w, sz.h, err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%dx%d: png.Decode() error = %v", sz.w, sz.h, err)
		}

		got := raster.FromImage(img)
		want := &raster.Canvas{Pix: pix, Width: sz.w, Height: sz.h}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%dx%d: round trip mismatch (-want +got):\n%s", sz.w, sz.h, d)
		}
	}
}

func TestHeader(t *testing.T) {
	data, err := Bytes(300, 7, gradient(300, 7))
	if err != nil {
		t.Fatal(err)
	}

	chunks := splitChunks(t, data)
	var types []string
	for _, c := range chunks {
		types = append(types, c.Type)
	}
	if d := cmp.Diff([]string{"IHDR", "IDAT", "IEND"}, types); d != "" {
		t.Fatalf("chunk layout mismatch (-want +got):\n%s", d)
	}

	ihdr := chunks[0].Data
	want := []byte{
		0, 0, 0x01, 0x2C, // width 300
		0, 0, 0, 7, // height 7
		8, 2, 0, 0, 0,
	}
	if d := cmp.Diff(want, ihdr); d != "" {
		t.Errorf("IHDR mismatch (-want +got):\n%s", d)
	}

	if len(chunks[2].Data) != 0 {
		t.Errorf("IEND carries %d bytes of data", len(chunks[2].Data))
	}
}

func TestChunkCRC(t *testing.T) {
	data, err := Bytes(20, 20, gradient(20, 20))
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range splitChunks(t, data) {
		want := crc32.ChecksumIEEE(append([]byte(c.Type), c.Data...))
		if c.CRC != want {
			t.Errorf("%s: CRC = %08x, want %08x", c.Type, c.CRC, want)
		}
	}
}

func TestPreconditions(t *testing.T) {
	limit := int64(math.MaxInt32)
	tooBig := int(limit + 1)

	tests := []struct {
		name string
		w, h int
		pix  []raster.Color
		want error
	}{
		{"zero width", 0, 4, nil, ErrDimensions},
		{"negative height", 4, -1, nil, ErrDimensions},
		{"width above IHDR limit", tooBig, 1, nil, ErrDimensions},
		{"height above IHDR limit", 1, tooBig, nil, ErrDimensions},
		{"too few pixels", 4, 4, make([]raster.Color, 15), ErrPixelCount},
		{"too many pixels", 2, 2, make([]raster.Color, 5), ErrPixelCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(&buf, tt.w, tt.h, tt.pix)
			if !errors.Is(err, tt.want) {
				t.Errorf("Encode() error = %v, want %v", err, tt.want)
			}
			if buf.Len() != 0 {
				t.Errorf("Encode() wrote %d bytes on error", buf.Len())
			}
		})
	}
}

type failWriter struct {
	err error
}

func (f failWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func TestWriterError(t *testing.T) {
	sentinel := errors.New("disk full")
	err := Encode(failWriter{sentinel}, 2, 2, make([]raster.Color, 4))
	if !errors.Is(err, sentinel) {
		t.Errorf("Encode() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestIconScenario(t *testing.T) {
	cv := raster.NewCanvas(128, 128, raster.White)
	cv.FillCircle(64, 64, 56, raster.Accent)

	var buf bytes.Buffer
	if err := EncodeCanvas(&buf, cv); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	got := raster.FromImage(img)
	if c := got.Pixel(64, 64); c != raster.Accent {
		t.Errorf("centre pixel = %v, want %v", c, raster.Accent)
	}
	if c := got.Pixel(0, 0); c != raster.White {
		t.Errorf("corner pixel = %v, want %v", c, raster.White)
	}
}
