// Package pngenc writes 8-bit truecolor PNG streams without alpha, one
// unfiltered IDAT chunk per image.
package pngenc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"sync"

	"storegen/raster"

	"github.com/klauspost/compress/zlib"
)

const (
	bitDepth       = 8
	colorTypeRGB   = 2
	filterNone     = 0
	bytesPerPixel  = 3
	ihdrDataLength = 13

	// maxDimension is the largest width or height IHDR allows.
	maxDimension = math.MaxInt32
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

var (
	ErrDimensions = errors.New("image dimensions must be in [1, 2^31-1]")
	ErrPixelCount = errors.New("pixel count does not match image dimensions")
)

var zlibPool = sync.Pool{
	New: func() any {
		zw, _ := zlib.NewWriterLevel(nil, zlib.BestCompression)
		return zw
	},
}

// Encode writes width x height pixels, given in row-major order, to w as a PNG
// stream. Nothing is written when the arguments are inconsistent.
func Encode(w io.Writer, width, height int, pix []raster.Color) error {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if len(pix) != width*height {
		return fmt.Errorf("%w: got %d, want %dx%d=%d", ErrPixelCount, len(pix), width, height, width*height)
	}

	idat, err := compress(scanlines(width, height, pix))
	if err != nil {
		return err
	}

	if err := writeBytes(w, signature); err != nil {
		return fmt.Errorf("could not write PNG signature: %w", err)
	}

	ihdr := make([]byte, 0, ihdrDataLength)
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(width))
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(height))
	// bit depth, color type, compression, filter, interlace
	ihdr = append(ihdr, bitDepth, colorTypeRGB, 0, 0, 0)

	for _, c := range []struct {
		typ  string
		data []byte
	}{
		{"IHDR", ihdr},
		{"IDAT", idat},
		{"IEND", nil},
	} {
		if err := writeChunk(w, c.typ, c.data); err != nil {
			return err
		}
	}

	return nil
}

func EncodeCanvas(w io.Writer, cv *raster.Canvas) error {
	return Encode(w, cv.Width, cv.Height, cv.Pix)
}

// Bytes encodes into memory.
func Bytes(width, height int, pix []raster.Color) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(width*height/4 + 64)
	if err := Encode(&buf, width, height, pix); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scanlines(width, height int, pix []raster.Color) []byte {
	stride := 1 + width*bytesPerPixel
	raw := make([]byte, 0, stride*height)

	for y := range height {
		raw = append(raw, filterNone)
		for _, c := range pix[y*width : (y+1)*width] {
			raw = append(raw, c.R, c.G, c.B)
		}
	}
	return raw
}

func compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := zlibPool.Get().(*zlib.Writer)
	defer zlibPool.Put(zw)
	zw.Reset(&buf)

	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("could not compress image data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("could not flush compressed image data: %w", err)
	}
	return buf.Bytes(), nil
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	chunk := make([]byte, 0, 12+len(data))
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(data)))
	chunk = append(chunk, typ...)
	chunk = append(chunk, data...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	if err := writeBytes(w, chunk); err != nil {
		return fmt.Errorf("could not write %s chunk: %w", typ, err)
	}
	return nil
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
