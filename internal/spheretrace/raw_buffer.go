package spheretrace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGBA32 dumps the render buffer unmodified: an int32 w, h header
// (little-endian) followed by w*h*4 float32 samples.
func SaveRawRGBA32(path string, buf []Real, w, h int) error {
	// Sanity checks
	if w < 0 || h < 0 {
		return fmt.Errorf("negative dimensions: w=%d h=%d", w, h)
	}
	// Use 64-bit multiply to avoid overflow.
	exp64 := int64(w) * int64(h) * Channels
	if int64(len(buf)) != exp64 {
		return fmt.Errorf("buffer length mismatch: got %d, expected %d (w*h*4)", len(buf), exp64)
	}

	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	wr := bufio.NewWriter(f)

	if err := binary.Write(wr, binary.LittleEndian, [2]int32{int32(w), int32(h)}); err != nil {
		return err
	}
	if exp64 > 0 {
		if err := binary.Write(wr, binary.LittleEndian, buf); err != nil {
			return err
		}
	}
	if err := wr.Flush(); err != nil {
		return err
	}
	fmt.Printf("[RAW]  %dx%d -> %s\n", w, h, path)
	return nil
}

const rawHeaderSize = 8

// LoadRawRGBA32 reads a file written by SaveRawRGBA32.
func LoadRawRGBA32(path string) (buf []Real, w, h int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, 0, 0, err
	}

	r := bufio.NewReader(f)
	var hdr [2]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, 0, 0, fmt.Errorf("read header: %w", err)
	}
	w, h = int(hdr[0]), int(hdr[1])
	n, err := BufferLen(w, h)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("header: %w", err)
	}
	// the body must hold exactly n float32s; checked before allocating
	if body := st.Size() - rawHeaderSize; body%4 != 0 || body/4 != int64(n) {
		return nil, 0, 0, fmt.Errorf("file size mismatch: got %d bytes, header %dx%d needs %d floats", st.Size(), w, h, n)
	}
	buf = make([]Real, n)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, 0, 0, fmt.Errorf("read body: %w", err)
	}
	return buf, w, h, nil
}
