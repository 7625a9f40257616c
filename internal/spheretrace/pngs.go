package spheretrace

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG writes the render buffer as an 8-bit PNG.
func SavePNG(path string, buf []Real, w, h int, gamma Real, normalize bool) error {
	img, err := ToNRGBA(buf, w, h, gamma, normalize)
	if err != nil {
		return err
	}
	fmt.Printf("[PNG]  %dx%d -> %s\n", w, h, path)
	return writePNG(path, img)
}

// SavePNG16 writes the render buffer as a 16-bit PNG.
// PNG is lossless; the only quantization is the float -> uint16 mapping.
func SavePNG16(path string, buf []Real, w, h int, gamma Real, normalize bool) error {
	img, err := ToNRGBA64(buf, w, h, gamma, normalize)
	if err != nil {
		return err
	}
	fmt.Printf("[PNG16] %dx%d -> %s\n", w, h, path)
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
