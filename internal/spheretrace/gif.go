package spheretrace

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveGIF writes the render buffer as a single-frame GIF quantized to the Plan9 palette.
func SaveGIF(path string, buf []Real, w, h int, gamma Real, normalize bool) error {
	rgba, err := ToNRGBA(buf, w, h, gamma, normalize)
	if err != nil {
		return err
	}
	fmt.Printf("[GIF]  %dx%d -> %s\n", w, h, path)

	pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	defer f.Close()
	return gif.Encode(f, pimg, nil)
}
