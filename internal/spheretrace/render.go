package spheretrace

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensions is returned for non-positive or overflowing image sizes.
	ErrDimensions = errors.New("width and height must be positive")
	// ErrBufferSize is returned when a destination buffer cannot hold the image.
	ErrBufferSize = errors.New("destination buffer too small")
)

// pixelFunc observes every traced pixel; used for ray logging.
type pixelFunc func(x, y int, ray Ray, dist Real, cat Category)

// BufferLen returns the number of floats in a w×h RGBA render.
func BufferLen(w, h int) (int, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("%w: got %dx%d", ErrDimensions, w, h)
	}
	if w > math.MaxInt/Channels/h {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrDimensions, w, h)
	}
	return w * h * Channels, nil
}

// Raytrace renders the scene into a new row-major RGBA buffer of w*h*4 floats.
// Alpha is always 1.
func Raytrace(w, h int) ([]Real, error) {
	n, err := BufferLen(w, h)
	if err != nil {
		return nil, err
	}
	data := make([]Real, n)
	render(NewModel(w, h), data, nil)
	return data, nil
}

// RaytraceInto renders into dst, which must hold at least w*h*4 floats.
// Anything past the first w*h*4 floats is left untouched.
func RaytraceInto(w, h int, dst []Real) error {
	n, err := BufferLen(w, h)
	if err != nil {
		return err
	}
	if len(dst) < n {
		return fmt.Errorf("%w: got %d, need %d (w*h*4)", ErrBufferSize, len(dst), n)
	}
	render(NewModel(w, h), dst[:n], nil)
	return nil
}

// RaytraceFixed renders into a zeroed fixed-size buffer; only the first w*h*4 floats are set.
func RaytraceFixed(w, h int) (*[FixedBufferLen]Real, error) {
	buf := new([FixedBufferLen]Real)
	if err := RaytraceInto(w, h, buf[:]); err != nil {
		return nil, err
	}
	return buf, nil
}

// Trace is Raytrace with per-pixel ray logging (see raysStats); output is identical.
func Trace(w, h int) ([]Real, error) {
	n, err := BufferLen(w, h)
	if err != nil {
		return nil, err
	}
	data := make([]Real, n)
	render(NewModel(w, h), data, func(x, y int, ray Ray, dist Real, cat Category) {
		logRay(cat, x, y, ray, dist)
	})
	return data, nil
}

// render walks rows top to bottom, pixels left to right.
func render(m Model, dst []Real, observe pixelFunc) {
	i := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			ray := NewRay(m.Width, m.Height, x, y)
			c, dist, cat := m.pixel(ray)
			if observe != nil {
				observe(x, y, ray, dist, cat)
			}
			dst[i+ChR] = c.R
			dst[i+ChG] = c.G
			dst[i+ChB] = c.B
			dst[i+ChA] = 1
			i += Channels
		}
	}
}
