package spheretrace

import (
	"fmt"
	"image"
	"math"
)

// tonemap maps a linear sample to [0,1]: optional scale, clamp, then 1/gamma.
type tonemap struct {
	scale Real
	gamma Real
}

func newTonemap(buf []Real, gamma Real, normalize bool) tonemap {
	tm := tonemap{scale: 1, gamma: gamma}
	if tm.gamma <= 0 {
		tm.gamma = Gamma
	}
	if normalize {
		if p := peak(buf); p > 0 {
			tm.scale = 1 / p
		}
	}
	return tm
}

func (tm tonemap) apply(v Real) float64 {
	if !isFinite(v) || v <= 0 {
		return 0
	}
	n := float64(clamp01(v * tm.scale))
	if tm.gamma != 1 {
		n = math.Pow(n, 1.0/float64(tm.gamma))
	}
	return n
}

// peak returns the largest color channel in an RGBA buffer (alpha ignored).
func peak(buf []Real) Real {
	var m Real
	for i := 0; i+ChB < len(buf); i += Channels {
		for _, v := range buf[i : i+ChB+1] {
			if isFinite(v) && v > m {
				m = v
			}
		}
	}
	return m
}

func checkBuffer(buf []Real, w, h int) error {
	n, err := BufferLen(w, h)
	if err != nil {
		return err
	}
	if len(buf) < n {
		return fmt.Errorf("%w: got %d, need %d (w*h*4)", ErrBufferSize, len(buf), n)
	}
	return nil
}

// ToNRGBA converts a render buffer into an opaque 8-bit image, row 0 on top.
// With normalize set, samples are scaled by the buffer peak before clamping.
func ToNRGBA(buf []Real, w, h int, gamma Real, normalize bool) (*image.NRGBA, error) {
	if err := checkBuffer(buf, w, h); err != nil {
		return nil, err
	}
	tm := newTonemap(buf[:w*h*Channels], gamma, normalize)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		rowOff := y * img.Stride
		for x := 0; x < w; x++ {
			i := (y*w + x) * Channels
			p := rowOff + x*4
			img.Pix[p+0] = uint8(math.Round(tm.apply(buf[i+ChR]) * 255))
			img.Pix[p+1] = uint8(math.Round(tm.apply(buf[i+ChG]) * 255))
			img.Pix[p+2] = uint8(math.Round(tm.apply(buf[i+ChB]) * 255))
			img.Pix[p+3] = 255
		}
	}
	return img, nil
}

// ToNRGBA64 is ToNRGBA with 16 bits per channel.
func ToNRGBA64(buf []Real, w, h int, gamma Real, normalize bool) (*image.NRGBA64, error) {
	if err := checkBuffer(buf, w, h); err != nil {
		return nil, err
	}
	tm := newTonemap(buf[:w*h*Channels], gamma, normalize)
	img := image.NewNRGBA64(image.Rect(0, 0, w, h))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for y := 0; y < h; y++ {
		rowOff := y * img.Stride
		for x := 0; x < w; x++ {
			i := (y*w + x) * Channels
			r := uint16(math.Round(tm.apply(buf[i+ChR]) * 65535))
			g := uint16(math.Round(tm.apply(buf[i+ChG]) * 65535))
			b := uint16(math.Round(tm.apply(buf[i+ChB]) * 65535))
			a := uint16(0xFFFF)

			p := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R,G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}
	return img, nil
}
