// Package view shows a finished render in a desktop window.
package view

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Show opens a window displaying img scaled by scale and blocks until it is closed.
func Show(title string, img image.Image, scale int) error {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	w := newWindow(img)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx()*scale, b.Dy()*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

type window struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func newWindow(img image.Image) *window {
	b := img.Bounds()
	return &window{src: img, width: b.Dx(), height: b.Dy()}
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
