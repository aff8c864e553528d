package app

import (
	"image/color"

	"tinygo.org/x/tinydraw"
)

const bootBanner = "NANOCALC"

var bootWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// bootAnimation plays the ~1.5s startup sequence: a growing circle, a
// typewriter banner, then two inverse flashes.
func (e *engine) bootAnimation() {
	w := e.fb.Width()
	h := e.fb.Height()

	for r := 0; r < h/2; r += 2 {
		e.fb.ClearRGB(0, 0, 0)
		tinydraw.Circle(e.scr, int16(w/2), int16(h/2), int16(r), bootWhite)
		_ = e.fb.Present()
		e.wait(15)
	}

	e.fb.ClearRGB(0, 0, 0)
	for i := range bootBanner {
		e.scr.Banner(bootBanner[:i+1])
		_ = e.fb.Present()
		e.wait(70)
	}

	e.wait(200)
	for i := 0; i < 2; i++ {
		e.fb.Invert()
		_ = e.fb.Present()
		e.wait(100)
		e.fb.Invert()
		_ = e.fb.Present()
		e.wait(100)
	}

	e.fb.ClearRGB(0, 0, 0)
	_ = e.fb.Present()
}
