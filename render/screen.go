package render

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"nanocalc/calc"
	"nanocalc/hal"
)

var (
	colorOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorOff = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// A small font for the pending expression, a large one for the
// operand line.
var (
	topFont    tinyfont.Fonter = &proggy.TinySZ8pt7b
	bottomFont tinyfont.Fonter = &freemono.Bold12pt7b
)

const (
	topBaseline    = 10
	bottomBaseline = 48
	bottomMargin   = 2
)

// Screen draws calculator layouts into a framebuffer. It implements
// drivers.Displayer so tinyfont and tinydraw can paint through it.
type Screen struct {
	fb hal.Framebuffer
}

func NewScreen(fb hal.Framebuffer) *Screen {
	return &Screen{fb: fb}
}

func (s *Screen) Size() (x, y int16) {
	if s.fb == nil {
		return 0, 0
	}
	return int16(s.fb.Width()), int16(s.fb.Height())
}

func (s *Screen) SetPixel(x, y int16, c color.RGBA) {
	if s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := s.fb.Buffer()
	if buf == nil {
		return
	}

	w := s.fb.Width()
	h := s.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*s.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (s *Screen) Display() error {
	if s.fb == nil {
		return nil
	}
	return s.fb.Present()
}

func (s *Screen) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := s.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := s.fb.Width()
	h := s.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := s.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (s *Screen) Width() int {
	if s.fb == nil {
		return 0
	}
	return s.fb.Width()
}

// MeasureBottom returns the rendered width of text at the bottom
// line's font size.
func (s *Screen) MeasureBottom(text string) int {
	_, outboxWidth := tinyfont.LineWidth(bottomFont, text)
	return int(outboxWidth)
}

// Render projects the state and draws both lines.
func (s *Screen) Render(st *calc.State) error {
	if s.fb == nil {
		return nil
	}

	l := Project(st, s.MeasureBottom, s.fb.Width(), bottomMargin)

	s.fb.ClearRGB(0, 0, 0)
	tinyfont.WriteLine(s, topFont, 0, topBaseline, l.Top, colorOn)
	tinyfont.WriteLine(s, bottomFont, int16(l.BottomX), bottomBaseline, l.Bottom, colorOn)
	return s.fb.Present()
}

// Banner draws startup text in the large font, left-anchored around
// the vertical center. The caller owns clearing and presenting, so a
// growing prefix gives the typewriter effect.
func (s *Screen) Banner(text string) {
	if s.fb == nil {
		return
	}
	tinyfont.WriteLine(s, bottomFont, 6, int16(s.fb.Height()/2+8), text, colorOn)
}

func rgb565From888(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
