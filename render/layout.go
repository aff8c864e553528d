// Package render projects calculator state onto the two-line OLED
// layout and draws it into a HAL framebuffer.
package render

import "nanocalc/calc"

// Layout describes the screen: the parked operand and pending operator
// on the top line, the operand being entered right-aligned below.
type Layout struct {
	Top     string
	Bottom  string
	BottomX int
}

// Project maps calculator state onto the layout. widthOf measures
// rendered text width at the bottom line's font; the bottom line is
// right-aligned against canvasW with the given margin and never pushed
// off-canvas to the left.
func Project(s *calc.State, widthOf func(string) int, canvasW, margin int) Layout {
	l := Layout{
		Top:    s.Previous(),
		Bottom: s.Current(),
	}
	if op := s.PendingOp(); op != calc.OpNone {
		l.Top += " " + op.Glyph()
	}

	x := canvasW - widthOf(l.Bottom) - margin
	if x < 0 {
		x = 0
	}
	l.BottomX = x
	return l
}
