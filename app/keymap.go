package app

import (
	"nanocalc/calc"
	"nanocalc/hal"
)

// keyFor maps a HAL key event to a calculator key.
//
// The matrix keypad reports its legend runes: A/B/C/D are the operator
// column, '#' is equals and '*' is clear. The host keyboard reports
// typed characters ('+', '-', 'x', '/', '=', digits) plus Enter and
// Escape. The legend wins where the two overlap, so '*' always clears
// and multiplication on the host is 'x' or 'C'.
func keyFor(ev hal.KeyEvent) (calc.Key, bool) {
	switch ev.Code {
	case hal.KeyEnter:
		return calc.KeyEquals, true
	case hal.KeyEscape, hal.KeyBackspace:
		return calc.KeyClear, true
	}

	r := ev.Rune
	if r >= '0' && r <= '9' {
		return calc.Key(r), true
	}

	switch r {
	case 'A', 'a', '+':
		return calc.KeyAdd, true
	case 'B', 'b', '-':
		return calc.KeySub, true
	case 'C', 'c', 'x', 'X':
		return calc.KeyMul, true
	case 'D', 'd', '/':
		return calc.KeyDiv, true
	case '#', '=':
		return calc.KeyEquals, true
	case '*':
		return calc.KeyClear, true
	}
	return calc.KeyNone, false
}
