//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeypad struct {
	ch chan KeyEvent
}

func newHostKeypad() *hostKeypad {
	return &hostKeypad{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeypad) Events() <-chan KeyEvent { return k.ch }

// poll translates desktop keyboard input into keypad events once per
// simulator frame. Typed characters carry the symbol directly; Enter
// and Escape stand in for the '=' and clear keys.
func (k *hostKeypad) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	code := func(key ebiten.Key, c KeyCode) {
		if inpututil.IsKeyJustPressed(key) {
			emit(KeyEvent{Code: c, Press: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			emit(KeyEvent{Code: c, Press: false})
		}
	}
	code(ebiten.KeyEnter, KeyEnter)
	code(ebiten.KeyNumpadEnter, KeyEnter)
	code(ebiten.KeyEscape, KeyEscape)
	code(ebiten.KeyBackspace, KeyBackspace)
}
