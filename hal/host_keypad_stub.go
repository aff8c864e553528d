//go:build !tinygo && !cgo

package hal

type hostKeypad struct {
	ch chan KeyEvent
}

func newHostKeypad() *hostKeypad {
	return &hostKeypad{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeypad) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeypad) poll() {}
