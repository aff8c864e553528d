//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keypad
}

func (in tinyGoInput) Keypad() Keypad { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// machinePin adapts a machine.Pin to the GPIOPin interface so the
// matrix keypad scanner can run against real hardware.
type machinePin struct {
	name string
	pin  machine.Pin
}

func newMachinePin(name string, pin machine.Pin) *machinePin {
	return &machinePin{name: name, pin: pin}
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	switch {
	case mode == GPIOModeOutput:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	case pull == GPIOPullUp:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	case pull == GPIOPullDown:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	default:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	return nil
}

func (p *machinePin) Read() (bool, error) {
	return p.pin.Get(), nil
}

func (p *machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}
