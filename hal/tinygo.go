//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	fb     Framebuffer
	kbd    Keypad
	t      *tinyGoTime
}

// Keypad wiring: rows on GP9..GP6, columns on GP5..GP2.
var (
	keypadRowPins = [4]machine.Pin{machine.GP9, machine.GP8, machine.GP7, machine.GP6}
	keypadColPins = [4]machine.Pin{machine.GP5, machine.GP4, machine.GP3, machine.GP2}
)

// New returns a Pico (RP2040) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// OLED: SSD1306 on I2C1, GP26 (SDA) / GP27 (SCL).
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: ledPin}

	var fb Framebuffer
	if oled, err := initOLED(); err == nil {
		fb = oled
	} else {
		fb = newStubFramebuffer(oledWidth, oledHeight)
	}

	pins := []GPIOPin{newLEDPin("LED", led)}
	rows := make([]GPIOPin, 0, len(keypadRowPins))
	cols := make([]GPIOPin, 0, len(keypadColPins))
	for i, p := range keypadRowPins {
		mp := newMachinePin(fmt.Sprintf("ROW%d", i), p)
		rows = append(rows, mp)
		pins = append(pins, mp)
	}
	for i, p := range keypadColPins {
		mp := newMachinePin(fmt.Sprintf("COL%d", i), p)
		cols = append(cols, mp)
		pins = append(pins, mp)
	}

	var kbd Keypad
	if kp, err := NewMatrixKeypad(rows, cols, DefaultMatrixLayout); err == nil {
		go kp.Run(5*time.Millisecond, nil)
		kbd = kp
	} else {
		kbd = &stubKeypad{}
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    led,
		gpio:   newVirtualGPIO(pins),
		fb:     fb,
		kbd:    kbd,
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time       { return h.t }
