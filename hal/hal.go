package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Panel dimensions of the SSD1306 module (the host simulator mirrors
// them).
const (
	oledWidth  = 128
	oledHeight = 64
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// The OLED panel is monochrome; Present implementations threshold the
// RGB565 buffer when the hardware cannot show color.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Invert()
	Present() error
}

// KeyCode identifies a non-printable key on the host keyboard.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a single key transition.
//
// Matrix keypad keys arrive as their layout rune ('0'..'9', 'A'..'D',
// '*', '#'); host keyboard keys arrive as typed runes or a KeyCode.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keypad provides key events (best-effort on each platform).
type Keypad interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keypad() Keypad
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; the app paces animation frames
// by counting ticks rather than sleeping.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the calculator and the
// outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	GPIO() GPIO
	Display() Display
	Input() Input
	Time() Time
}
