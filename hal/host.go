//go:build !tinygo

package hal

import (
	"sync"

	"go.uber.org/zap"
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	gpio   GPIO
	fb     *hostFramebuffer
	kbd    *hostKeypad
	t      *hostTime
}

// New returns a host HAL implementation backed by a simulated OLED
// framebuffer and the desktop keyboard.
func New() HAL {
	log, err := zap.NewProduction()
	if err != nil {
		log = zap.NewNop()
	}
	logger := &hostLogger{log: log}
	led := &hostLED{logger: logger}
	return &hostHAL{
		logger: logger,
		led:    led,
		gpio:   newVirtualGPIO([]GPIOPin{newLEDPin("LED", led)}),
		fb:     newHostFramebuffer(oledWidth, oledHeight),
		kbd:    newHostKeypad(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeypad
}

func (in hostInput) Keypad() Keypad { return in.kbd }

type hostLogger struct {
	log *zap.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info(string(b))
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.log.Debug("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.log.Debug("led: LOW")
}
