// Package app wires the calculator core to a HAL: it runs the boot
// animation, consumes keypad events, and keeps the display current.
package app

import (
	"nanocalc/calc"
	"nanocalc/hal"
	"nanocalc/render"
)

type Config struct {
	// SkipBoot suppresses the startup animation (headless smoke runs).
	SkipBoot bool
}

// New initializes and starts the calculator with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the calculator and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	e := newEngine(h)
	go e.loop(cfg)
	return func() error { return nil }
}

type engine struct {
	h      hal.HAL
	log    hal.Logger
	fb     hal.Framebuffer
	scr    *render.Screen
	events <-chan hal.KeyEvent
	ticks  <-chan uint64

	st calc.State
}

func newEngine(h hal.HAL) *engine {
	e := &engine{h: h, log: h.Logger()}

	if d := h.Display(); d != nil {
		e.fb = d.Framebuffer()
	}
	e.scr = render.NewScreen(e.fb)

	if in := h.Input(); in != nil {
		if kbd := in.Keypad(); kbd != nil {
			e.events = kbd.Events()
		}
	}
	if ht := h.Time(); ht != nil {
		e.ticks = ht.Ticks()
	}
	return e
}

func (e *engine) loop(cfg Config) {
	if e.fb == nil {
		e.log.WriteLineString("calc: no display, idle")
		return
	}

	if !cfg.SkipBoot {
		e.bootAnimation()
	}
	_ = e.scr.Render(&e.st)
	e.log.WriteLineString("calc: ready")

	if e.events == nil {
		return
	}
	for ev := range e.events {
		if led := e.h.LED(); led != nil {
			if ev.Press {
				led.High()
			} else {
				led.Low()
			}
		}
		if !ev.Press {
			continue
		}
		k, ok := keyFor(ev)
		if !ok {
			continue
		}
		e.st.HandleKey(k)
		_ = e.scr.Render(&e.st)
	}
}

// wait blocks for roughly ms milliseconds of HAL ticks. In headless
// mode the tick stream still advances, so animation timing holds.
func (e *engine) wait(ms int) {
	if e.ticks == nil {
		return
	}
	for i := 0; i < ms; i++ {
		if _, ok := <-e.ticks; !ok {
			return
		}
	}
}
