package app

import (
	"testing"

	"nanocalc/hal"
)

type testHAL struct {
	fb     *testFramebuffer
	events chan hal.KeyEvent
	led    *testLED
}

func newTestHAL() *testHAL {
	return &testHAL{
		fb:     &testFramebuffer{w: 128, h: 64, buf: make([]byte, 128*64*2)},
		events: make(chan hal.KeyEvent, 64),
		led:    &testLED{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return nopLogger{} }
func (h *testHAL) LED() hal.LED         { return h.led }
func (h *testHAL) GPIO() hal.GPIO       { return nil }
func (h *testHAL) Display() hal.Display { return testDisplay{fb: h.fb} }
func (h *testHAL) Input() hal.Input     { return testInput{ch: h.events} }
func (h *testHAL) Time() hal.Time       { return nil }

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}

type testLED struct {
	highs int
	lows  int
}

func (l *testLED) High() { l.highs++ }
func (l *testLED) Low()  { l.lows++ }

type testDisplay struct {
	fb *testFramebuffer
}

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type testInput struct {
	ch chan hal.KeyEvent
}

func (in testInput) Keypad() hal.Keypad { return testKeypad{ch: in.ch} }

type testKeypad struct {
	ch chan hal.KeyEvent
}

func (k testKeypad) Events() <-chan hal.KeyEvent { return k.ch }

type testFramebuffer struct {
	w        int
	h        int
	buf      []byte
	presents int
}

func (f *testFramebuffer) Width() int              { return f.w }
func (f *testFramebuffer) Height() int             { return f.h }
func (f *testFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *testFramebuffer) Buffer() []byte          { return f.buf }
func (f *testFramebuffer) Present() error          { f.presents++; return nil }

func (f *testFramebuffer) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *testFramebuffer) Invert() {
	for i := range f.buf {
		f.buf[i] = ^f.buf[i]
	}
}

func (f *testFramebuffer) lit() bool {
	for _, b := range f.buf {
		if b != 0 {
			return true
		}
	}
	return false
}

// runKeys feeds press/release pairs through a synchronous loop run.
func runKeys(t *testing.T, keys string) (*engine, *testHAL) {
	t.Helper()

	h := newTestHAL()
	for _, r := range keys {
		h.events <- hal.KeyEvent{Rune: r, Press: true}
		h.events <- hal.KeyEvent{Rune: r, Press: false}
	}
	close(h.events)

	e := newEngine(h)
	e.loop(Config{SkipBoot: true})
	return e, h
}

func TestLoopComputesSum(t *testing.T) {
	e, h := runKeys(t, "5A3#")

	if got := e.st.Current(); got != "8" {
		t.Fatalf("Current() = %q, want %q", got, "8")
	}
	if !h.fb.lit() {
		t.Fatalf("display empty after evaluation")
	}
}

func TestLoopClearsWithStar(t *testing.T) {
	e, _ := runKeys(t, "12A34*")

	if got := e.st.Current(); got != "" {
		t.Fatalf("Current() = %q, want empty after clear", got)
	}
	if got := e.st.Previous(); got != "" {
		t.Fatalf("Previous() = %q, want empty after clear", got)
	}
}

func TestLoopIgnoresUnknownKeys(t *testing.T) {
	e, _ := runKeys(t, "1q2")

	if got := e.st.Current(); got != "12" {
		t.Fatalf("Current() = %q, want %q", got, "12")
	}
}

func TestLoopTogglesActivityLED(t *testing.T) {
	_, h := runKeys(t, "7")

	if h.led.highs != 1 || h.led.lows != 1 {
		t.Fatalf("led highs=%d lows=%d, want 1/1", h.led.highs, h.led.lows)
	}
}

func TestLoopRedrawsPerKey(t *testing.T) {
	_, h := runKeys(t, "12")

	// Initial render plus one per accepted press.
	if h.fb.presents != 3 {
		t.Fatalf("presents = %d, want 3", h.fb.presents)
	}
}
