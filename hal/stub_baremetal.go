//go:build tinygo && baremetal

package hal

type stubFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
}

func newStubFramebuffer(w, h int) *stubFramebuffer {
	return &stubFramebuffer{w: w, h: h, stride: w * 2, buf: make([]byte, w*h*2)}
}

func (f *stubFramebuffer) Width() int          { return f.w }
func (f *stubFramebuffer) Height() int         { return f.h }
func (f *stubFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int    { return f.stride }
func (f *stubFramebuffer) Buffer() []byte      { return f.buf }
func (f *stubFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}
func (f *stubFramebuffer) Invert() {
	for i := range f.buf {
		f.buf[i] = ^f.buf[i]
	}
}
func (f *stubFramebuffer) Present() error { return ErrNotImplemented }

type stubKeypad struct{}

func (*stubKeypad) Events() <-chan KeyEvent { return nil }
