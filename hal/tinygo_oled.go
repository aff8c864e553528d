//go:build tinygo && baremetal

package hal

import (
	"errors"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

const ssd1306Addr = 0x3C

// oledFramebuffer keeps an RGB565 shadow buffer so the shared drawing
// code is identical on host and hardware. Present reduces it to the
// panel's 1bpp page buffer.
type oledFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	dev *ssd1306.Device
}

func initOLED() (*oledFramebuffer, error) {
	if machine.I2C1 == nil {
		return nil, errors.New("oled: I2C1 unavailable")
	}
	if err := machine.I2C1.Configure(machine.I2CConfig{
		SDA:       machine.GP26,
		SCL:       machine.GP27,
		Frequency: 400_000,
	}); err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{
		Address: ssd1306Addr,
		Width:   oledWidth,
		Height:  oledHeight,
	})
	dev.ClearDisplay()

	return &oledFramebuffer{
		w:      oledWidth,
		h:      oledHeight,
		stride: oledWidth * 2,
		buf:    make([]byte, oledWidth*oledHeight*2),
		dev:    &dev,
	}, nil
}

func (f *oledFramebuffer) Width() int          { return f.w }
func (f *oledFramebuffer) Height() int         { return f.h }
func (f *oledFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *oledFramebuffer) StrideBytes() int    { return f.stride }
func (f *oledFramebuffer) Buffer() []byte      { return f.buf }

func (f *oledFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *oledFramebuffer) Invert() {
	for i := range f.buf {
		f.buf[i] = ^f.buf[i]
	}
}

func (f *oledFramebuffer) Present() error {
	if f.dev == nil {
		return ErrNotImplemented
	}

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	f.dev.ClearBuffer()
	for y := 0; y < f.h; y++ {
		row := y * f.stride
		for x := 0; x < f.w; x++ {
			off := row + x*2
			p := uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
			if pixelOn565(p) {
				f.dev.SetPixel(int16(x), int16(y), white)
			}
		}
	}
	return f.dev.Display()
}
