package screen

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// Row assignments, top to bottom.
const (
	rowTitle = iota
	rowDigitalLabel
	rowDigitalValue
	rowAnalogLabel
	rowAnalogValue
)

var (
	face      = basicfont.Face7x13
	charWidth = 7
	rowHeight = 13
	on        = &image.Uniform{C: image1bit.On}
	off       = &image.Uniform{C: image1bit.Off}
)

// OLED draws the layout on a monochrome panel. The whole frame lives in an
// in-memory canvas; each render pushes only the rectangle it touched.
type OLED struct {
	drawer display.Drawer
	canvas *image1bit.VerticalLSB
	cols   int
	bus    i2c.BusCloser
}

// NewOLED wraps a periph display. The drawer should be at least 64 pixels tall.
func NewOLED(d display.Drawer) *OLED {
	b := d.Bounds()
	return &OLED{
		drawer: d,
		canvas: image1bit.NewVerticalLSB(b),
		cols:   b.Dx() / charWidth,
	}
}

// OpenSSD1306 initializes periph and opens a 128x64 SSD1306 on the named
// I2C bus (empty selects the first bus).
func OpenSSD1306(busName string) (*OLED, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("init ssd1306: %w", err)
	}
	o := NewOLED(dev)
	o.bus = bus
	return o, nil
}

// rowRect returns the pixel rectangle of a text row.
func (o *OLED) rowRect(row int) image.Rectangle {
	b := o.canvas.Bounds()
	r := image.Rect(b.Min.X, b.Min.Y+row*rowHeight, b.Max.X, b.Min.Y+(row+1)*rowHeight)
	return r.Intersect(b)
}

// drawRow clears a row on the canvas and writes text into it.
func (o *OLED) drawRow(row int, text string) image.Rectangle {
	r := o.rowRect(row)
	draw.Draw(o.canvas, r, off, image.Point{}, draw.Src)
	d := font.Drawer{
		Dst:  o.canvas,
		Src:  on,
		Face: face,
		Dot:  fixed.P(r.Min.X, r.Min.Y+face.Ascent),
	}
	d.DrawString(truncate(text, o.cols))
	return r
}

// flush pushes a canvas rectangle to the panel.
func (o *OLED) flush(r image.Rectangle) error {
	if err := o.drawer.Draw(r, o.canvas, r.Min); err != nil {
		return fmt.Errorf("draw %v: %w", r, err)
	}
	return nil
}

// RenderStaticLayout clears the panel and draws the title, a rule under it
// and both labels.
func (o *OLED) RenderStaticLayout() error {
	b := o.canvas.Bounds()
	draw.Draw(o.canvas, b, off, image.Point{}, draw.Src)

	o.drawRow(rowTitle, Title)
	ruleY := b.Min.Y + rowHeight - 1
	for x := b.Min.X; x < b.Max.X; x++ {
		o.canvas.SetBit(x, ruleY, image1bit.On)
	}
	o.drawRow(rowDigitalLabel, DigitalLabel)
	o.drawRow(rowAnalogLabel, AnalogLabel)

	return o.flush(b)
}

// RenderDigitalRegion clears the digital value row and draws text.
func (o *OLED) RenderDigitalRegion(text string) error {
	return o.flush(o.drawRow(rowDigitalValue, text))
}

// RenderAnalogRegion clears the analog value row and draws text.
func (o *OLED) RenderAnalogRegion(text string) error {
	return o.flush(o.drawRow(rowAnalogValue, text))
}

// Close blanks and halts the panel, then releases the bus if it was opened
// by OpenSSD1306.
func (o *OLED) Close() error {
	var errs []error

	if err := o.drawer.Halt(); err != nil {
		errs = append(errs, fmt.Errorf("halt display: %w", err))
	}
	if o.bus != nil {
		if err := o.bus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close i2c bus: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
