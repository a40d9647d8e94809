// Package termsink presents a [sink.Canvas] on a terminal through
// [github.com/gdamore/tcell/v2], using half-block characters so each
// terminal cell shows two vertically stacked pixels.
package termsink

import "image/color"

import "github.com/gdamore/tcell/v2"

import "github.com/tinne26/ftxt/sink"

var _ sink.ImageSink = (*Sink)(nil)

const halfBlock = '▀' // upper half filled: fg is the top pixel, bg the bottom one

// A terminal [sink.ImageSink]. Drawing happens on an internal canvas
// with two pixel rows per terminal row. Changes reach the terminal only
// after [Sink.Present]().
type Sink struct {
	canvas *sink.Canvas
	screen tcell.Screen
	background color.RGBA
}

// Creates a sink for the given screen. The canvas size matches the
// screen size at the moment of creation, with two pixels per cell row.
func New(screen tcell.Screen) *Sink {
	cols, rows := screen.Size()
	return &Sink{
		canvas: sink.NewCanvas(cols, rows*2),
		screen: screen,
		background: color.RGBA{0, 0, 0, 255},
	}
}

// Returns the canvas the sink draws on.
func (self *Sink) Canvas() *sink.Canvas { return self.canvas }

// Sets the color transparent pixels are composited against when
// presenting. Black by default.
func (self *Sink) SetBackground(bg color.RGBA) { self.background = bg }

// Satisfies the [sink.ImageSink] interface.
func (self *Sink) Upload(pixels []byte, width, height int) (sink.Image, error) {
	return self.canvas.Upload(pixels, width, height)
}

// Satisfies the [sink.ImageSink] interface.
func (self *Sink) Draw(img sink.Image, x, y int, tint color.RGBA) error {
	return self.canvas.Draw(img, x, y, tint)
}

// Writes the canvas screen to the terminal and shows it.
func (self *Sink) Present() {
	pixels := self.canvas.Screen()
	bounds := pixels.Bounds()
	cols, rows := self.screen.Size()
	cols = min(cols, bounds.Dx())
	rows = min(rows, (bounds.Dy() + 1)/2)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := self.composite(pixels.RGBAAt(col, row*2))
			bottom := self.composite(pixels.RGBAAt(col, row*2 + 1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			self.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	self.screen.Show()
}

// composites a premultiplied pixel over the background
func (self *Sink) composite(pixel color.RGBA) tcell.Color {
	inv := 255 - uint32(pixel.A)
	r := uint32(pixel.R) + uint32(self.background.R)*inv/255
	g := uint32(pixel.G) + uint32(self.background.G)*inv/255
	b := uint32(pixel.B) + uint32(self.background.B)*inv/255
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
