// Package ebisink implements [sink.ImageSink] on top of Ebitengine
// images, so glyphs and images from ftxt can be drawn directly on
// the screen passed to your game's Draw() method.
package ebisink

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/ftxt/sink"

var _ sink.ImageSink = (*Sink)(nil)

// An Ebitengine [sink.ImageSink]. The screen must be updated on each
// frame with [Sink.SetScreen] before drawing to it, as Ebitengine
// passes a new screen image to each Draw() call.
type Sink struct {
	screen *ebiten.Image
	target sink.Target
}

// An image uploaded or created by a [Sink].
type Image struct {
	owner *Sink
	image *ebiten.Image // nil for zero-sized images
	width int
	height int
	offscreen bool
	disposed bool
}

// Returns the underlying Ebitengine image. The result is nil for
// zero-sized and disposed images.
func (self *Image) Ebiten() *ebiten.Image { return self.image }
func (self *Image) Size() (int, int) { return self.width, self.height }

// Deallocates the underlying Ebitengine image.
func (self *Image) Dispose() {
	if self.disposed { return }
	self.disposed = true
	if self.image != nil {
		self.image.Dispose()
		self.image = nil
	}
}

// Creates a sink that draws to the given screen. The screen can be nil
// and set later through [Sink.SetScreen].
func New(screen *ebiten.Image) *Sink {
	return &Sink{ screen: screen }
}

// Sets the screen image used for [sink.ScreenTarget]().
func (self *Sink) SetScreen(screen *ebiten.Image) { self.screen = screen }

// Sets the surface that subsequent Draw calls affect.
func (self *Sink) SetTarget(target sink.Target) error {
	if img, isOffscreen := target.Image(); isOffscreen {
		eimg, ok := img.(*Image)
		if !ok || eimg.owner != self { return sink.ErrForeignImage }
		if eimg.disposed || eimg.image == nil { return sink.ErrDisposed }
		if !eimg.offscreen { return sink.ErrNotOffscreen }
	}
	self.target = target
	return nil
}

// Creates an offscreen image that can be used with [sink.OffscreenTarget].
func (self *Sink) NewOffscreen(width, height int) sink.Image {
	img := &Image{ owner: self, width: width, height: height, offscreen: true }
	if width > 0 && height > 0 { img.image = ebiten.NewImage(width, height) }
	return img
}

// Satisfies the [sink.ImageSink] interface.
func (self *Sink) Upload(pixels []byte, width, height int) (sink.Image, error) {
	if width < 0 || height < 0 || len(pixels) != width*height*4 {
		return nil, sink.ErrPixelCount
	}
	img := &Image{ owner: self, width: width, height: height }
	if width == 0 || height == 0 { return img, nil } // ebiten can't create empty images

	nrgba := &image.NRGBA{
		Pix: pixels,
		Stride: width*4,
		Rect: image.Rect(0, 0, width, height),
	}
	img.image = ebiten.NewImageFromImage(nrgba)
	return img, nil
}

// Satisfies the [sink.ImageSink] interface.
func (self *Sink) Draw(img sink.Image, x, y int, tint color.RGBA) error {
	eimg, ok := img.(*Image)
	if !ok || eimg.owner != self { return sink.ErrForeignImage }
	if eimg.disposed { return sink.ErrDisposed }
	if eimg.image == nil { return nil } // zero-sized

	target, err := self.targetImage()
	if err != nil { return err }
	if tint.A == 0 { return nil }
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorM.Scale(tintToColorM(tint))
	target.DrawImage(eimg.image, &opts)
	return nil
}

// ColorM works on non-premultiplied colors, while tints are premultiplied.
func tintToColorM(tint color.RGBA) (float64, float64, float64, float64) {
	a := float64(tint.A)
	return float64(tint.R)/a, float64(tint.G)/a, float64(tint.B)/a, a/255
}

func (self *Sink) targetImage() (*ebiten.Image, error) {
	img, isOffscreen := self.target.Image()
	if !isOffscreen {
		if self.screen == nil { return nil, sink.ErrNoTarget }
		return self.screen, nil
	}
	eimg := img.(*Image)
	if eimg.image == nil { return nil, sink.ErrNoTarget }
	return eimg.image, nil
}
