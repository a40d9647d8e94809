package sink

import "image"
import "image/color"

import "golang.org/x/image/draw"

var _ ImageSink = (*Canvas)(nil)

// A CPU [ImageSink] that draws into an [*image.RGBA] screen or into
// offscreen images created with [Canvas.NewOffscreen].
//
// Tints are applied as a per-channel color scale over the premultiplied
// image colors and the result is composited with the "over" operator.
// Canvases can't be used concurrently.
type Canvas struct {
	screen *image.RGBA
	target Target
	scratch *image.RGBA
	live int
}

type canvasImage struct {
	owner *Canvas
	pixels *image.NRGBA
	offscreen bool
	disposed bool
}

func (self *canvasImage) Size() (int, int) {
	bounds := self.pixels.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (self *canvasImage) Dispose() {
	if self.disposed { return }
	self.disposed = true
	self.owner.live -= 1
}

// Creates a new canvas with a transparent screen of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{ screen: image.NewRGBA(image.Rect(0, 0, width, height)) }
}

// Returns the screen image. The canvas keeps drawing into it, so
// copy it if you need to preserve a given frame.
func (self *Canvas) Screen() *image.RGBA { return self.screen }

// Returns the number of images uploaded or created by this canvas
// that haven't been disposed yet.
func (self *Canvas) LiveImages() int { return self.live }

// Satisfies the [ImageSink] interface.
func (self *Canvas) Upload(pixels []byte, width, height int) (Image, error) {
	err := checkPixelCount(pixels, width, height)
	if err != nil { return nil, err }
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	self.live += 1
	return &canvasImage{ owner: self, pixels: img }, nil
}

// Creates a transparent image that can be used as an offscreen
// render target through [OffscreenTarget].
func (self *Canvas) NewOffscreen(width, height int) Image {
	self.live += 1
	return &canvasImage{
		owner: self,
		pixels: image.NewNRGBA(image.Rect(0, 0, width, height)),
		offscreen: true,
	}
}

// Sets the surface that subsequent Draw and Clear calls affect.
func (self *Canvas) SetTarget(target Target) error {
	if img, isOffscreen := target.Image(); isOffscreen {
		cimg, err := self.ownImage(img)
		if err != nil { return err }
		if !cimg.offscreen { return ErrNotOffscreen }
	}
	self.target = target
	return nil
}

// Returns the current render target.
func (self *Canvas) Target() Target { return self.target }

// Clears the current target to fully transparent pixels.
func (self *Canvas) Clear() error {
	dst, err := self.targetImage()
	if err != nil { return err }
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return nil
}

// Returns a copy of the pixels of an image created by this canvas.
func (self *Canvas) Snapshot(img Image) (*image.NRGBA, error) {
	cimg, err := self.ownImage(img)
	if err != nil { return nil, err }
	clone := image.NewNRGBA(cimg.pixels.Rect)
	copy(clone.Pix, cimg.pixels.Pix)
	return clone, nil
}

// Satisfies the [ImageSink] interface.
func (self *Canvas) Draw(img Image, x, y int, tint color.RGBA) error {
	src, err := self.ownImage(img)
	if err != nil { return err }
	dst, err := self.targetImage()
	if err != nil { return err }

	width, height := src.Size()
	if width == 0 || height == 0 { return nil }
	rect := image.Rect(x, y, x + width, y + height)
	if !rect.Overlaps(dst.Bounds()) { return nil }

	// scale the premultiplied source by the tint into the scratch buffer
	scratch := self.scratchBuffer(width, height)
	for i := 0; i < len(src.pixels.Pix); i += 4 {
		a := uint32(src.pixels.Pix[i + 3])
		r := uint32(src.pixels.Pix[i + 0])*a/255
		g := uint32(src.pixels.Pix[i + 1])*a/255
		b := uint32(src.pixels.Pix[i + 2])*a/255
		scratch.Pix[i + 0] = uint8(r*uint32(tint.R)/255)
		scratch.Pix[i + 1] = uint8(g*uint32(tint.G)/255)
		scratch.Pix[i + 2] = uint8(b*uint32(tint.B)/255)
		scratch.Pix[i + 3] = uint8(a*uint32(tint.A)/255)
	}
	draw.Draw(dst, rect, scratch, image.Point{}, draw.Over)
	return nil
}

func (self *Canvas) ownImage(img Image) (*canvasImage, error) {
	cimg, ok := img.(*canvasImage)
	if !ok || cimg.owner != self { return nil, ErrForeignImage }
	if cimg.disposed { return nil, ErrDisposed }
	return cimg, nil
}

func (self *Canvas) targetImage() (draw.Image, error) {
	img, isOffscreen := self.target.Image()
	if !isOffscreen {
		if self.screen == nil { return nil, ErrNoTarget }
		return self.screen, nil
	}
	cimg, err := self.ownImage(img)
	if err != nil { return nil, ErrNoTarget }
	return cimg.pixels, nil
}

func (self *Canvas) scratchBuffer(width, height int) *image.RGBA {
	if self.scratch == nil || cap(self.scratch.Pix) < width*height*4 {
		self.scratch = image.NewRGBA(image.Rect(0, 0, width, height))
		return self.scratch
	}
	self.scratch.Pix = self.scratch.Pix[ : width*height*4]
	self.scratch.Stride = width*4
	self.scratch.Rect = image.Rect(0, 0, width, height)
	return self.scratch
}
