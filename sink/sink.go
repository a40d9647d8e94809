package sink

import "fmt"
import "errors"
import "image/color"

// Returned when an image is drawn with a sink other than the one
// that uploaded it.
var ErrForeignImage = errors.New("sink: image doesn't belong to this sink")

// Returned when drawing or targeting an image that was already disposed.
var ErrDisposed = errors.New("sink: image already disposed")

// Returned when a render target is set to an image that wasn't
// created as an offscreen image.
var ErrNotOffscreen = errors.New("sink: image can't be used as a render target")

// Returned when the sink has no valid render target configured.
var ErrNoTarget = errors.New("sink: no valid render target")

// Returned by uploads when the pixel buffer doesn't match the
// given dimensions.
var ErrPixelCount = errors.New("sink: pixel buffer doesn't match image size")

// A drawable image handle created by an [ImageSink].
//
// Images are shared by every glyph record and draw call referencing
// them, and their owners decide when to Dispose them. Dispose must be
// safe to call more than once.
type Image interface {
	Size() (width, height int)
	Dispose()
}

// An ImageSink converts CPU pixel buffers into drawable images and
// draws them.
type ImageSink interface {
	// Creates an image from non-premultiplied RGBA pixels, 4 bytes
	// per pixel, row by row without padding.
	Upload(pixels []byte, width, height int) (Image, error)

	// Draws the image with its top-left corner at the given coordinates.
	// The tint is multiplied with the image colors, so a white image
	// takes the tint color exactly.
	Draw(img Image, x, y int, tint color.RGBA) error
}

// Converts a coverage bitmap into non-premultiplied RGBA pixels where
// every pixel is white and the alpha channel is the coverage value.
func CoverageToRGBA(coverage []byte) []byte {
	pixels := make([]byte, len(coverage)*4)
	for i, value := range coverage {
		offset := i*4
		pixels[offset + 0] = 255
		pixels[offset + 1] = 255
		pixels[offset + 2] = 255
		pixels[offset + 3] = value
	}
	return pixels
}

func checkPixelCount(pixels []byte, width, height int) error {
	if width < 0 || height < 0 || len(pixels) != width*height*4 {
		return fmt.Errorf("%w (%d bytes for %dx%d)", ErrPixelCount, len(pixels), width, height)
	}
	return nil
}
