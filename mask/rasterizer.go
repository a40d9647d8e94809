package mask

import "errors"

import "golang.org/x/image/math/fixed"

// Returned by [Rasterizer.Rasterize] when the face has no glyph
// for the requested character.
var ErrMissingGlyph = errors.New("mask: glyph not found in face")

// Returned by [Rasterizer.LoadFace] when the pixel size is not positive.
var ErrInvalidSize = errors.New("mask: pixel size must be positive")

// Returned by [Rasterizer.LoadFace] when the face index is out of range
// for the given font data.
var ErrFaceIndex = errors.New("mask: face index out of range")

// Returned when a face created by one rasterizer is passed to a
// different rasterizer implementation.
var ErrForeignFace = errors.New("mask: face doesn't belong to this rasterizer")

// Returned when a glyph exists but has no outline that can be
// rasterized (e.g. bitmap or SVG glyphs).
var ErrUnsupportedGlyph = errors.New("mask: glyph format not supported")

// An 8-bit coverage bitmap. Coverage is stored row by row, without
// padding, so len(Coverage) == Width*Rows. Empty glyphs like spaces
// have zero size and a nil buffer.
type Bitmap struct {
	Width int
	Rows int
	Coverage []byte
}

// Returns whether the bitmap has no pixels.
func (self Bitmap) Empty() bool {
	return self.Width <= 0 || self.Rows <= 0
}

// A rasterized glyph with its metrics at the face's pixel size.
//
// Left is the horizontal offset from the pen position to the left
// column of the bitmap, and Top is the distance from the baseline up
// to the top row of the bitmap (positive above the baseline).
type Glyph struct {
	Bitmap
	Advance fixed.Int26_6 // horizontal pen advance
	Left int
	Top int
}

// Returns the advance in integer pixels, truncating the fractional part.
func (self Glyph) AdvancePx() int {
	return int(self.Advance >> 6)
}

// A font face loaded at a fixed pixel size. Faces can't be used
// concurrently.
type Face interface {
	// Returns the pixel size the face was loaded with.
	PixelSize() int

	// Releases any resources held by the face. The face can't
	// be used afterwards.
	Close() error
}

// A Rasterizer loads font faces from in-memory font data and rasterizes
// characters into coverage bitmaps.
//
// The font data passed to LoadFace must not be modified while the face
// is in use: implementations may read from it lazily.
type Rasterizer interface {
	// Parses the given font data and selects the face at the given
	// index (0 for regular font files, any valid index for collections)
	// at the given pixel size.
	LoadFace(data []byte, faceIndex int, pixelSize int) (Face, error)

	// Rasterizes the given character using the given face. If the face
	// doesn't contain the character, [ErrMissingGlyph] is returned.
	Rasterize(face Face, codePoint rune) (Glyph, error)
}
