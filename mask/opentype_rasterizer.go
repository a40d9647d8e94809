package mask

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*OpentypeRasterizer)(nil)

// A [Rasterizer] based on [golang.org/x/image/font/opentype] faces.
// Glyph masks from opentype faces are produced by the face itself,
// so hinting can be configured.
//
// The zero value is ready to use, with hinting disabled.
type OpentypeRasterizer struct {
	Hinting font.Hinting
}

type opentypeFace struct {
	font *opentype.Font
	face font.Face
	buffer sfnt.Buffer
	pixelSize int
}

func (self *opentypeFace) PixelSize() int { return self.pixelSize }
func (self *opentypeFace) Close() error {
	if self.face == nil { return nil }
	err := self.face.Close()
	self.face = nil
	return err
}

// Satisfies the [Rasterizer] interface.
func (self *OpentypeRasterizer) LoadFace(data []byte, faceIndex int, pixelSize int) (Face, error) {
	if pixelSize <= 0 { return nil, ErrInvalidSize }
	collection, err := opentype.ParseCollection(data)
	if err != nil { return nil, err }
	if faceIndex < 0 || faceIndex >= collection.NumFonts() { return nil, ErrFaceIndex }
	parsed, err := collection.Font(faceIndex)
	if err != nil { return nil, err }

	// at 72 DPI, points and pixels match
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: float64(pixelSize),
		DPI: 72,
		Hinting: self.Hinting,
	})
	if err != nil { return nil, err }
	return &opentypeFace{ font: parsed, face: face, pixelSize: pixelSize }, nil
}

// Satisfies the [Rasterizer] interface.
func (self *OpentypeRasterizer) Rasterize(face Face, codePoint rune) (Glyph, error) {
	oface, ok := face.(*opentypeFace)
	if !ok || oface.face == nil { return Glyph{}, ErrForeignFace }

	// opentype faces fall back to the notdef glyph, so
	// missing glyphs have to be detected beforehand
	index, err := oface.font.GlyphIndex(&oface.buffer, codePoint)
	if err != nil { return Glyph{}, err }
	if index == 0 { return Glyph{}, ErrMissingGlyph }

	rect, mask, maskPoint, advance, ok := oface.face.Glyph(fixed.Point26_6{}, codePoint)
	if !ok { return Glyph{}, ErrMissingGlyph }

	// the mask contents may change on the next Glyph() call, copy them
	glyph := Glyph{ Advance: advance, Left: rect.Min.X, Top: -rect.Min.Y }
	width, height := rect.Dx(), rect.Dy()
	if width <= 0 || height <= 0 { return Glyph{ Advance: advance }, nil }
	coverage := make([]byte, width*height)
	alpha, isAlpha := mask.(*image.Alpha)
	for y := 0; y < height; y++ {
		row := coverage[y*width : (y + 1)*width]
		if isAlpha {
			offset := alpha.PixOffset(maskPoint.X, maskPoint.Y + y)
			copy(row, alpha.Pix[offset : offset + width])
			continue
		}
		for x := 0; x < width; x++ {
			_, _, _, a := mask.At(maskPoint.X + x, maskPoint.Y + y).RGBA()
			row[x] = uint8(a >> 8)
		}
	}
	glyph.Bitmap = Bitmap{ Width: width, Rows: height, Coverage: coverage }
	return glyph, nil
}
