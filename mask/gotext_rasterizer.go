package mask

import "bytes"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

import "github.com/go-text/typesetting/font"
import ot "github.com/go-text/typesetting/font/opentype"

var _ Rasterizer = (*GoTextRasterizer)(nil)

// A [Rasterizer] that parses fonts with [github.com/go-text/typesetting]
// and rasterizes their outlines with [golang.org/x/image/vector].
// Only outline glyphs are supported; bitmap and SVG glyphs report
// [ErrUnsupportedGlyph].
//
// The zero value is ready to use.
type GoTextRasterizer struct{}

type gotextFace struct {
	face *font.Face
	scale float32 // font units to pixels
	pixelSize int
	path outline
	rasterizer vector.Rasterizer
}

func (self *gotextFace) PixelSize() int { return self.pixelSize }
func (self *gotextFace) Close() error {
	self.face = nil
	return nil
}

// Satisfies the [Rasterizer] interface. The data may be a single font
// or a font collection.
func (self *GoTextRasterizer) LoadFace(data []byte, faceIndex int, pixelSize int) (Face, error) {
	if pixelSize <= 0 { return nil, ErrInvalidSize }
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil { return nil, err }
	if faceIndex < 0 || faceIndex >= len(faces) { return nil, ErrFaceIndex }
	face := faces[faceIndex]
	upem := face.Upem()
	if upem == 0 { upem = 1000 }
	return &gotextFace{
		face: face,
		scale: float32(pixelSize)/float32(upem),
		pixelSize: pixelSize,
	}, nil
}

// Satisfies the [Rasterizer] interface.
func (self *GoTextRasterizer) Rasterize(face Face, codePoint rune) (Glyph, error) {
	gface, ok := face.(*gotextFace)
	if !ok || gface.face == nil { return Glyph{}, ErrForeignFace }

	gid, found := gface.face.NominalGlyph(codePoint)
	if !found || gid == 0 { return Glyph{}, ErrMissingGlyph }
	data, isOutline := gface.face.GlyphData(gid).(font.GlyphOutline)
	if !isOutline { return Glyph{}, ErrUnsupportedGlyph }

	scale := gface.scale
	advance := fixed.Int26_6(gface.face.HorizontalAdvance(gid)*scale*64)

	// font units have the Y axis growing upwards, flip it
	convert := func(p ot.SegmentPoint) point {
		return point{ X: p.X*scale, Y: -p.Y*scale }
	}
	gface.path.Reset()
	for _, segment := range data.Segments {
		switch segment.Op {
		case ot.SegmentOpMoveTo:
			gface.path.MoveTo(convert(segment.Args[0]))
		case ot.SegmentOpLineTo:
			gface.path.LineTo(convert(segment.Args[0]))
		case ot.SegmentOpQuadTo:
			gface.path.QuadTo(convert(segment.Args[0]), convert(segment.Args[1]))
		case ot.SegmentOpCubeTo:
			gface.path.CubeTo(convert(segment.Args[0]), convert(segment.Args[1]), convert(segment.Args[2]))
		}
	}

	bitmap, left, top := gface.path.rasterize(&gface.rasterizer)
	return Glyph{ Bitmap: bitmap, Advance: advance, Left: left, Top: top }, nil
}
