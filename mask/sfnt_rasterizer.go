package mask

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

var _ Rasterizer = (*SfntRasterizer)(nil)

// A [Rasterizer] that parses fonts with [golang.org/x/image/font/sfnt]
// and rasterizes glyph outlines with [golang.org/x/image/vector].
//
// The zero value is ready to use.
type SfntRasterizer struct{}

type sfntFace struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	ppem fixed.Int26_6
	pixelSize int
	path outline
	rasterizer vector.Rasterizer
}

func (self *sfntFace) PixelSize() int { return self.pixelSize }
func (self *sfntFace) Close() error {
	self.font = nil
	return nil
}

// Satisfies the [Rasterizer] interface. The data may be a single font
// or a font collection.
func (self *SfntRasterizer) LoadFace(data []byte, faceIndex int, pixelSize int) (Face, error) {
	if pixelSize <= 0 { return nil, ErrInvalidSize }
	collection, err := sfnt.ParseCollection(data)
	if err != nil { return nil, err }
	if faceIndex < 0 || faceIndex >= collection.NumFonts() { return nil, ErrFaceIndex }
	parsed, err := collection.Font(faceIndex)
	if err != nil { return nil, err }
	return &sfntFace{ font: parsed, ppem: fixed.I(pixelSize), pixelSize: pixelSize }, nil
}

// Satisfies the [Rasterizer] interface.
func (self *SfntRasterizer) Rasterize(face Face, codePoint rune) (Glyph, error) {
	sface, ok := face.(*sfntFace)
	if !ok || sface.font == nil { return Glyph{}, ErrForeignFace }

	index, err := sface.font.GlyphIndex(&sface.buffer, codePoint)
	if err != nil { return Glyph{}, err }
	if index == 0 { return Glyph{}, ErrMissingGlyph }

	// the advance must be queried before loading the outline, as the
	// segments returned by LoadGlyph live in the shared buffer
	advance, err := sface.font.GlyphAdvance(&sface.buffer, index, sface.ppem, font.HintingNone)
	if err != nil { return Glyph{}, err }
	segments, err := sface.font.LoadGlyph(&sface.buffer, index, sface.ppem, nil)
	if err != nil { return Glyph{}, err }

	sface.path.Reset()
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			sface.path.MoveTo(fixedToPoint(segment.Args[0]))
		case sfnt.SegmentOpLineTo:
			sface.path.LineTo(fixedToPoint(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			sface.path.QuadTo(fixedToPoint(segment.Args[0]), fixedToPoint(segment.Args[1]))
		case sfnt.SegmentOpCubeTo:
			sface.path.CubeTo(
				fixedToPoint(segment.Args[0]),
				fixedToPoint(segment.Args[1]),
				fixedToPoint(segment.Args[2]),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}

	bitmap, left, top := sface.path.rasterize(&sface.rasterizer)
	return Glyph{ Bitmap: bitmap, Advance: advance, Left: left, Top: top }, nil
}

func fixedToPoint(p fixed.Point26_6) point {
	return point{ X: float32(p.X)/64, Y: float32(p.Y)/64 }
}
