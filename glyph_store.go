package ftxt

import "errors"

import "github.com/tinne26/ftxt/mask"
import "github.com/tinne26/ftxt/sink"
import "github.com/tinne26/ftxt/rescache"

// A rasterized glyph for one character at one pixel size. Records are
// immutable once created. Empty glyphs like spaces have a nil Image.
type GlyphRecord struct {
	AdvanceX int16 // pen advance, in whole pixels
	Top int16 // distance from the baseline up to the top of the image
	Left int16 // distance from the pen position to the left of the image
	Image *rescache.Ref[sink.Image]
}

// Returns the shared image for the glyph, or nil for empty glyphs.
func (self GlyphRecord) Handle() sink.Image {
	if self.Image == nil { return nil }
	return self.Image.Value()
}

// A GlyphStore resolves character codes into [GlyphRecord] values for
// a single font face, rasterizing each character the first time it's
// requested and keeping the resulting record for the store's lifetime.
//
// Glyph images are obtained from the shared image cache of the store's
// [Resources], so stores for different fonts may end up sharing them.
// Stores can't be used concurrently.
type GlyphStore struct {
	res *Resources
	face mask.Face
	pixelSize int
	scope string
	glyphs map[byte]GlyphRecord
	missing [256]bool // chars the face has no glyph for
}

// Creates a glyph store for the given face. The scope identifies the
// face in image keys when [WithFontScopedImageKeys] is used.
func NewGlyphStore(res *Resources, face mask.Face, pixelSize int, scope string) *GlyphStore {
	return &GlyphStore{
		res: res,
		face: face,
		pixelSize: pixelSize,
		scope: scope,
		glyphs: make(map[byte]GlyphRecord, 64),
	}
}

// Returns the pixel size of the store's face.
func (self *GlyphStore) PixelSize() int { return self.pixelSize }

// Returns the number of glyph records currently stored.
func (self *GlyphStore) Len() int { return len(self.glyphs) }

// Returns the record for the given character code, rasterizing it if
// necessary. If the face has no glyph for the character, or rasterizing
// or uploading it fails, the second return value will be false and the
// character should be skipped.
func (self *GlyphStore) FindOrLoad(charCode byte) (GlyphRecord, bool) {
	record, found := self.glyphs[charCode]
	if found { return record, true }
	if self.face == nil || self.missing[charCode] { return GlyphRecord{}, false }

	codePoint := self.res.codePage.DecodeByte(charCode)
	glyph, err := self.res.rasterizer.Rasterize(self.face, codePoint)
	if err != nil {
		if errors.Is(err, mask.ErrMissingGlyph) { self.missing[charCode] = true }
		Logger().Debug("ftxt: glyph not available", "char", charCode, "rune", codePoint, "err", err)
		return GlyphRecord{}, false
	}

	record = GlyphRecord{
		AdvanceX: int16(glyph.AdvancePx()),
		Top: int16(glyph.Top),
		Left: int16(glyph.Left),
	}
	if !glyph.Bitmap.Empty() {
		record.Image = self.res.glyphImage(self.scope, charCode, self.pixelSize, glyph.Bitmap)
		if record.Image == nil { return GlyphRecord{}, false }
	}
	self.glyphs[charCode] = record
	return record, true
}

// Releases the image references held by the store and forgets all its
// records. The store can still be used afterwards, but glyphs will have
// to be rasterized again.
func (self *GlyphStore) Release() {
	for charCode, record := range self.glyphs {
		if record.Image != nil { record.Image.Release() }
		delete(self.glyphs, charCode)
	}
	self.missing = [256]bool{}
}
