package ftxt

import "fmt"
import "io/fs"
import "hash/fnv"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ftxt/mask"
import "github.com/tinne26/ftxt/font"

// A Font is a font face loaded at a fixed pixel size, together with the
// glyphs rasterized for it so far.
//
// Fonts returned by the constructors are never nil. If construction
// fails, the font is invalid: [Font.IsValid]() returns false, layouts
// are empty, widths are zero and renders return [ErrInvalidFont].
//
// Fonts can't be used concurrently.
type Font struct {
	res *Resources
	data []byte // referenced for the face lifetime, rasterizers may read it lazily
	face mask.Face
	parsed *sfnt.Font
	name string
	pixelSize int
	store *GlyphStore
	engine *LayoutEngine
	err error
}

// Reads the font file at the given path and loads its first face at
// the given pixel size. The file is read once, with a blocking read.
func OpenFont(res *Resources, path string, pixelSize int) (*Font, error) {
	data, err := font.ReadFile(path)
	if err != nil { return newInvalidFont(res, pixelSize, err) }
	return NewFontFromBytes(res, data, 0, pixelSize)
}

// Same as [OpenFont](), but for filesystems like [embed.FS].
func OpenFontFS(res *Resources, filesys fs.FS, path string, pixelSize int) (*Font, error) {
	data, err := font.ReadFileFS(filesys, path)
	if err != nil { return newInvalidFont(res, pixelSize, err) }
	return NewFontFromBytes(res, data, 0, pixelSize)
}

// Loads the font with the given name from the library at the given
// pixel size.
func OpenFontFromLibrary(res *Resources, library *font.Library, name string, pixelSize int) (*Font, error) {
	data := library.GetData(name)
	if data == nil {
		return newInvalidFont(res, pixelSize, fmt.Errorf("font '%s' not found in library", name))
	}
	return NewFontFromBytes(res, data, 0, pixelSize)
}

// Loads the face at the given index from the given font data, which
// may be a single font or a collection. The data must not be modified
// while the font is in use.
func NewFontFromBytes(res *Resources, data []byte, faceIndex int, pixelSize int) (*Font, error) {
	if len(data) == 0 { return newInvalidFont(res, pixelSize, ErrEmptyFontData) }
	face, err := res.rasterizer.LoadFace(data, faceIndex, pixelSize)
	if err != nil { return newInvalidFont(res, pixelSize, err) }

	// names are informative, fonts without a valid name table are still usable
	parsed, name, err := font.ParseFromBytes(data, faceIndex)
	if err != nil {
		Logger().Debug("ftxt: font name not available", "err", err)
		name = ""
	}

	self := &Font{
		res: res,
		data: data,
		face: face,
		parsed: parsed,
		name: name,
		pixelSize: pixelSize,
	}
	self.store = NewGlyphStore(res, face, pixelSize, faceScope(data, faceIndex))
	self.engine = NewLayoutEngine(self.store)
	return self, nil
}

func newInvalidFont(res *Resources, pixelSize int, cause error) (*Font, error) {
	err := invalidFontErr(cause)
	Logger().Warn("ftxt: font construction failed", "pixelSize", pixelSize, "err", cause)
	return &Font{ res: res, pixelSize: pixelSize, err: err }, err
}

// identifies the face by its contents, so equal files share a scope
func faceScope(data []byte, faceIndex int) string {
	hash := fnv.New64a()
	_, _ = hash.Write(data)
	return fmt.Sprintf("%016x.%d", hash.Sum64(), faceIndex)
}

// Returns whether the font was loaded successfully and hasn't been closed.
func (self *Font) IsValid() bool { return self.face != nil }

// Returns the error that made the font invalid, if any.
func (self *Font) Err() error { return self.err }

// Returns the pixel size the font was loaded with.
func (self *Font) PixelSize() int { return self.pixelSize }

// Returns the line advance, the pixel size plus a quarter of it.
func (self *Font) LineHeight() int { return self.pixelSize + self.pixelSize/4 }

// Returns the full name of the font, or an empty string if unknown.
func (self *Font) Name() string { return self.name }

// Returns the resources the font was created with.
func (self *Font) Resources() *Resources { return self.res }

// Returns the glyph record for the given character code. See
// [GlyphStore.FindOrLoad]() for details.
func (self *Font) Glyph(charCode byte) (GlyphRecord, bool) {
	if !self.IsValid() { return GlyphRecord{}, false }
	return self.store.FindOrLoad(charCode)
}

// Returns the characters in the text the font has no glyph for, after
// decoding them with the resources' code page. Line breaks are never
// reported.
func (self *Font) MissingChars(text string) ([]byte, error) {
	if !self.IsValid() { return nil, ErrInvalidFont }
	if self.parsed == nil { return nil, fmt.Errorf("ftxt: font '%s' can't be inspected", self.name) }
	return font.GetMissingChars(self.parsed, text, self.res.codePage)
}

// See [LayoutEngine.Layout]().
func (self *Font) Layout(text string, x, y int) []PositionedGlyph {
	if !self.IsValid() { return nil }
	return self.engine.Layout(text, x, y)
}

// See [LayoutEngine.LayoutWrapped]().
func (self *Font) LayoutWrapped(text string, x, y, maxWidth int) []PositionedGlyph {
	if !self.IsValid() { return nil }
	return self.engine.LayoutWrapped(text, x, y, maxWidth)
}

// See [LayoutEngine.MeasureWidth]().
func (self *Font) MeasureWidth(text string) int {
	if !self.IsValid() { return 0 }
	return self.engine.MeasureWidth(text)
}

// See [LayoutEngine.MeasureWrapped]().
func (self *Font) MeasureWrapped(text string, maxWidth int) (width, height int) {
	if !self.IsValid() { return 0, 0 }
	return self.engine.MeasureWrapped(text, maxWidth)
}

// Releases the font glyphs and face. Glyph images still referenced by
// other fonts stay alive. The font becomes invalid after closing.
func (self *Font) Close() error {
	if self.face == nil { return nil }
	self.store.Release()
	err := self.face.Close()
	self.face = nil
	self.parsed = nil
	self.data = nil
	self.err = ErrInvalidFont
	return err
}
