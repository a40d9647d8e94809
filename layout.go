package ftxt

import "github.com/tinne26/ftxt/sink"

// A GlyphSource provides glyph records for a layout engine.
// [*GlyphStore] is the main implementation.
type GlyphSource interface {
	FindOrLoad(charCode byte) (GlyphRecord, bool)
	PixelSize() int
}

// A glyph draw instruction produced by a [LayoutEngine].
type PositionedGlyph struct {
	Char byte
	X, Y int // top-left corner of the glyph image
	PenX, PenY int // cursor position before the glyph
	Line int // zero-based, counting both explicit and wrap line breaks
	Image sink.Image // nil for empty glyphs
}

// A LayoutEngine turns text into positioned glyphs. Each byte of the
// text is a character, with '\n' as the only line break marker.
//
// The engine holds no state besides its glyph source, but the source
// itself usually can't be used concurrently.
type LayoutEngine struct {
	source GlyphSource
}

// Creates a layout engine for the given glyph source.
func NewLayoutEngine(source GlyphSource) *LayoutEngine {
	return &LayoutEngine{ source: source }
}

// Returns the line advance, which is always the pixel size plus a
// quarter of it, rounded down.
func (self *LayoutEngine) LineHeight() int {
	size := self.source.PixelSize()
	return size + size/4
}

// Lays out the text with its first line starting at the given
// position. Lines only break on explicit line breaks, and characters
// without a glyph are skipped.
func (self *LayoutEngine) Layout(text string, x, y int) []PositionedGlyph {
	return self.AppendLayout(nil, text, x, y)
}

// Same as [LayoutEngine.Layout](), but appending the results to the
// given buffer.
func (self *LayoutEngine) AppendLayout(buffer []PositionedGlyph, text string, x, y int) []PositionedGlyph {
	cursor := self.newCursor(x, y)
	for i := 0; i < len(text); i++ {
		buffer = self.appendChar(buffer, &cursor, text[i])
	}
	return buffer
}

// transient pen state for a single layout call
type layoutCursor struct {
	startX int
	x, y int
	line int
	lineHeight int
}

func (self *LayoutEngine) newCursor(x, y int) layoutCursor {
	return layoutCursor{ startX: x, x: x, y: y, lineHeight: self.LineHeight() }
}

func (self *layoutCursor) breakLine() {
	self.x = self.startX
	self.y += self.lineHeight
	self.line += 1
}

func (self *LayoutEngine) appendChar(buffer []PositionedGlyph, cursor *layoutCursor, charCode byte) []PositionedGlyph {
	if charCode == '\n' {
		cursor.breakLine()
		return buffer
	}

	glyph, found := self.source.FindOrLoad(charCode)
	if !found { return buffer }
	buffer = append(buffer, PositionedGlyph{
		Char: charCode,
		X: cursor.x + int(glyph.Left),
		Y: cursor.y + self.source.PixelSize() - int(glyph.Top),
		PenX: cursor.x,
		PenY: cursor.y,
		Line: cursor.line,
		Image: glyph.Handle(),
	})
	cursor.x += int(glyph.AdvanceX)
	return buffer
}
