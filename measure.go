package ftxt

import "image"

// Returns the sum of the advances of all the characters in the text
// that have a glyph. Line breaks are ignored, so for multiline text
// this is not the width of the widest line.
func (self *LayoutEngine) MeasureWidth(text string) int {
	var width int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' { continue }
		glyph, found := self.source.FindOrLoad(text[i])
		if found { width += int(glyph.AdvanceX) }
	}
	return width
}

// Returns the width of the widest line and the total height of the
// text when laid out with [LayoutEngine.LayoutWrapped](). The height
// is the number of lines times the line height, and it's zero only
// for empty text.
func (self *LayoutEngine) MeasureWrapped(text string, maxWidth int) (width, height int) {
	if len(text) == 0 { return 0, 0 }

	var x, widest int
	lines := 1
	for len(text) > 0 {
		word := nextWord(text)
		text = text[len(word) : ]
		if x + self.MeasureWidth(word) >= maxWidth {
			x = 0
			lines += 1
		}
		for i := 0; i < len(word); i++ {
			if word[i] == '\n' {
				x = 0
				lines += 1
				continue
			}
			glyph, found := self.source.FindOrLoad(word[i])
			if found { x += int(glyph.AdvanceX) }
			widest = max(widest, x)
		}
	}
	return widest, lines*self.LineHeight()
}

// Returns the smallest rectangle containing the images of all the
// given glyphs. Glyphs without images are ignored.
func Bounds(glyphs []PositionedGlyph) image.Rectangle {
	var bounds image.Rectangle
	for _, glyph := range glyphs {
		if glyph.Image == nil { continue }
		w, h := glyph.Image.Size()
		bounds = bounds.Union(image.Rect(glyph.X, glyph.Y, glyph.X + w, glyph.Y + h))
	}
	return bounds
}
