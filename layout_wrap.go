package ftxt

import "strings"

// Same as [LayoutEngine.Layout](), but wrapping lines greedily so they
// fit within maxWidth whenever possible.
//
// Text is split into words, each ending right after the next space or
// period. Before placing a word, if the current x plus the word width
// would reach x + maxWidth or beyond, the line is broken. Words are
// never split, so a word wider than maxWidth overflows on its own line.
// Explicit line breaks inside a word still break the line.
func (self *LayoutEngine) LayoutWrapped(text string, x, y, maxWidth int) []PositionedGlyph {
	return self.AppendLayoutWrapped(nil, text, x, y, maxWidth)
}

// Same as [LayoutEngine.LayoutWrapped](), but appending the results
// to the given buffer.
func (self *LayoutEngine) AppendLayoutWrapped(buffer []PositionedGlyph, text string, x, y, maxWidth int) []PositionedGlyph {
	cursor := self.newCursor(x, y)
	limit := x + maxWidth
	for len(text) > 0 {
		word := nextWord(text)
		text = text[len(word) : ]
		if cursor.x + self.MeasureWidth(word) >= limit { cursor.breakLine() }
		for i := 0; i < len(word); i++ {
			buffer = self.appendChar(buffer, &cursor, word[i])
		}
	}
	return buffer
}

// Returns the text up to and including the next space or period,
// or the whole text if there are none.
func nextWord(text string) string {
	end := strings.IndexAny(text, " .")
	if end == -1 { return text }
	return text[ : end + 1]
}
