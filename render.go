package ftxt

import "image/color"

import "github.com/tinne26/ftxt/sink"

// Draws the text with [Font.Layout]() on the given target, or on the
// resources' sink if the target is nil. Glyph draw failures don't stop
// the render; they are collected and returned as a [*DrawError].
//
// The target must be able to draw images uploaded through the font
// resources; usually it's the resources' sink itself.
func (self *Font) Render(target sink.ImageSink, x, y int, tint color.RGBA, text string) error {
	if !self.IsValid() { return ErrInvalidFont }
	return self.draw(target, self.engine.Layout(text, x, y), tint)
}

// Same as [Font.Render](), but using [Font.LayoutWrapped]().
func (self *Font) RenderWrapped(target sink.ImageSink, x, y int, tint color.RGBA, text string, maxWidth int) error {
	if !self.IsValid() { return ErrInvalidFont }
	return self.draw(target, self.engine.LayoutWrapped(text, x, y, maxWidth), tint)
}

func (self *Font) draw(target sink.ImageSink, glyphs []PositionedGlyph, tint color.RGBA) error {
	if target == nil { target = self.res.sink }
	return DrawGlyphs(target, glyphs, tint)
}

// Draws the given glyphs on the target. Glyphs without images are
// skipped. If any draw fails, a [*DrawError] is returned after
// attempting all the others.
func DrawGlyphs(target sink.ImageSink, glyphs []PositionedGlyph, tint color.RGBA) error {
	var drawErr *DrawError
	var attempted int
	for _, glyph := range glyphs {
		if glyph.Image == nil { continue }
		attempted += 1
		err := target.Draw(glyph.Image, glyph.X, glyph.Y, tint)
		if err == nil { continue }
		if drawErr == nil { drawErr = &DrawError{} }
		drawErr.Failed += 1
		drawErr.causes = append(drawErr.causes, err)
		Logger().Warn("ftxt: glyph draw failed", "char", glyph.Char, "x", glyph.X, "y", glyph.Y, "err", err)
	}
	if drawErr == nil { return nil }
	drawErr.Attempted = attempted
	return drawErr
}
