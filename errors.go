package ftxt

import "fmt"
import "errors"

// Returned by font constructors when the font can't be loaded, and by
// render operations on fonts in that state. Construction errors wrap
// both this error and the underlying cause.
var ErrInvalidFont = errors.New("ftxt: invalid font")

// Returned by font constructors when the font data is empty.
var ErrEmptyFontData = errors.New("ftxt: empty font data")

// Returned by render operations when some glyph draws fail. The
// remaining glyphs are still drawn. DrawError unwraps into each of
// the draw errors, so [errors.Is] can be used to look for a specific
// cause like [sink.ErrNoTarget].
type DrawError struct {
	Failed int // number of glyph draws that failed
	Attempted int // number of glyph draws attempted
	causes []error
}

func (self *DrawError) Error() string {
	return fmt.Sprintf(
		"ftxt: %d of %d glyph draws failed: %s",
		self.Failed, self.Attempted, errors.Join(self.causes...),
	)
}

func (self *DrawError) Unwrap() []error { return self.causes }

func invalidFontErr(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidFont, cause)
}
