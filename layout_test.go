package ftxt

import "image"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func pens(glyphs []PositionedGlyph) [][3]int {
	result := make([][3]int, len(glyphs))
	for i, glyph := range glyphs {
		result[i] = [3]int{glyph.PenX, glyph.PenY, glyph.Line}
	}
	return result
}

func chars(glyphs []PositionedGlyph) string {
	text := make([]byte, len(glyphs))
	for i, glyph := range glyphs { text[i] = glyph.Char }
	return string(text)
}

func TestLayoutLineBreak(t *testing.T) {
	font := newFakeEnv().font(14)
	glyphs := font.Layout("AB\nCD", 0, 0)
	require.Len(t, glyphs, 4)
	assert.Equal(t, "ABCD", chars(glyphs))
	assert.Equal(t, [][3]int{{0, 0, 0}, {7, 0, 0}, {0, 17, 1}, {7, 17, 1}}, pens(glyphs))

	// draw positions apply the bearings: (x + left, y + (size - top))
	assert.Equal(t, 1, glyphs[0].X)
	assert.Equal(t, 4, glyphs[0].Y)
	assert.Equal(t, 8, glyphs[3].X)
	assert.Equal(t, 21, glyphs[3].Y)
	assert.Equal(t, 17, font.LineHeight())
}

func TestLayoutStartOffset(t *testing.T) {
	font := newFakeEnv().font(20)
	glyphs := font.Layout("a\n\nb", 10, 5)
	require.Len(t, glyphs, 2)
	assert.Equal(t, [][3]int{{10, 5, 0}, {10, 55, 2}}, pens(glyphs))
}

func TestLayoutSkipsMissing(t *testing.T) {
	font := newFakeEnv().font(14)
	glyphs := font.Layout("A\x01B\x02", 0, 0)
	assert.Equal(t, "AB", chars(glyphs))
	assert.Equal(t, 7, glyphs[1].PenX)
	assert.Equal(t, 14, font.MeasureWidth("A\x01B\x02"))
}

func TestLayoutSpaces(t *testing.T) {
	font := newFakeEnv().font(14)
	glyphs := font.Layout("a b", 0, 0)
	require.Len(t, glyphs, 3)
	assert.Nil(t, glyphs[1].Image, "spaces have no image")
	assert.NotNil(t, glyphs[0].Image)
	assert.Equal(t, 11, glyphs[2].PenX)
}

func TestLayoutEmpty(t *testing.T) {
	font := newFakeEnv().font(14)
	assert.Empty(t, font.Layout("", 0, 0))
	assert.Empty(t, font.LayoutWrapped("", 0, 0, 100))
	assert.Empty(t, font.Layout("\x01\x02\x03", 0, 0))
	assert.Empty(t, font.LayoutWrapped("\x01\x02\n\x03", 0, 0, 1))
	assert.Equal(t, 0, font.MeasureWidth(""))
}

func TestAppendLayoutReusesBuffer(t *testing.T) {
	engine := NewLayoutEngine(newFakeEnv().font(14).store)
	buffer := make([]PositionedGlyph, 0, 16)
	buffer = engine.AppendLayout(buffer, "ab", 0, 0)
	buffer = engine.AppendLayoutWrapped(buffer, "cd", 0, 0, 100)
	assert.Equal(t, "abcd", chars(buffer))
	assert.Equal(t, 16, cap(buffer))
}

func TestMeasureWidthAdditivity(t *testing.T) {
	font := newFakeEnv().font(14)
	samples := []string{"", "a", "hello", " ", "world.", "A B C", "..."}
	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, font.MeasureWidth(a) + font.MeasureWidth(b), font.MeasureWidth(a + b), "%q + %q", a, b)
		}
	}
	assert.Equal(t, 39, font.MeasureWidth("hello "))
	assert.Equal(t, font.MeasureWidth("ab"), font.MeasureWidth("a\nb"), "line breaks must be skipped")
}

func TestLayoutWrappedHelloWorld(t *testing.T) {
	font := newFakeEnv().font(14)
	hello, world := font.MeasureWidth("hello "), font.MeasureWidth("world")
	combined := font.MeasureWidth("hello world")
	require.Equal(t, hello + world, combined)

	maxWidth := combined - 10
	require.Greater(t, maxWidth, hello)
	require.Greater(t, maxWidth, world)

	glyphs := font.LayoutWrapped("hello world", 0, 0, maxWidth)
	require.Len(t, glyphs, 11)
	var breaks int
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].Line != glyphs[i - 1].Line { breaks += 1 }
	}
	assert.Equal(t, 1, breaks)
	assert.Equal(t, 0, glyphs[5].Line, "the space stays with 'hello'")
	assert.Equal(t, [3]int{0, 17, 1}, pens(glyphs)[6], "'world' starts the second line")
}

func TestLayoutWrappedWordAtomicity(t *testing.T) {
	font := newFakeEnv().font(14)
	word := "extraordinarily"
	glyphs := font.LayoutWrapped(word, 0, 0, 20)
	require.Len(t, glyphs, len(word))
	x := 0
	for _, glyph := range glyphs {
		assert.Equal(t, glyphs[0].Line, glyph.Line, "words must not be split")
		assert.Equal(t, x, glyph.PenX)
		x += 7
	}

	// the check also applies at the start of the first line
	assert.Equal(t, 1, glyphs[0].Line)

	glyphs = font.LayoutWrapped("go extraordinarily far", 0, 0, 20)
	assert.Equal(t, []int{0, 0, 0}, []int{glyphs[0].Line, glyphs[1].Line, glyphs[2].Line})
	assert.Equal(t, 1, glyphs[3].Line)
	assert.Equal(t, 1, glyphs[len(glyphs) - 4].Line, "the trailing space stays on the long line")
	assert.Equal(t, 2, glyphs[len(glyphs) - 1].Line)
}

func TestLayoutWrappedBoundaryTie(t *testing.T) {
	font := newFakeEnv().font(14)
	width := font.MeasureWidth("ab")
	assert.Equal(t, 1, font.LayoutWrapped("ab", 0, 0, width)[0].Line, "reaching the limit wraps")
	assert.Equal(t, 0, font.LayoutWrapped("ab", 0, 0, width + 1)[0].Line)

	// limits are relative to the start x
	assert.Equal(t, 0, font.LayoutWrapped("ab", 100, 0, width + 1)[0].Line)
}

func TestLayoutWrappedExplicitBreaks(t *testing.T) {
	font := newFakeEnv().font(10)
	glyphs := font.LayoutWrapped("ab\ncd ef", 3, 0, 1000)
	assert.Equal(t, "abcd ef", chars(glyphs))
	assert.Equal(t, [3]int{3, 0, 0}, pens(glyphs)[0])
	assert.Equal(t, [3]int{3, 12, 1}, pens(glyphs)[2])
	assert.Equal(t, [3]int{21, 12, 1}, pens(glyphs)[5])
}

func TestLayoutWrappedPeriods(t *testing.T) {
	font := newFakeEnv().font(14)
	assert.Equal(t, "a.", nextWord("a.b"))
	assert.Equal(t, "ab ", nextWord("ab cd"))
	assert.Equal(t, "ab", nextWord("ab"))
	assert.Equal(t, "\n.", nextWord("\n.x"))

	// "ab." fits, "cd" doesn't
	glyphs := font.LayoutWrapped("ab.cd", 0, 0, 20)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, []int{glyphs[0].Line, glyphs[1].Line, glyphs[2].Line, glyphs[3].Line, glyphs[4].Line})
}

func TestMeasureWrapped(t *testing.T) {
	font := newFakeEnv().font(14)
	width, height := font.MeasureWrapped("hello world", 50)
	assert.Equal(t, 39, width)
	assert.Equal(t, 34, height)

	width, height = font.MeasureWrapped("hello world", 1000)
	assert.Equal(t, 74, width)
	assert.Equal(t, 17, height)

	width, height = font.MeasureWrapped("", 1000)
	assert.Zero(t, width)
	assert.Zero(t, height)

	// measures agree with the wrapped layout line count
	text := "the quick brown fox jumps over the lazy dog.\nagain."
	glyphs := font.LayoutWrapped(text, 0, 0, 60)
	_, height = font.MeasureWrapped(text, 60)
	assert.Equal(t, (glyphs[len(glyphs) - 1].Line + 1)*font.LineHeight(), height)
}

func TestBounds(t *testing.T) {
	font := newFakeEnv().font(14)
	assert.Equal(t, image.Rectangle{}, Bounds(nil))
	glyphs := font.Layout("ab\nc", 0, 0)
	// images are 6x10 at (x+1, y+4)
	assert.Equal(t, image.Rect(1, 4, 14, 31), Bounds(glyphs))
}
