package font

import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/text/encoding/charmap"

var ErrNotFound = errors.New("font property not found or empty")

// sfnt.Buffers can't be used concurrently, so calls take one from the pool
var sfntBuffers = sync.Pool{ New: func() any { return &sfnt.Buffer{} } }

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := sfntBuffers.Get().(*sfnt.Buffer)
	defer sfntBuffers.Put(buffer)
	str, err := font.Name(buffer, property)
	if errors.Is(err, sfnt.ErrNotFound) { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font. If the information is
// missing, [ErrNotFound] will be returned. Other errors are also
// possible (e.g., if the font naming table is invalid).
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of Regular, Italic, Bold or Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font. If the information is
// missing, [ErrNotFound] will be returned.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the unique identifier of the given font.
func GetIdentifier(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDUniqueIdentifier)
}

// Returns the runes in the given text that can't be represented by the
// font. If runes are repeated in the input text, the returned slice may
// contain them multiple times too.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := sfntBuffers.Get().(*sfnt.Buffer)
	defer sfntBuffers.Put(buffer)

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}

// Like [GetMissingRunes](), but for single-byte text: each byte of the
// text is decoded with the given code page before looking for its glyph.
// Line breaks are never reported as missing.
//
// If you load fonts dynamically, this is a good way to make sure that
// they include all the characters that you require.
func GetMissingChars(font *sfnt.Font, text string, codePage *charmap.Charmap) ([]byte, error) {
	buffer := sfntBuffers.Get().(*sfnt.Buffer)
	defer sfntBuffers.Put(buffer)

	missing := make([]byte, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' { continue }
		index, err := font.GlyphIndex(buffer, codePage.DecodeByte(text[i]))
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, text[i]) }
	}
	return missing, nil
}
