package font

import "io"
import "io/fs"
import "os"
import "fmt"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Returned when reading or parsing from a path without a
// .ttf, .otf, .ttc or .otc extension.
var ErrInvalidPath = errors.New("invalid font path")

// Returned when the font data is empty.
var ErrEmptyData = errors.New("empty font data")

// Reads the font file at the given path. Supported extensions are
// .ttf, .otf and their collection variants .ttc and .otc.
//
// The file is read in full with a single blocking operation, and the
// contents are not validated beyond being non-empty.
func ReadFile(path string) ([]byte, error) {
	if !hasValidFontExtension(path) { return nil, invalidPathErr(path) }
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return readAndClose(file)
}

// Same as [ReadFile](), but for filesystems like [embed.FS].
func ReadFileFS(filesys fs.FS, path string) ([]byte, error) {
	if !hasValidFontExtension(path) { return nil, invalidPathErr(path) }
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return readAndClose(file)
}

// Parses the face at the given index from the given font data, which
// may be a single font or a collection, and returns it along its name.
// The bytes must not be modified while the font is in use.
func ParseFromBytes(data []byte, faceIndex int) (*sfnt.Font, string, error) {
	if len(data) == 0 { return nil, "", ErrEmptyData }
	collection, err := sfnt.ParseCollection(data)
	if err != nil { return nil, "", err }
	if faceIndex < 0 || faceIndex >= collection.NumFonts() {
		return nil, "", fmt.Errorf("face index %d out of range [0, %d)", faceIndex, collection.NumFonts())
	}
	parsed, err := collection.Font(faceIndex)
	if err != nil { return nil, "", err }
	name, err := GetName(parsed)
	return parsed, name, err
}

// Reads and parses the first face of the font file at the given path.
// The font data is returned too, as rasterizers need it.
func ParseFromPath(path string) (*sfnt.Font, []byte, string, error) {
	data, err := ReadFile(path)
	if err != nil { return nil, nil, "", err }
	parsed, name, err := ParseFromBytes(data, 0)
	return parsed, data, name, err
}

// Same as [ParseFromPath](), but for filesystems like [embed.FS].
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, []byte, string, error) {
	data, err := ReadFileFS(filesys, path)
	if err != nil { return nil, nil, "", err }
	parsed, name, err := ParseFromBytes(data, 0)
	return parsed, data, name, err
}

// ---- helpers ----

func invalidPathErr(path string) error {
	return fmt.Errorf("%w '%s'", ErrInvalidPath, path)
}

func readAndClose(file io.ReadCloser) ([]byte, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	if len(data) == 0 { return nil, ErrEmptyData }
	return data, nil
}

// Whether the font path ends in .ttf, .otf, .ttc or .otc.
// Extensions are case insensitive.
func hasValidFontExtension(path string) bool {
	if len(path) < 5 { return false } // at least one char for the name
	ext := strings.ToLower(path[len(path) - 4 : ])
	switch ext {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	default:
		return false
	}
}
