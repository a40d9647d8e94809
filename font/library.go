package font

import "io/fs"
import "errors"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// A collection of fonts accessible by name, together with the raw
// data they were parsed from.
//
// The goal of a library is to make it easy to load fonts in bulk
// and keep them all in a single place. Libraries can't be used
// concurrently.
type Library struct {
	fonts map[string]libraryEntry
}

type libraryEntry struct {
	font *sfnt.Font
	data []byte
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{ fonts: make(map[string]libraryEntry) }
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
//
// If you don't know the names of your fonts, add them to a library
// and print them with [Library.EachFont](), or use [GetName]().
func (self *Library) GetFont(name string) *sfnt.Font {
	return self.fonts[name].font
}

// Returns the data of the font with the given name, or nil if not
// found. The data must not be modified.
func (self *Library) GetData(name string) []byte {
	return self.fonts[name].data
}

// Adds the given font data into the library and returns the font
// name and any possible error. If another font with the same name
// was already present, [ErrAlreadyPresent] will be returned. The
// bytes must not be modified afterwards.
func (self *Library) ParseFromBytes(data []byte) (string, error) {
	font, name, err := ParseFromBytes(data, 0)
	if err != nil { return name, err }
	return name, self.addNewFont(font, data, name)
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Reads the font at the given path and adds it to the library.
// If a font with the same name has already been added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, data, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, data, name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, data, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, data, name)
}

// An error returned when a font is not added due to its name already
// being present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

func (self *Library) addNewFont(font *sfnt.Font, data []byte, name string) error {
	if self.HasFont(name) { return ErrAlreadyPresent }
	self.fonts[name] = libraryEntry{ font: font, data: data }
	return nil
}

// Special error that can be used with [Library.EachFont]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachFont() early break")

// Calls the given function for each font in the library, passing their
// names and content as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
func (self *Library) EachFont(fontFunc func(string, *sfnt.Font) error) error {
	for name, entry := range self.fonts {
		err := fontFunc(name, entry.font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// Walks the given directory non-recursively and adds all the fonts
// in it. Returns the number of fonts added, the number of fonts skipped
// (when a font with the same name already exists in the Library) and any
// error that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}
			if !hasValidFontExtension(path) { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	for _, entry := range entries {
		if entry.IsDir() || !hasValidFontExtension(entry.Name()) { continue }
		_, err = self.ParseFromFS(filesys, joinFSPath(dirName, entry.Name()))
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}

func joinFSPath(dirName, name string) string {
	if dirName == "." || dirName == "" { return name }
	if dirName[len(dirName) - 1] == '/' { return dirName + name }
	return dirName + "/" + name
}
