package ftxt

import "sync"

import "golang.org/x/text/encoding/charmap"

// ResourceOption configures [Resources] during creation.
//
// Example:
//   res := ftxt.NewResources(rasterizer, canvas,
//       ftxt.WithCodePage(charmap.Windows1252),
//       ftxt.WithFontScopedImageKeys(),
//   )
type ResourceOption func(*resourceOptions)

type resourceOptions struct {
	codePage *charmap.Charmap
	locker sync.Locker
	scopedKeys bool
}

func defaultResourceOptions() resourceOptions {
	return resourceOptions{ codePage: charmap.ISO8859_1 }
}

// Sets the single-byte code page used to map text bytes to characters.
// ISO-8859-1 is used by default, which maps each byte to the Unicode
// code point with the same value. A nil code page restores the default.
func WithCodePage(codePage *charmap.Charmap) ResourceOption {
	return func(opts *resourceOptions) {
		if codePage == nil { codePage = charmap.ISO8859_1 }
		opts.codePage = codePage
	}
}

// Protects the shared image cache with the given locker, so fonts
// owned by different goroutines can share the same [Resources].
// Each [Font] must still be used from a single goroutine at a time,
// and so must the image sink. Concurrent cache misses for the same
// glyph may still upload the same image twice.
func WithLocking(locker sync.Locker) ResourceOption {
	return func(opts *resourceOptions) {
		opts.locker = locker
	}
}

// Prefixes glyph image keys with an identifier of the font face, so
// glyphs from different fonts at the same pixel size never share images.
//
// Without this option, glyph images are keyed only by character code
// and pixel size, and the first font to rasterize a given character at
// a given size provides the image every other live font will reuse.
func WithFontScopedImageKeys() ResourceOption {
	return func(opts *resourceOptions) {
		opts.scopedKeys = true
	}
}
