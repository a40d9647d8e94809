// The mask subpackage defines the [Rasterizer] interface used to turn
// characters into glyph coverage bitmaps, and provides a few
// implementations built on top of different font parsing backends:
//  - [SfntRasterizer], using golang.org/x/image/font/sfnt outlines and
//    golang.org/x/image/vector for rasterization.
//  - [OpentypeRasterizer], using golang.org/x/image/font/opentype faces.
//  - [GoTextRasterizer], using github.com/go-text/typesetting outlines
//    and golang.org/x/image/vector.
//
// A [Face] is the result of loading font data at a fixed pixel size.
// Faces are mutable (rasterizing a glyph reuses internal buffers), so a
// face must not be used concurrently. Rasterizers themselves hold no
// state and can be shared.
package mask
