// ftxt is a package for loading fonts, caching their glyphs as shared
// images and laying out single-byte text, with or without line wrapping.
//
// Everything starts from a [Resources] value, which owns the rasterizer,
// the image sink and the cache where glyph images are shared:
//   res := ftxt.NewResources(&mask.SfntRasterizer{}, sink.NewCanvas(640, 480))
//
// Then you open fonts at a fixed pixel size:
//   font, err := ftxt.OpenFont(res, "path/to/font.ttf", 16)
//   if err != nil { ... } // font is still usable, it just won't draw
//
// And finally you lay out or draw text:
//   font.Render(nil, 8, 8, color.RGBA{255, 255, 255, 255}, "Hello world!")
//   font.RenderWrapped(nil, 8, 40, color.RGBA{255, 255, 255, 255}, longText, 200)
//
// Text is treated as a sequence of bytes, each decoded through the
// resources' code page (ISO-8859-1 by default). There's no shaping,
// kerning or bidi support; line height is fixed at 5/4 of the pixel size.
package ftxt
