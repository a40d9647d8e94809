// The font subpackage contains helpers to read font files, parse them
// and obtain information from them (name, family, missing characters),
// alongside a [Library] type that keeps font data accessible by name.
//
// ftxt rasterizers work from raw font bytes, so the helpers in this
// package always keep the file contents around next to the parsed font.
package font
