// Package sink defines the image collaborators used to draw glyphs and
// images: an [ImageSink] uploads CPU pixel buffers into drawable [Image]
// handles and draws them at integer coordinates with a color tint.
//
// The package also provides [Canvas], a CPU implementation that draws
// into an [*image.RGBA] screen or into offscreen images selected through
// a [Target].
package sink
