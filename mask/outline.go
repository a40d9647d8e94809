package mask

import "math"
import "image"
import "image/draw"

import "golang.org/x/image/vector"

type segmentOp uint8
const (
	opMoveTo segmentOp = iota
	opLineTo
	opQuadTo
	opCubeTo
)

type point struct { X, Y float32 }

type segment struct {
	op segmentOp
	args [3]point
}

// A glyph outline in pixel coordinates, with the Y axis growing
// downwards and the origin at the pen position on the baseline.
// Backends translate their own segment formats into this one so
// they can share the rasterization code.
type outline struct {
	segments []segment
	drawable bool // whether there's anything beyond MoveTo ops
}

func (self *outline) Reset() {
	self.segments = self.segments[ : 0]
	self.drawable = false
}

// Move to the given coordinate.
func (self *outline) MoveTo(target point) {
	self.segments = append(self.segments, segment{ op: opMoveTo, args: [3]point{target} })
}

// Create a segment to the given coordinate.
func (self *outline) LineTo(target point) {
	self.drawable = true
	self.segments = append(self.segments, segment{ op: opLineTo, args: [3]point{target} })
}

// Conic Bézier curve (also called quadratic). The first parameter
// is the control coordinate, and the second one the final target.
func (self *outline) QuadTo(control, target point) {
	self.drawable = true
	self.segments = append(self.segments, segment{ op: opQuadTo, args: [3]point{control, target} })
}

// Cubic Bézier curve. The first two parameters are the control
// coordinates, and the third one is the final target.
func (self *outline) CubeTo(controlA, controlB, target point) {
	self.drawable = true
	self.segments = append(self.segments, segment{
		op: opCubeTo, args: [3]point{controlA, controlB, target},
	})
}

// Returns the integer pixel bounds containing every point of the
// outline, control points included.
func (self *outline) bounds() image.Rectangle {
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, seg := range self.segments {
		numArgs := 1
		switch seg.op {
		case opQuadTo: numArgs = 2
		case opCubeTo: numArgs = 3
		}
		for _, arg := range seg.args[ : numArgs] {
			if arg.X < minX { minX = arg.X }
			if arg.Y < minY { minY = arg.Y }
			if arg.X > maxX { maxX = arg.X }
			if arg.Y > maxY { maxY = arg.Y }
		}
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}

// Rasterizes the outline into a coverage bitmap and returns it along
// the left and top bearings. The given vector rasterizer is reset and
// reused.
func (self *outline) rasterize(rasterizer *vector.Rasterizer) (Bitmap, int, int) {
	if !self.drawable { return Bitmap{}, 0, 0 } // nothing to draw (e.g. spaces)

	bounds := self.bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 { return Bitmap{}, 0, 0 }

	// the x/image/vector rasterizer expects coords in the positive
	// quadrant, so everything is shifted by the bounds origin
	offX, offY := float32(bounds.Min.X), float32(bounds.Min.Y)
	rasterizer.Reset(width, height)
	rasterizer.DrawOp = draw.Src
	for _, seg := range self.segments {
		a := seg.args
		switch seg.op {
		case opMoveTo:
			rasterizer.MoveTo(a[0].X - offX, a[0].Y - offY)
		case opLineTo:
			rasterizer.LineTo(a[0].X - offX, a[0].Y - offY)
		case opQuadTo:
			rasterizer.QuadTo(a[0].X - offX, a[0].Y - offY, a[1].X - offX, a[1].Y - offY)
		case opCubeTo:
			rasterizer.CubeTo(
				a[0].X - offX, a[0].Y - offY,
				a[1].X - offX, a[1].Y - offY,
				a[2].X - offX, a[2].Y - offY,
			)
		default:
			panic("unexpected segment op")
		}
	}
	rasterizer.ClosePath()

	// since the source is a uniform, the sampling start point
	// (the fourth parameter) is irrelevant
	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	rasterizer.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	bitmap := Bitmap{ Width: width, Rows: height, Coverage: alpha.Pix }
	return bitmap, bounds.Min.X, -bounds.Min.Y
}
