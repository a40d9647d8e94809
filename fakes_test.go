package ftxt

import "errors"
import "image/color"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/ftxt/mask"
import "github.com/tinne26/ftxt/sink"

var errFakeDraw = errors.New("fake draw failure")
var errFakeUpload = errors.New("fake upload failure")

type fakeFace struct {
	pixelSize int
	closed bool
}

func (self *fakeFace) PixelSize() int { return self.pixelSize }
func (self *fakeFace) Close() error {
	self.closed = true
	return nil
}

// A rasterizer with deterministic metrics: letters advance 7 pixels,
// spaces 4 and periods 3. Any other character is missing. Bitmaps are
// one pixel narrower than the advance, with a left bearing of 1 and
// a top bearing equal to their height (3/4 of the pixel size).
type fakeRasterizer struct {
	advances map[rune]int
	calls map[rune]int
	loadErr error
}

func newFakeRasterizer() *fakeRasterizer {
	advances := map[rune]int{ ' ': 4, '.': 3 }
	for r := 'a'; r <= 'z'; r++ { advances[r] = 7 }
	for r := 'A'; r <= 'Z'; r++ { advances[r] = 7 }
	return &fakeRasterizer{ advances: advances, calls: make(map[rune]int) }
}

func (self *fakeRasterizer) LoadFace(data []byte, faceIndex int, pixelSize int) (mask.Face, error) {
	if self.loadErr != nil { return nil, self.loadErr }
	if pixelSize <= 0 { return nil, mask.ErrInvalidSize }
	return &fakeFace{ pixelSize: pixelSize }, nil
}

func (self *fakeRasterizer) Rasterize(face mask.Face, codePoint rune) (mask.Glyph, error) {
	self.calls[codePoint] += 1
	advance, found := self.advances[codePoint]
	if !found { return mask.Glyph{}, mask.ErrMissingGlyph }
	glyph := mask.Glyph{ Advance: fixed.I(advance) }
	if codePoint == ' ' { return glyph, nil }

	width, rows := max(advance - 1, 1), face.PixelSize()*3/4
	coverage := make([]byte, width*rows)
	for i := range coverage { coverage[i] = 255 }
	glyph.Bitmap = mask.Bitmap{ Width: width, Rows: rows, Coverage: coverage }
	glyph.Left, glyph.Top = 1, rows
	return glyph, nil
}

type fakeImage struct {
	owner *recordingSink
	width, height int
	disposed bool
}

func (self *fakeImage) Size() (int, int) { return self.width, self.height }
func (self *fakeImage) Dispose() {
	if self.disposed { return }
	self.disposed = true
	self.owner.disposed += 1
}

type drawCall struct {
	image sink.Image
	x, y int
	tint color.RGBA
}

type recordingSink struct {
	uploads int
	disposed int
	draws []drawCall
	failUploads bool
	failDraws bool
}

func (self *recordingSink) Upload(pixels []byte, width, height int) (sink.Image, error) {
	if self.failUploads { return nil, errFakeUpload }
	if len(pixels) != width*height*4 { return nil, sink.ErrPixelCount }
	self.uploads += 1
	return &fakeImage{ owner: self, width: width, height: height }, nil
}

func (self *recordingSink) Draw(img sink.Image, x, y int, tint color.RGBA) error {
	if self.failDraws { return errFakeDraw }
	if img.(*fakeImage).disposed { return sink.ErrDisposed }
	self.draws = append(self.draws, drawCall{ image: img, x: x, y: y, tint: tint })
	return nil
}

func (self *recordingSink) live() int { return self.uploads - self.disposed }

type fakeEnv struct {
	rasterizer *fakeRasterizer
	sink *recordingSink
	res *Resources
}

func newFakeEnv(opts ...ResourceOption) *fakeEnv {
	env := &fakeEnv{ rasterizer: newFakeRasterizer(), sink: &recordingSink{} }
	env.res = NewResources(env.rasterizer, env.sink, opts...)
	return env
}

// fonts from different data get different scopes
func (self *fakeEnv) font(pixelSize int, data ...byte) *Font {
	if len(data) == 0 { data = []byte("fake font") }
	font, err := NewFontFromBytes(self.res, data, 0, pixelSize)
	if err != nil { panic(err) }
	return font
}
