package ftxt

import "io"
import "io/fs"
import "os"
import "fmt"
import "image"
import "strconv"
import "path/filepath"
import _ "image/png"

import "golang.org/x/image/draw"
import _ "golang.org/x/image/bmp"
import _ "golang.org/x/image/webp"
import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/ftxt/mask"
import "github.com/tinne26/ftxt/sink"
import "github.com/tinne26/ftxt/rescache"

// Resources are shared by every font and image loaded through them:
// the rasterizer that creates glyph bitmaps, the sink that turns them
// into drawable images and the cache where those images are shared.
//
// Applications create a Resources value explicitly and pass it to
// every font constructor. Unless [WithLocking] is used, Resources and
// the fonts created with them must be confined to a single goroutine.
type Resources struct {
	rasterizer mask.Rasterizer
	sink sink.ImageSink
	images *rescache.Cache[sink.Image]
	codePage *charmap.Charmap
	scopedKeys bool
}

// Creates new resources for the given rasterizer and image sink.
func NewResources(rasterizer mask.Rasterizer, imageSink sink.ImageSink, opts ...ResourceOption) *Resources {
	if rasterizer == nil { panic("ftxt: nil rasterizer") }
	if imageSink == nil { panic("ftxt: nil image sink") }

	config := defaultResourceOptions()
	for _, opt := range opts { opt(&config) }

	var cacheOpts []rescache.Option
	if config.locker != nil {
		cacheOpts = append(cacheOpts, rescache.WithLocker(config.locker))
	}
	return &Resources{
		rasterizer: rasterizer,
		sink: imageSink,
		images: rescache.New(disposeImage, cacheOpts...),
		codePage: config.codePage,
		scopedKeys: config.scopedKeys,
	}
}

func disposeImage(img sink.Image) {
	if img != nil { img.Dispose() }
}

// Returns the rasterizer used to load font faces and glyphs.
func (self *Resources) Rasterizer() mask.Rasterizer { return self.rasterizer }

// Returns the default image sink, used for uploads and for renders
// that don't specify another target.
func (self *Resources) Sink() sink.ImageSink { return self.sink }

// Returns the code page used to decode text bytes.
func (self *Resources) CodePage() *charmap.Charmap { return self.codePage }

// Returns the shared image cache. Mostly useful to inspect its
// statistics or to call [rescache.Cache.PurgeExpired]().
func (self *Resources) Images() *rescache.Cache[sink.Image] { return self.images }

// Returns the cache key for the image of the given glyph. The char
// code goes in as its raw byte, like "A-14".
func (self *Resources) glyphKey(scope string, charCode byte, pixelSize int) string {
	key := string([]byte{ charCode }) + "-" + strconv.Itoa(pixelSize)
	if self.scopedKeys && scope != "" { return scope + "/" + key }
	return key
}

// Returns a reference to the shared image for the given glyph, uploading
// the bitmap if no live image exists for its key yet. Returns nil if the
// upload fails.
func (self *Resources) glyphImage(scope string, charCode byte, pixelSize int, bitmap mask.Bitmap) *rescache.Ref[sink.Image] {
	key := self.glyphKey(scope, charCode, pixelSize)
	ref := self.images.GetOrCreate(key, func() sink.Image {
		Logger().Debug("ftxt: uploading glyph image", "key", key, "width", bitmap.Width, "rows", bitmap.Rows)
		pixels := sink.CoverageToRGBA(bitmap.Coverage)
		img, err := self.sink.Upload(pixels, bitmap.Width, bitmap.Rows)
		if err != nil {
			Logger().Warn("ftxt: glyph image upload failed", "key", key, "err", err)
			return nil
		}
		return img
	})

	// failed uploads are stored too, drop them so the key expires
	if ref.Value() == nil {
		ref.Release()
		return nil
	}
	return ref
}

// Loads the image at the given path into the image sink, sharing it with
// any other live reference to the same path. PNG, BMP and WebP images are
// supported. The returned reference must be released once no longer needed.
func (self *Resources) LoadImage(path string) (*rescache.Ref[sink.Image], error) {
	absPath, err := filepath.Abs(path)
	if err != nil { return nil, err }
	return self.loadImage("file:" + absPath, func() (io.ReadCloser, error) {
		return os.Open(absPath)
	})
}

// Same as [Resources.LoadImage](), but for filesystems like [embed.FS].
// Images are shared by path alone, so different filesystems shouldn't
// provide different images under the same path.
func (self *Resources) LoadImageFS(filesys fs.FS, path string) (*rescache.Ref[sink.Image], error) {
	return self.loadImage("fs:" + path, func() (io.ReadCloser, error) {
		return filesys.Open(path)
	})
}

func (self *Resources) loadImage(key string, open func() (io.ReadCloser, error)) (*rescache.Ref[sink.Image], error) {
	var loadErr error
	ref := self.images.GetOrCreate(key, func() sink.Image {
		img, err := self.decodeAndUpload(open)
		if err != nil {
			loadErr = err
			return nil
		}
		return img
	})
	if ref.Value() == nil {
		ref.Release()
		if loadErr == nil { loadErr = fmt.Errorf("ftxt: image '%s' failed to load", key) }
		return nil, loadErr
	}
	return ref, nil
}

func (self *Resources) decodeAndUpload(open func() (io.ReadCloser, error)) (sink.Image, error) {
	file, err := open()
	if err != nil { return nil, err }
	decoded, _, err := image.Decode(file)
	_ = file.Close()
	if err != nil { return nil, err }

	// sinks take non-premultiplied pixels without padding
	bounds := decoded.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), decoded, bounds.Min, draw.Src)
	return self.sink.Upload(nrgba.Pix, bounds.Dx(), bounds.Dy())
}
