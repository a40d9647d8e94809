package font

import "testing/fstest"

import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

// test filesystem with two distinct fonts and a duplicate
var testfs = fstest.MapFS{
	"fonts/regular.ttf": &fstest.MapFile{ Data: goregular.TTF },
	"fonts/mono.ttf": &fstest.MapFile{ Data: gomono.TTF },
	"fonts/readme.txt": &fstest.MapFile{ Data: []byte("not a font") },
	"dups/regular.ttf": &fstest.MapFile{ Data: goregular.TTF },
	"dups/regular-copy.ttf": &fstest.MapFile{ Data: goregular.TTF },
	"empty.ttf": &fstest.MapFile{ Data: nil },
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
