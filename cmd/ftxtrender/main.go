// Command ftxtrender renders text with ftxt into a PNG image, or
// previews it on the terminal.
//
// Usage:
//
//	ftxtrender -font path/to/font.ttf -text "Hello world!" -out hello.png
//	ftxtrender -config job.toml -term
//
// Flags override the values from the config file.
package main

import "os"
import "fmt"
import "flag"
import "errors"
import "log/slog"
import "image"
import "image/png"

import "github.com/gdamore/tcell/v2"
import "golang.org/x/image/draw"

import "github.com/tinne26/ftxt"
import "github.com/tinne26/ftxt/font"
import "github.com/tinne26/ftxt/sink"
import "github.com/tinne26/ftxt/termsink"

func main() {
	err := run(os.Args[1 : ])
	if errors.Is(err, flag.ErrHelp) { return }
	if err != nil {
		fmt.Fprintf(os.Stderr, "ftxtrender: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := parseArgs(args)
	if err != nil { return err }
	err = config.validate()
	if err != nil { return err }

	level, _ := config.logLevel()
	ftxt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level })))
	if config.Output.Terminal { return previewOnTerminal(config) }
	return renderToFile(config)
}

func parseArgs(args []string) (Config, error) {
	flags := flag.NewFlagSet("ftxtrender", flag.ContinueOnError)
	configPath := flags.String("config", "", "TOML file with the render job")
	fontPath := flags.String("font", "", "font file (.ttf, .otf, .ttc, .otc)")
	faceIndex := flags.Int("face", 0, "face index within font collections")
	pixelSize := flags.Int("size", 0, "font size in pixels")
	rasterizer := flags.String("rasterizer", "", "sfnt, opentype or gotext")
	text := flags.String("text", "", "text to render, replacing the config texts")
	x := flags.Int("x", 8, "text x position")
	y := flags.Int("y", 8, "text y position")
	wrap := flags.Int("wrap", 0, "wrap width, 0 disables wrapping")
	textColor := flags.String("color", "#ffffff", "text color as #rrggbb[aa]")
	output := flags.String("out", "", "output PNG path")
	terminal := flags.Bool("term", false, "preview on the terminal instead of writing a file")
	logLevel := flags.String("log-level", "", "debug, info, warn or error")
	err := flags.Parse(args)
	if err != nil { return Config{}, err }

	config := defaultConfig()
	if *configPath != "" {
		config, err = loadConfig(*configPath)
		if err != nil { return config, err }
	}

	// only flags explicitly given override the config
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "font": config.Font = *fontPath
		case "face": config.FaceIndex = *faceIndex
		case "size": config.PixelSize = *pixelSize
		case "rasterizer": config.Rasterizer = *rasterizer
		case "out": config.Output.Path = *output
		case "term": config.Output.Terminal = *terminal
		case "log-level": config.LogLevel = *logLevel
		}
	})
	if *text != "" {
		config.Texts = []TextConfig{{
			Content: *text, X: *x, Y: *y, MaxWidth: *wrap, Color: *textColor,
		}}
	}
	return config, nil
}

func openFont(config Config, imageSink sink.ImageSink) (*ftxt.Font, error) {
	rasterizer, _ := config.rasterizer()
	res := ftxt.NewResources(rasterizer, imageSink, config.resourceOptions()...)
	data, err := font.ReadFile(config.Font)
	if err != nil { return nil, err }
	return ftxt.NewFontFromBytes(res, data, config.FaceIndex, config.PixelSize)
}

// Renders every configured text. Draw failures are reported but don't
// stop the remaining texts from being rendered.
func renderTexts(textFont *ftxt.Font, texts []TextConfig) error {
	var errs []error
	for _, text := range texts {
		tint, _ := parseHexColor(text.Color)
		var err error
		if text.MaxWidth > 0 {
			err = textFont.RenderWrapped(nil, text.X, text.Y, tint, text.Content, text.MaxWidth)
		} else {
			err = textFont.Render(nil, text.X, text.Y, tint, text.Content)
		}
		if err != nil { errs = append(errs, err) }

		missing, err := textFont.MissingChars(text.Content)
		if err == nil && len(missing) > 0 {
			ftxt.Logger().Warn("font is missing characters", "font", textFont.Name(), "chars", fmt.Sprintf("%q", missing))
		}
	}
	return errors.Join(errs...)
}

func renderToFile(config Config) error {
	canvas := sink.NewCanvas(config.Output.Width, config.Output.Height)
	textFont, err := openFont(config, canvas)
	if err != nil { return err }
	defer textFont.Close()

	background, _ := parseHexColor(config.Output.Background)
	screen := canvas.Screen()
	draw.Draw(screen, screen.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	err = renderTexts(textFont, config.Texts)
	if err != nil { return err }

	file, err := os.Create(config.Output.Path)
	if err != nil { return err }
	err = png.Encode(file, screen)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func previewOnTerminal(config Config) error {
	screen, err := tcell.NewScreen()
	if err != nil { return err }
	err = screen.Init()
	if err != nil { return err }
	defer screen.Fini()

	termSink := termsink.New(screen)
	background, _ := parseHexColor(config.Output.Background)
	termSink.SetBackground(background)
	textFont, err := openFont(config, termSink)
	if err != nil { return err }
	defer textFont.Close()

	err = renderTexts(textFont, config.Texts)
	if err != nil { return err }
	termSink.Present()

	// wait for any key or a resize to exit
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
