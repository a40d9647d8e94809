package main

import "os"
import "fmt"
import "bytes"
import "errors"
import "strconv"
import "log/slog"
import "image/color"

import "github.com/pelletier/go-toml/v2"
import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/ftxt"
import "github.com/tinne26/ftxt/mask"

// Config describes a render job. It can be loaded from a TOML file:
//
//	font = "assets/font.ttf"
//	pixel_size = 16
//	rasterizer = "sfnt"
//
//	[output]
//	path = "out.png"
//	width = 320
//	height = 120
//
//	[[text]]
//	content = "Hello world!"
//	x = 8
//	y = 8
//	max_width = 200
//	color = "#ffcc00"
type Config struct {
	Font string `toml:"font"`
	FaceIndex int `toml:"face_index"`
	PixelSize int `toml:"pixel_size"`
	Rasterizer string `toml:"rasterizer"`
	CodePage string `toml:"code_page"`
	ScopedKeys bool `toml:"scoped_keys"`
	LogLevel string `toml:"log_level"`
	Output OutputConfig `toml:"output"`
	Texts []TextConfig `toml:"text"`
}

type OutputConfig struct {
	Path string `toml:"path"`
	Width int `toml:"width"`
	Height int `toml:"height"`
	Background string `toml:"background"`
	Terminal bool `toml:"terminal"` // preview on the terminal instead of writing a file
}

type TextConfig struct {
	Content string `toml:"content"`
	X int `toml:"x"`
	Y int `toml:"y"`
	MaxWidth int `toml:"max_width"` // 0 disables wrapping
	Color string `toml:"color"`
}

func defaultConfig() Config {
	return Config{
		PixelSize: 16,
		Rasterizer: "sfnt",
		CodePage: "iso8859-1",
		LogLevel: "warn",
		Output: OutputConfig{
			Path: "out.png",
			Width: 320,
			Height: 120,
			Background: "#000000",
		},
	}
}

// Loads the TOML file at the given path on top of the default config.
// Unknown fields are rejected.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil { return config, err }
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err = decoder.Decode(&config)
	if err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return config, fmt.Errorf("config %s: %s", path, strictErr.String())
		}
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (self *Config) validate() error {
	var errs []error
	if self.Font == "" { errs = append(errs, errors.New("font path is required")) }
	if self.PixelSize <= 0 {
		errs = append(errs, fmt.Errorf("pixel_size must be positive (got %d)", self.PixelSize))
	}
	if self.FaceIndex < 0 {
		errs = append(errs, fmt.Errorf("face_index can't be negative (got %d)", self.FaceIndex))
	}
	if _, err := self.rasterizer(); err != nil { errs = append(errs, err) }
	if _, err := self.codePage(); err != nil { errs = append(errs, err) }
	if _, err := self.logLevel(); err != nil { errs = append(errs, err) }
	if !self.Output.Terminal {
		if self.Output.Path == "" { errs = append(errs, errors.New("output path is required")) }
		if self.Output.Width <= 0 || self.Output.Height <= 0 {
			errs = append(errs, fmt.Errorf("invalid output size %dx%d", self.Output.Width, self.Output.Height))
		}
	}
	if _, err := parseHexColor(self.Output.Background); err != nil {
		errs = append(errs, fmt.Errorf("output background: %w", err))
	}
	if len(self.Texts) == 0 { errs = append(errs, errors.New("nothing to render, add some text")) }
	for i, text := range self.Texts {
		if _, err := parseHexColor(text.Color); err != nil {
			errs = append(errs, fmt.Errorf("text #%d color: %w", i + 1, err))
		}
		if text.MaxWidth < 0 {
			errs = append(errs, fmt.Errorf("text #%d max_width can't be negative", i + 1))
		}
	}
	return errors.Join(errs...)
}

func (self *Config) rasterizer() (mask.Rasterizer, error) {
	switch self.Rasterizer {
	case "sfnt", "":
		return &mask.SfntRasterizer{}, nil
	case "opentype":
		return &mask.OpentypeRasterizer{}, nil
	case "gotext":
		return &mask.GoTextRasterizer{}, nil
	default:
		return nil, fmt.Errorf("unknown rasterizer '%s' (expected sfnt, opentype or gotext)", self.Rasterizer)
	}
}

func (self *Config) codePage() (*charmap.Charmap, error) {
	switch self.CodePage {
	case "iso8859-1", "latin1", "":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unknown code page '%s' (expected iso8859-1 or windows-1252)", self.CodePage)
	}
}

func (self *Config) logLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(self.LogLevel))
	if err != nil { return level, fmt.Errorf("invalid log_level '%s'", self.LogLevel) }
	return level, nil
}

func (self *Config) resourceOptions() []ftxt.ResourceOption {
	codePage, _ := self.codePage()
	opts := []ftxt.ResourceOption{ ftxt.WithCodePage(codePage) }
	if self.ScopedKeys { opts = append(opts, ftxt.WithFontScopedImageKeys()) }
	return opts
}

// Parses "#rrggbb" or "#rrggbbaa". Empty strings are opaque white.
func parseHexColor(hex string) (color.RGBA, error) {
	if hex == "" { return color.RGBA{255, 255, 255, 255}, nil }
	if hex[0] == '#' { hex = hex[1 : ] }
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color '#%s'", hex)
	}
	if len(hex) == 6 { hex += "ff" }
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil { return color.RGBA{}, fmt.Errorf("invalid color '#%s'", hex[ : 6]) }

	// colors are given non-premultiplied, tints are premultiplied
	nrgba := color.NRGBA{ uint8(value >> 24), uint8(value >> 16), uint8(value >> 8), uint8(value) }
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
