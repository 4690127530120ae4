package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelterm/internal/fractal"
	"github.com/san-kum/mandelterm/internal/logging"
	"github.com/san-kum/mandelterm/internal/palette"
	"github.com/san-kum/mandelterm/internal/view"
)

const (
	DefaultPanSpeed   = 0.1
	DefaultZoomFactor = 1.2
	DefaultCenterX    = -0.5
	DefaultCenterY    = 0.0
	DefaultZoom       = 1.0
	DefaultColumns    = 80
	DefaultRows       = 24
	DefaultBackground = "#190019"
	DefaultSlowFrame  = 250
	DefaultLogLevel   = "warn"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Palette       string         `yaml:"palette"`
	MaxIterations int            `yaml:"max_iterations"`
	CharAspect    float64        `yaml:"char_aspect"`
	Background    string         `yaml:"background"`
	SlowFrameMS   int            `yaml:"slow_frame_ms"`
	LogLevel      string         `yaml:"log_level"`
	Controls      ControlsConfig `yaml:"controls"`
	View          ViewConfig     `yaml:"view"`
	Fallback      FallbackConfig `yaml:"fallback"`
}

type ControlsConfig struct {
	PanSpeed   float64 `yaml:"pan_speed"`
	ZoomFactor float64 `yaml:"zoom_factor"`
}

type ViewConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Zoom    float64 `yaml:"zoom"`
}

// FallbackConfig is the terminal size assumed when the real one is unknown.
type FallbackConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

func DefaultConfig() *Config {
	return &Config{
		Palette:       palette.DefaultGlyphs,
		MaxIterations: fractal.DefaultMaxIterations,
		CharAspect:    fractal.DefaultCharAspect,
		Background:    DefaultBackground,
		SlowFrameMS:   DefaultSlowFrame,
		LogLevel:      DefaultLogLevel,
		Controls: ControlsConfig{
			PanSpeed:   DefaultPanSpeed,
			ZoomFactor: DefaultZoomFactor,
		},
		View: ViewConfig{
			CenterX: DefaultCenterX,
			CenterY: DefaultCenterY,
			Zoom:    DefaultZoom,
		},
		Fallback: FallbackConfig{
			Columns: DefaultColumns,
			Rows:    DefaultRows,
		},
	}
}

// Load decodes the compiled-in defaults document.
func Load() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes data over DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Palette == "":
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max_iterations must be positive, got %d", ErrInvalidConfig, c.MaxIterations)
	case c.CharAspect <= 0:
		return fmt.Errorf("%w: char_aspect must be positive, got %g", ErrInvalidConfig, c.CharAspect)
	case c.Controls.PanSpeed <= 0:
		return fmt.Errorf("%w: pan_speed must be positive, got %g", ErrInvalidConfig, c.Controls.PanSpeed)
	case c.Controls.ZoomFactor <= 0:
		return fmt.Errorf("%w: zoom_factor must be positive, got %g", ErrInvalidConfig, c.Controls.ZoomFactor)
	case c.View.Zoom <= 0:
		return fmt.Errorf("%w: zoom must be positive, got %g", ErrInvalidConfig, c.View.Zoom)
	case c.SlowFrameMS < 0:
		return fmt.Errorf("%w: slow_frame_ms must not be negative, got %d", ErrInvalidConfig, c.SlowFrameMS)
	case c.Fallback.Columns <= 0 || c.Fallback.Rows <= 0:
		return fmt.Errorf("%w: fallback size must be positive, got %dx%d", ErrInvalidConfig, c.Fallback.Columns, c.Fallback.Rows)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.BackgroundRGB(); err != nil {
		return err
	}
	return nil
}

// BackgroundRGB returns the cell background, or nil when none is configured.
func (c *Config) BackgroundRGB() (*palette.RGB, error) {
	if c.Background == "" {
		return nil, nil
	}
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background %q: %v", ErrInvalidConfig, c.Background, err)
	}
	r, g, b := col.RGB255()
	return &palette.RGB{R: r, G: g, B: b}, nil
}

// SlowFrame is the render time worth a warning. Zero disables the check.
func (c *Config) SlowFrame() time.Duration {
	return time.Duration(c.SlowFrameMS) * time.Millisecond
}

// Level is the lowest level the session log keeps. Validate has already
// rejected unknown names.
func (c *Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}

func (c *Config) InitialView() view.State {
	return view.State{CenterX: c.View.CenterX, CenterY: c.View.CenterY, Zoom: c.View.Zoom}
}

func (c *Config) GetControls() view.Controls {
	return view.Controls{PanSpeed: c.Controls.PanSpeed, ZoomFactor: c.Controls.ZoomFactor}
}

// BuildRamp builds the glyph ramp for the selected mode.
func (c *Config) BuildRamp(gray bool) (palette.Ramp, error) {
	bg, err := c.BackgroundRGB()
	if err != nil {
		return palette.Ramp{}, err
	}
	return palette.Build(c.Palette, gray, bg)
}
