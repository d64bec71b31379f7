package core

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/devblok/prism/core/renderer"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment keys that override file configuration
const (
	EnvWindowTitle  = "PRISM_WINDOW_TITLE"
	EnvWindowWidth  = "PRISM_WINDOW_WIDTH"
	EnvWindowHeight = "PRISM_WINDOW_HEIGHT"
	EnvFPS          = "PRISM_FPS"
	EnvVSync        = "PRISM_VSYNC"
	EnvClearColor   = "PRISM_CLEAR_COLOR"
	EnvLogLevel     = "PRISM_LOG_LEVEL"
	EnvLogFormat    = "PRISM_LOG_FORMAT"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Window   WindowConfiguration   `toml:"window"`
	Time     TimeConfiguration     `toml:"time"`
	Renderer RendererConfiguration `toml:"renderer"`
	Log      LogConfiguration      `toml:"log"`
}

// WindowConfiguration names and sizes the drawing surface
type WindowConfiguration struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int `toml:"fps"`
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ClearColor [4]float32 `toml:"clear_color"`
	VSync      bool       `toml:"vsync"`
}

// LogConfiguration selects the log level and output format
type LogConfiguration struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Renderer returns the settings the renderer package consumes.
func (c RendererConfiguration) Renderer() renderer.Configuration {
	return renderer.Configuration{
		ClearColor: glm.Vec4(c.ClearColor),
	}
}

// DefaultConfiguration is used for anything a file or the environment leaves unset
var DefaultConfiguration = Configuration{
	Window: WindowConfiguration{
		Title:  "prism",
		Width:  800,
		Height: 600,
	},
	Time: TimeConfiguration{
		FramesPerSecond: 60,
	},
	Renderer: RendererConfiguration{
		ClearColor: [4]float32{0, 0, 0, 1},
		VSync:      true,
	},
	Log: LogConfiguration{
		Level:  "info",
		Format: "text",
	},
}

// LoadConfiguration starts from DefaultConfiguration, applies the TOML file
// at configPath and the dotenv file at envPath when they are given, and
// finally applies PRISM_* environment overrides.
func LoadConfiguration(configPath, envPath string) (Configuration, error) {
	cfg := DefaultConfiguration

	if configPath != "" {
		data, err := ioutil.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("reading configuration: %w", err)
		}
		if err := decodeConfiguration(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", configPath, err)
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return cfg, fmt.Errorf("loading %s: %w", envPath, err)
		}
	}
	envy.Reload()

	if err := applyEnvironment(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decodeConfiguration(data []byte, cfg *Configuration) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate reports settings that cannot produce a running demo.
func (c Configuration) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Time.FramesPerSecond < 0 {
		return fmt.Errorf("invalid frames per second %d", c.Time.FramesPerSecond)
	}
	for _, v := range c.Renderer.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear color component %g out of range [0, 1]", v)
		}
	}
	return nil
}

func applyEnvironment(cfg *Configuration) error {
	cfg.Window.Title = envy.Get(EnvWindowTitle, cfg.Window.Title)
	cfg.Log.Level = envy.Get(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = envy.Get(EnvLogFormat, cfg.Log.Format)

	ints := []struct {
		key string
		dst *int
	}{
		{EnvFPS, &cfg.Time.FramesPerSecond},
	}
	for _, i := range ints {
		if v, err := envy.MustGet(i.key); err == nil {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: %w", i.key, err)
			}
			*i.dst = n
		}
	}

	sizes := []struct {
		key string
		dst *int32
	}{
		{EnvWindowWidth, &cfg.Window.Width},
		{EnvWindowHeight, &cfg.Window.Height},
	}
	for _, s := range sizes {
		if v, err := envy.MustGet(s.key); err == nil {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
			if err != nil {
				return fmt.Errorf("%s: %w", s.key, err)
			}
			*s.dst = int32(n)
		}
	}

	if v, err := envy.MustGet(EnvVSync); err == nil {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVSync, err)
		}
		cfg.Renderer.VSync = b
	}

	if v, err := envy.MustGet(EnvClearColor); err == nil {
		color, err := parseColor(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvClearColor, err)
		}
		cfg.Renderer.ClearColor = color
	}
	return nil
}

// parseColor reads "r,g,b" or "r,g,b,a", alpha defaults to 1
func parseColor(s string) ([4]float32, error) {
	color := [4]float32{0, 0, 0, 1}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color, fmt.Errorf("expected 3 or 4 components, got %d", len(parts))
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return color, err
		}
		color[i] = float32(f)
	}
	return color, nil
}
