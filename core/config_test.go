package core_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/prism/core"
)

func writeFile(c *qt.C, name, content string) string {
	path := filepath.Join(c.Mkdir(), name)
	c.Assert(ioutil.WriteFile(path, []byte(content), 0644), qt.IsNil)
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	c := qt.New(t)

	cfg, err := core.LoadConfiguration("", "")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, core.DefaultConfiguration)
	c.Assert(cfg.Renderer.Renderer().ClearColor, qt.Equals, glm.Vec4{0, 0, 0, 1})
}

func TestLoadConfigurationFile(t *testing.T) {
	c := qt.New(t)

	path := writeFile(c, "prism.toml", `
[window]
title = "triangle"
width = 1024

[time]
fps = 30

[renderer]
clear_color = [0.1, 0.2, 0.3, 1.0]
vsync = false
`)
	cfg, err := core.LoadConfiguration(path, "")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Window, qt.DeepEquals, core.WindowConfiguration{
		Title:  "triangle",
		Width:  1024,
		Height: core.DefaultConfiguration.Window.Height,
	})
	c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 30)
	c.Assert(cfg.Renderer.ClearColor, qt.Equals, [4]float32{0.1, 0.2, 0.3, 1})
	c.Assert(cfg.Renderer.VSync, qt.IsFalse)
	c.Assert(cfg.Log, qt.DeepEquals, core.DefaultConfiguration.Log)
}

func TestLoadConfigurationUnknownKey(t *testing.T) {
	c := qt.New(t)

	path := writeFile(c, "prism.toml", "[window]\nfullscreen = true\n")
	_, err := core.LoadConfiguration(path, "")
	c.Assert(err, qt.ErrorMatches, `parsing .*prism.toml: (.|\n)*`)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	c := qt.New(t)

	_, err := core.LoadConfiguration(filepath.Join(c.Mkdir(), "absent.toml"), "")
	c.Assert(err, qt.ErrorMatches, "reading configuration: .*")
}

func TestLoadConfigurationEnvironment(t *testing.T) {
	c := qt.New(t)

	c.Setenv(core.EnvWindowTitle, "from env")
	c.Setenv(core.EnvWindowHeight, "480")
	c.Setenv(core.EnvFPS, "120")
	c.Setenv(core.EnvVSync, "false")
	c.Setenv(core.EnvClearColor, "0.5, 0.5, 0.5")
	c.Setenv(core.EnvLogLevel, "debug")

	cfg, err := core.LoadConfiguration("", "")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Window.Title, qt.Equals, "from env")
	c.Assert(cfg.Window.Height, qt.Equals, int32(480))
	c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 120)
	c.Assert(cfg.Renderer.VSync, qt.IsFalse)
	c.Assert(cfg.Renderer.ClearColor, qt.Equals, [4]float32{0.5, 0.5, 0.5, 1})
	c.Assert(cfg.Log.Level, qt.Equals, "debug")
}

func TestLoadConfigurationDotenv(t *testing.T) {
	c := qt.New(t)
	c.Cleanup(func() {
		os.Unsetenv(core.EnvWindowWidth)
		os.Unsetenv(core.EnvLogFormat)
	})

	path := writeFile(c, ".env", core.EnvWindowWidth+"=640\n"+core.EnvLogFormat+"=json\n")
	cfg, err := core.LoadConfiguration("", path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Window.Width, qt.Equals, int32(640))
	c.Assert(cfg.Log.Format, qt.Equals, "json")
}

func TestLoadConfigurationInvalid(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		key, value, err string
	}{
		{core.EnvFPS, "fast", core.EnvFPS + `: .*invalid syntax`},
		{core.EnvFPS, "-1", "invalid frames per second -1"},
		{core.EnvWindowWidth, "0", "invalid window size 0x600"},
		{core.EnvVSync, "maybe", core.EnvVSync + `: .*`},
		{core.EnvClearColor, "1,0", core.EnvClearColor + ": expected 3 or 4 components, got 2"},
		{core.EnvClearColor, "2,0,0", `clear color component 2 out of range \[0, 1\]`},
	}

	for _, test := range tests {
		c.Run(test.key+"="+test.value, func(c *qt.C) {
			c.Setenv(test.key, test.value)
			_, err := core.LoadConfiguration("", "")
			c.Assert(err, qt.ErrorMatches, test.err)
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	c := qt.New(t)
	level := log.GetLevel()
	c.Cleanup(func() { log.SetLevel(level) })

	c.Assert(core.ConfigureLogging(core.LogConfiguration{Level: "warn", Format: "json"}), qt.IsNil)
	c.Assert(log.GetLevel(), qt.Equals, log.WarnLevel)

	c.Assert(core.ConfigureLogging(core.LogConfiguration{Level: "loud"}), qt.Not(qt.IsNil))
	c.Assert(core.ConfigureLogging(core.LogConfiguration{Level: "info", Format: "xml"}), qt.ErrorMatches, `unknown log format "xml"`)
}
