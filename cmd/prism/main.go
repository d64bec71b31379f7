package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/devblok/prism/core"
	"github.com/devblok/prism/demo"
	"github.com/devblok/prism/device"
	"github.com/devblok/prism/shaders"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

var (
	configPath = flag.String("config", "", "path to a TOML configuration file")
	envPath    = flag.String("env", "", "path to a dotenv file with PRISM_* overrides")
)

func main() {
	flag.Parse()

	configuration, err := core.LoadConfiguration(*configPath, *envPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := core.ConfigureLogging(configuration.Log); err != nil {
		log.Fatal(err)
	}

	surface, err := device.OpenSurface(device.Options{
		Title:  configuration.Window.Title,
		Width:  configuration.Window.Width,
		Height: configuration.Window.Height,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer surface.Destroy()

	if err := surface.SetVSync(configuration.Renderer.VSync); err != nil {
		log.WithError(err).Warn("Could not set swap interval")
	}

	src, err := shaders.Load(shaders.Standard)
	if err != nil {
		log.Fatal(err)
	}

	d, err := demo.New(surface.Context(), configuration.Renderer.Renderer(), src)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scheduler := core.NewScheduler(configuration.Time)

	var frame core.FrameFunc
	frame = func(time.Time) {
		scheduler.RequestFrame(frame)
		if err := d.Frame(); err != nil {
			log.WithError(err).WithField("frame", scheduler.Frames()).Error("Frame failed")
		}
		surface.Present()
	}
	scheduler.RequestFrame(frame)

	log.WithField("fps", scheduler.Fps()).Info("Frame loop started")
	if err := scheduler.Run(ctx, surface.Pump); err != nil && err != context.Canceled {
		log.WithError(err).Error("Frame loop stopped")
	}
	log.WithField("frames", scheduler.Frames()).Info("Frame loop exited")
}
