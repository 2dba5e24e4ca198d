// Package bootstrap wires a simulation into one of the harness modes:
// recording a live session, viewing or applying a recorded stream, fuzzing,
// or plain interactive play.
package bootstrap

import (
	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/tickreplay/internal/config"
	"github.com/appengine-ltd/tickreplay/internal/gui"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/logging"
)

// Target is the simulation under test. Its Build installs the simulation's
// own systems; the capability methods install whatever plugins it needs to
// run with a window or without one.
type Target interface {
	host.Plugin
	GUICapabilities(app *host.App)
	HeadlessCapabilities(app *host.App)
}

// Defaults supplies the standard capability sets. Embed it in a Target to
// use them unchanged.
type Defaults struct{}

// GUICapabilities adds the native window plus input and window channels,
// sized from the app's Config resource when present.
func (Defaults) GUICapabilities(app *host.App) {
	cfg := Settings(app)
	app.AddPlugin(host.InputPlugin{}).
		AddPlugin(host.WindowPlugin{Width: float32(cfg.WindowWidth), Height: float32(cfg.WindowHeight)}).
		AddPlugin(gui.Plugin{
			Width:  cfg.WindowWidth,
			Height: cfg.WindowHeight,
			FPS:    cfg.TargetFPS,
			Title:  cfg.WindowTitle,
			Logger: loggerOf(app),
		})
}

// HeadlessCapabilities adds input and window channels without a window.
func (Defaults) HeadlessCapabilities(app *host.App) {
	cfg := Settings(app)
	app.AddPlugin(host.InputPlugin{}).
		AddPlugin(host.WindowPlugin{Width: float32(cfg.WindowWidth), Height: float32(cfg.WindowHeight)})
}

// Settings returns the Config the app was built with, or the zero Config.
func Settings(app *host.App) config.Config {
	if cfg, ok := host.Resource[config.Config](app.World); ok {
		return *cfg
	}
	return config.Config{}
}

// loggerOf returns the logger the app was built with.
func loggerOf(app *host.App) *log.Logger {
	l, _ := host.Resource[log.Logger](app.World)
	return logging.OrDiscard(l)
}

func newApp(cfg config.Config, logger *log.Logger) *host.App {
	app := host.NewApp()
	host.InsertResource(app.World, &cfg)
	host.InsertResource(app.World, logging.OrDiscard(logger))
	return app
}
