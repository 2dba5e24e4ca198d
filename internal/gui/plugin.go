// Package gui provides the interactive capability set: a native window whose
// input is pumped into the host's channels once per frame.
package gui

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/tickreplay/internal/logging"
)

// ErrUnavailable is returned by the native runner in builds without cgo.
var ErrUnavailable = errors.New("gui: native window requires a cgo build with raylib")

const (
	defaultWidth  = 1366
	defaultHeight = 768
	defaultFPS    = 60
	defaultTitle  = "tickreplay"
)

// Plugin installs the window loop as the app's runner. Zero fields fall back
// to a 1366x768 window at 60 fps.
type Plugin struct {
	Width, Height int32
	FPS           int32
	Title         string
	Logger        *log.Logger
}

func (Plugin) Name() string { return "gui.window" }

func (p Plugin) settings() Plugin {
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = defaultWidth, defaultHeight
	}
	if p.FPS <= 0 {
		p.FPS = defaultFPS
	}
	if p.Title == "" {
		p.Title = defaultTitle
	}
	p.Logger = logging.OrDiscard(p.Logger)
	return p
}
