package bootstrap

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/appengine-ltd/tickreplay/internal/codec"
	"github.com/appengine-ltd/tickreplay/internal/config"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
	"github.com/appengine-ltd/tickreplay/internal/recorder"
	"github.com/appengine-ltd/tickreplay/internal/runner"
	"github.com/appengine-ltd/tickreplay/internal/stream"
)

type mode int

const (
	modeRecord mode = iota
	modeView
	modeApply
	modeFuzz
	modeGUI
)

func (m mode) String() string {
	switch m {
	case modeRecord:
		return "record"
	case modeView:
		return "view"
	case modeApply:
		return "apply"
	case modeFuzz:
		return "fuzz"
	case modeGUI:
		return "gui"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// cliModes are the modes reachable from the command line. Fuzzing is driven
// by the Go fuzzer through FuzzContext.
var cliModes = []mode{modeRecord, modeView, modeApply, modeGUI}

func parseMode(name string) (mode, bool) {
	for _, m := range cliModes {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// enter installs the capability set for m and then the target itself.
// Headless modes get the Harness so nothing can start the native loop.
func enter(m mode, target Target, app *host.App) {
	switch m {
	case modeRecord, modeGUI:
		target.GUICapabilities(app)
	case modeApply, modeFuzz:
		target.HeadlessCapabilities(app)
		app.AddPlugin(Harness{})
	}
	app.AddPlugin(target)
}

var (
	indexStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	eventStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	boundaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	summaryStyle  = lipgloss.NewStyle().Bold(true)
)

// session carries what every mode entry needs.
type session struct {
	cfg    config.Config
	logger *log.Logger
	stdout io.Writer
}

func (s session) record(target Target, path string) error {
	id := uuid.NewString()
	logger := s.logger.With("mode", modeRecord, "session", id)

	w, err := stream.Create(path)
	if err != nil {
		return err
	}
	rec := recorder.New(w, recorder.WithLogger(logger))

	app := newApp(s.cfg, logger)
	enter(modeRecord, target, app)
	app.AddPlugin(rec)

	logger.Info("recording", "path", path)
	runErr := app.Run()
	closeErr := rec.Close()
	if err := errors.Join(runErr, closeErr); err != nil {
		return fmt.Errorf("record %s: %w", path, err)
	}
	fmt.Fprintf(s.stdout, "recorded %d frames (%d events) to %s\n", rec.Frames(), rec.Events(), path)
	return nil
}

func (s session) load(m mode, path string) ([]input.Event, error) {
	data, err := stream.ReadFile(path)
	if err != nil {
		return nil, err
	}
	events, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", m, path, err)
	}
	s.logger.Debug("stream loaded", "mode", m, "path", path, "bytes", len(data), "events", len(events))
	return events, nil
}

func (s session) view(path string) error {
	events, err := s.load(modeView, path)
	if err != nil {
		return err
	}
	frames := 0
	for i, ev := range events {
		style := eventStyle
		if ev.Kind() == input.KindFrameBoundary {
			style = boundaryStyle
			frames++
		}
		fmt.Fprintf(s.stdout, "%s %s\n", indexStyle.Render(fmt.Sprintf("%6d", i)), style.Render(ev.String()))
	}
	fmt.Fprintln(s.stdout, summaryStyle.Render(fmt.Sprintf("%d events, %d frames", len(events), frames)))
	return nil
}

func (s session) apply(target Target, path string) error {
	events, err := s.load(modeApply, path)
	if err != nil {
		return err
	}
	logger := s.logger.With("mode", modeApply)
	app := newApp(s.cfg, logger)
	enter(modeApply, target, app)

	res, err := runner.Run(app, events, runner.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("apply %s: %w", path, err)
	}
	summary := fmt.Sprintf("applied %d events over %d ticks (%s)", res.Delivered, res.Ticks, res.Reason)
	if res.Reason == runner.ReasonHostExit {
		summary += fmt.Sprintf(", exit code %d", res.Exit.Code)
	}
	fmt.Fprintln(s.stdout, summaryStyle.Render(summary))
	return nil
}

func (s session) gui(target Target) error {
	logger := s.logger.With("mode", modeGUI)
	app := newApp(s.cfg, logger)
	enter(modeGUI, target, app)
	return app.Run()
}
