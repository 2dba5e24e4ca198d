package bootstrap

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/tickreplay/internal/codec"
	"github.com/appengine-ltd/tickreplay/internal/config"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
	"github.com/appengine-ltd/tickreplay/internal/runner"
	"github.com/appengine-ltd/tickreplay/internal/stream"
)

// Tally counts what the counter target observed.
type Tally struct {
	Startups int
	Presses  int
}

// counter is a minimal target. When script is set it replaces the window
// loop so record and gui modes can run without a display.
type counter struct {
	Defaults
	script host.Runner
	builds int
}

func (*counter) Name() string { return "test.counter" }

func (c *counter) Build(a *host.App) {
	c.builds++
	tally := &Tally{}
	host.InsertResource(a.World, tally)
	a.AddStartupSystem(host.StageStartup, func(w *host.World) {
		tally.Startups++
		w.Spawn("camper")
	})
	a.AddSystem(host.StageUpdate, func(w *host.World) {
		keys, _ := host.Resource[host.Keys](w)
		if keys.JustPressed(host.KeyA) {
			tally.Presses++
		}
		if keys.JustPressed(host.KeyEscape) {
			host.Exit(w, 7)
		}
	})
}

func (c *counter) GUICapabilities(a *host.App) {
	if c.script == nil {
		c.Defaults.GUICapabilities(a)
		return
	}
	c.Defaults.HeadlessCapabilities(a)
	a.SetRunner(c.script)
}

func pressA(a *host.App, state host.ButtonState) {
	ch, _ := host.EventsOf[host.KeyboardInput](a.World)
	ch.Send(host.KeyboardInput{Key: host.KeyA, HasKey: true, State: state})
}

func scripted(a *host.App) error {
	a.RunStartup()
	pressA(a, host.StatePressed)
	a.Update()
	pressA(a, host.StateReleased)
	a.Update()
	a.Update()
	return nil
}

func quiet(t *testing.T) {
	t.Helper()
	t.Setenv("TICKREPLAY_LOG_LEVEL", "error")
}

func TestHeadlessModesDisableNativeRunner(t *testing.T) {
	for _, m := range []mode{modeApply, modeFuzz} {
		app := newApp(config.Config{}, nil)
		enter(m, &counter{}, app)
		if err := app.Run(); !errors.Is(err, ErrNativeRunnerDisabled) {
			t.Fatalf("%s: expected ErrNativeRunnerDisabled, got %v", m, err)
		}
		if !app.HasPlugin("host.input") || !app.HasPlugin("host.window") {
			t.Fatalf("%s: expected headless capabilities", m)
		}
		if app.HasPlugin("gui.window") {
			t.Fatalf("%s: expected no window", m)
		}
	}
}

func TestGUIModesInstallWindow(t *testing.T) {
	for _, m := range []mode{modeRecord, modeGUI} {
		app := newApp(config.Config{WindowWidth: 640, WindowHeight: 480}, nil)
		enter(m, &counter{}, app)
		if !app.HasPlugin("gui.window") || app.HasPlugin("bootstrap.harness") {
			t.Fatalf("%s: expected the window capability set", m)
		}
		win, _ := host.Resource[host.Window](app.World)
		if win.Width != 640 || win.Height != 480 {
			t.Fatalf("%s: expected window sized from config, got %vx%v", m, win.Width, win.Height)
		}
	}
}

func TestHarnessDespawnsAtStartup(t *testing.T) {
	app := host.NewApp()
	app.AddPlugin(Harness{})
	app.World.Spawn("stale")
	app.World.Spawn("stale")
	app.RunStartup()
	if app.World.Len() != 0 {
		t.Fatalf("expected no entities, got %d", app.World.Len())
	}
}

func TestFuzzContextSkipsUselessInput(t *testing.T) {
	ctx := NewFuzzContext(&counter{})
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		{0x02, 0x7F, 0x00},
		{0x02, 0x06},
	}
	for _, data := range inputs {
		if err := ctx.Iterate(data); err != nil {
			t.Fatalf("expected %x to be skipped, got %v", data, err)
		}
	}
	if ctx.Built() {
		t.Fatalf("expected no host to be built for skipped input")
	}
}

func TestRunOnceEmptyStreamSkipsBuild(t *testing.T) {
	target := &counter{}
	ctx := NewFuzzContext(target)
	for _, events := range [][]input.Event{nil, {}} {
		res, err := ctx.RunOnce(events)
		if err != nil {
			t.Fatalf("run once: %v", err)
		}
		if res != (runner.Result{}) {
			t.Fatalf("expected the zero result, got %+v", res)
		}
	}
	if ctx.Built() || target.builds != 0 {
		t.Fatalf("expected no host for an empty stream, got %d builds", target.builds)
	}
}

func TestFuzzContextBuildsOnceAndReuses(t *testing.T) {
	target := &counter{}
	batches := 0
	ctx := NewFuzzContext(target, WithHooks(runner.Hooks{
		OnBatch: func(int, []input.Event) { batches++ },
	}))
	data := codec.EncodeAll([]input.Event{
		input.KeyChange{Key: input.KeyPtr(input.KeyA), State: input.Pressed},
		input.FrameBoundary{},
		input.FrameBoundary{},
	})
	for i := 0; i < 3; i++ {
		if err := ctx.Iterate(data); err != nil {
			t.Fatalf("iterate %d: %v", i, err)
		}
	}
	if !ctx.Built() || target.builds != 1 {
		t.Fatalf("expected a single build, got %d", target.builds)
	}
	if batches != 6 {
		t.Fatalf("expected 2 batches per iteration, got %d", batches)
	}

	res, err := ctx.RunOnce([]input.Event{
		input.KeyChange{Key: input.KeyPtr(input.KeyEscape), State: input.Pressed},
		input.FrameBoundary{},
		input.FrameBoundary{},
	})
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if res.Reason != runner.ReasonHostExit || res.Exit.Code != 7 {
		t.Fatalf("expected host exit 7, got %+v", res)
	}
}

func TestFuzzContextMatchesFreshHost(t *testing.T) {
	warm := NewFuzzContext(&counter{})
	_ = warm.Iterate(codec.EncodeAll([]input.Event{
		input.KeyChange{Key: input.KeyPtr(input.KeyA), State: input.Pressed},
		input.PointerMoved{X: 9, Y: 9},
	}))
	events := []input.Event{
		input.KeyChange{Key: input.KeyPtr(input.KeyA), State: input.Released},
		input.FrameBoundary{},
		input.KeyChange{Key: input.KeyPtr(input.KeyA), State: input.Pressed},
		input.FrameBoundary{},
	}
	warmRes, err := warm.RunOnce(events)
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	freshRes, err := NewFuzzContext(&counter{}).RunOnce(events)
	if err != nil {
		t.Fatalf("fresh: %v", err)
	}
	if warmRes != freshRes {
		t.Fatalf("expected %+v, got %+v", freshRes, warmRes)
	}
	tally, _ := host.Resource[Tally](warm.app.World)
	if tally.Presses != 2 || tally.Startups != 2 {
		t.Fatalf("expected one press and one startup per run, got %+v", tally)
	}
}

func TestMainWithoutModePrintsUsage(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	if err := Main(&counter{}, nil, &out); err != nil {
		t.Fatalf("main: %v", err)
	}
	if !strings.Contains(out.String(), "usage: test.counter") || !strings.Contains(out.String(), "apply PATH") {
		t.Fatalf("expected usage, got %q", out.String())
	}
}

func TestMainSuggestsCloseMode(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	err := Main(&counter{}, []string{"viw", "x.bin"}, &out)
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if !strings.Contains(out.String(), `did you mean "view"?`) {
		t.Fatalf("expected a suggestion, got %q", out.String())
	}

	out.Reset()
	_ = Main(&counter{}, []string{"fuzzle"}, &out)
	if strings.Contains(out.String(), "did you mean") {
		t.Fatalf("expected no suggestion for a distant name, got %q", out.String())
	}
}

func TestSuggestMode(t *testing.T) {
	cases := map[string]string{
		"recrod": "record",
		"aply":   "apply",
		"giu":    "",
		"gu":     "gui",
		"vie":    "view",
		"zzzzzz": "",
	}
	for in, want := range cases {
		if got := suggestMode(in); got != want {
			t.Fatalf("suggestMode(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestMainMissingPathPrintsHint(t *testing.T) {
	quiet(t)
	for _, name := range []string{"view", "apply"} {
		var out bytes.Buffer
		if err := Main(&counter{}, []string{name}, &out); err != nil {
			t.Fatalf("%s: expected nil, got %v", name, err)
		}
		if !strings.Contains(out.String(), "needs the path of a recorded stream") {
			t.Fatalf("%s: expected a usage hint, got %q", name, out.String())
		}
	}
}

func TestRecordViewApply(t *testing.T) {
	quiet(t)
	path := filepath.Join(t.TempDir(), "session.bin.zst")
	target := &counter{script: scripted}

	var out bytes.Buffer
	if err := Main(target, []string{"-out", path, "record"}, &out); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(out.String(), "recorded 3 frames (2 events)") {
		t.Fatalf("expected record summary, got %q", out.String())
	}

	data, err := stream.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	events, err := codec.Decode(data)
	if err != nil || len(events) != 5 {
		t.Fatalf("expected 5 recorded events, got %v (%v)", events, err)
	}

	out.Reset()
	if err := Main(target, []string{"view", path}, &out); err != nil {
		t.Fatalf("view: %v", err)
	}
	view := out.String()
	if !strings.Contains(view, "key=A, pressed") || !strings.Contains(view, "key=A, released") {
		t.Fatalf("expected key events in view, got %q", view)
	}
	if !strings.Contains(view, "5 events, 3 frames") {
		t.Fatalf("expected view summary, got %q", view)
	}

	out.Reset()
	if err := Main(&counter{}, []string{"apply", path}, &out); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.Contains(out.String(), "applied 2 events over 3 ticks (exhausted)") {
		t.Fatalf("expected apply summary, got %q", out.String())
	}
}

func TestRecordUsesConfiguredPath(t *testing.T) {
	quiet(t)
	path := filepath.Join(t.TempDir(), "from-env.bin")
	t.Setenv("TICKREPLAY_RECORDING_PATH", path)
	var out bytes.Buffer
	if err := Main(&counter{script: scripted}, []string{"record"}, &out); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected recording at %s: %v", path, err)
	}
}

func TestApplyReportsHostExit(t *testing.T) {
	quiet(t)
	path := filepath.Join(t.TempDir(), "exit.bin")
	data := codec.EncodeAll([]input.Event{
		input.KeyChange{Key: input.KeyPtr(input.KeyEscape), State: input.Pressed},
		input.FrameBoundary{},
		input.FrameBoundary{},
	})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := Main(&counter{}, []string{"apply", path}, &out); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.Contains(out.String(), "(host_exit), exit code 7") {
		t.Fatalf("expected host exit summary, got %q", out.String())
	}
}

func TestApplyErrors(t *testing.T) {
	quiet(t)
	dir := t.TempDir()

	err := Main(&counter{}, []string{"apply", filepath.Join(dir, "missing.bin")}, &bytes.Buffer{})
	var ioErr *stream.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.bin")
	if err := os.WriteFile(corrupt, []byte{0x02, 0x7F, 0x00}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	err = Main(&counter{}, []string{"view", corrupt}, &bytes.Buffer{})
	var decodeErr *codec.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestMainRejectsBadConfig(t *testing.T) {
	t.Setenv("TICKREPLAY_WINDOW_WIDTH", "wide")
	if err := Main(&counter{}, []string{"gui"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}
