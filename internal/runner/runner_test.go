package runner

import (
	"errors"
	"reflect"
	"testing"

	"github.com/appengine-ltd/tickreplay/internal/eventlog"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
)

// tracker is a tiny simulation: it counts startup runs and ticks, records the
// motion it sees and exits when Escape is pressed.
type tracker struct {
	startups int
	ticks    int
	motion   []host.Vec2
	panicOn  host.KeyCode
}

type marker struct{}

func (*tracker) Name() string { return "test.tracker" }

func (p *tracker) Build(a *host.App) {
	a.AddStartupSystem(host.StageStartup, func(w *host.World) {
		p.startups++
		w.Spawn(marker{})
	})
	motion, _ := host.EventsOf[host.MouseMotion](a.World)
	var reader host.Reader[host.MouseMotion]
	a.AddSystem(host.StageUpdate, func(w *host.World) {
		p.ticks++
		for _, ev := range reader.Read(motion) {
			p.motion = append(p.motion, ev.Delta)
		}
		keys, _ := host.Resource[host.Keys](w)
		if keys.JustPressed(host.KeyEscape) {
			host.Exit(w, 3)
		}
		if p.panicOn != 0 && keys.JustPressed(p.panicOn) {
			panic("tracker: panic key pressed")
		}
	})
}

func newApp(p *tracker) *host.App {
	app := host.NewApp()
	app.AddPlugin(host.InputPlugin{}).AddPlugin(host.WindowPlugin{}).AddPlugin(p)
	return app
}

func press(k input.Key) input.Event {
	return input.KeyChange{Key: input.KeyPtr(k), State: input.Pressed}
}

func TestThreeBoundariesGiveThreeTicks(t *testing.T) {
	events := []input.Event{
		input.PointerDelta{DX: 1},
		input.FrameBoundary{},
		input.PointerDelta{DX: 2},
		input.FrameBoundary{},
		input.FrameBoundary{},
	}
	stepping := 0
	var states []State
	r := New(newApp(&tracker{}), eventlog.New(events), WithHooks(Hooks{
		OnTransition: func(_, to State) {
			states = append(states, to)
			if to == SteppingHost {
				stepping++
			}
		},
	}))
	res, err := r.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stepping != 3 || res.Ticks != 3 {
		t.Fatalf("expected 3 stepping transitions, got %d (ticks %d)", stepping, res.Ticks)
	}
	if res.Reason != ReasonExhausted {
		t.Fatalf("expected exhausted, got %s", res.Reason)
	}
	want := []State{
		AwaitingEvents, SteppingHost, CheckingExit,
		AwaitingEvents, SteppingHost, CheckingExit,
		AwaitingEvents, SteppingHost, CheckingExit,
		Finished,
	}
	if !reflect.DeepEqual(states, want) {
		t.Fatalf("expected transitions %v, got %v", want, states)
	}
	if r.State() != Finished {
		t.Fatalf("expected terminal state, got %s", r.State())
	}
}

func TestResetRunsStartupAndBaselineTick(t *testing.T) {
	p := &tracker{}
	app := newApp(p)
	app.World.Spawn("left over")
	r := New(app, eventlog.New([]input.Event{input.FrameBoundary{}}))
	if err := r.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if r.State() != AwaitingEvents {
		t.Fatalf("expected awaiting events after reset, got %s", r.State())
	}
	if p.startups != 1 || p.ticks != 1 {
		t.Fatalf("expected one startup and one baseline tick, got %d/%d", p.startups, p.ticks)
	}
	if app.World.Len() != 1 {
		t.Fatalf("expected only the startup entity, got %d", app.World.Len())
	}
}

func TestDeliversEventsInOrderPerTick(t *testing.T) {
	p := &tracker{}
	events := []input.Event{
		input.PointerDelta{DX: 1, DY: 1},
		input.PointerDelta{DX: 2, DY: 2},
		input.FrameBoundary{},
		input.PointerDelta{DX: 3, DY: 3},
	}
	var batches [][]input.Event
	res, err := Run(newApp(p), events, WithHooks(Hooks{
		OnBatch: func(_ int, batch []input.Event) { batches = append(batches, batch) },
	}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	wantMotion := []host.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	if !reflect.DeepEqual(p.motion, wantMotion) {
		t.Fatalf("expected motion %v, got %v", wantMotion, p.motion)
	}
	if len(batches) != 2 || len(batches[0]) != 2 || len(batches[1]) != 1 {
		t.Fatalf("expected batches of 2 and 1, got %v", batches)
	}
	if res.Ticks != 2 || res.Delivered != 3 {
		t.Fatalf("expected 2 ticks and 3 delivered, got %+v", res)
	}
}

func TestHostExitStopsEarly(t *testing.T) {
	events := []input.Event{
		input.FrameBoundary{},
		press(input.KeyEscape),
		input.FrameBoundary{},
		input.FrameBoundary{},
		input.FrameBoundary{},
	}
	res, err := Run(newApp(&tracker{}), events)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Reason != ReasonHostExit || res.Exit.Code != 3 {
		t.Fatalf("expected host exit with code 3, got %+v", res)
	}
	if res.Ticks != 2 {
		t.Fatalf("expected exit after 2 ticks, got %d", res.Ticks)
	}
}

func TestMissingChannelIsFatal(t *testing.T) {
	app := host.NewApp()
	app.AddPlugin(host.InputPlugin{})
	events := []input.Event{
		input.PointerDelta{DX: 1},
		input.PointerMoved{X: 5, Y: 5},
		input.FrameBoundary{},
	}
	r := New(app, eventlog.New(events))
	_, err := r.Run()
	var missing *MissingCapabilityError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCapabilityError, got %v", err)
	}
	if missing.Kind != input.KindPointerMoved || missing.Capability != "host.window" {
		t.Fatalf("expected pointer-moved on host.window, got %+v", missing)
	}
	if r.State() != Finished {
		t.Fatalf("expected runner to stop, got %s", r.State())
	}
}

func TestHostPanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected host panic to reach the caller")
		}
	}()
	_, _ = Run(newApp(&tracker{panicOn: host.KeyZ}), []input.Event{press(input.KeyZ), input.FrameBoundary{}})
}

func TestStreamWithoutBoundaryRunsOneTick(t *testing.T) {
	res, err := Run(newApp(&tracker{}), []input.Event{input.PointerDelta{DX: 1}, input.PointerDelta{DX: 2}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Ticks != 1 || res.Delivered != 2 || res.Reason != ReasonExhausted {
		t.Fatalf("expected one tick delivering both events, got %+v", res)
	}
}

func TestExhaustedReportedBeforeBound(t *testing.T) {
	streams := [][]input.Event{
		{input.FrameBoundary{}},
		{input.PointerDelta{DX: 1}, input.FrameBoundary{}, input.FrameBoundary{}},
		{input.FrameBoundary{}, input.PointerDelta{DX: 1}},
		{input.PointerDelta{DX: 1}},
	}
	for i, events := range streams {
		res, err := Run(newApp(&tracker{}), events)
		if err != nil {
			t.Fatalf("stream %d: run: %v", i, err)
		}
		if res.Reason != ReasonExhausted {
			t.Fatalf("stream %d: expected %s, got %s", i, ReasonExhausted, res.Reason)
		}
	}
	if ReasonBound.String() != "bound" {
		t.Fatalf("expected bound, got %q", ReasonBound.String())
	}
}

func TestGarbageLikeStreamsTerminate(t *testing.T) {
	for n := 0; n < 64; n++ {
		events := make([]input.Event, 0, n)
		for i := 0; i < n; i++ {
			if i%3 == 0 {
				events = append(events, input.FrameBoundary{})
			} else {
				events = append(events, input.PointerDelta{DX: float32(i)})
			}
		}
		res, err := Run(newApp(&tracker{}), events)
		if err != nil {
			t.Fatalf("run %d: %v", n, err)
		}
		if res.Ticks > n+1 {
			t.Fatalf("expected at most %d ticks for %d events, got %d", n+1, n, res.Ticks)
		}
	}
}

type trace struct {
	ticks   int
	batches [][]input.Event
	motion  []host.Vec2
}

func replayOnce(t *testing.T, events []input.Event) trace {
	t.Helper()
	p := &tracker{}
	var tr trace
	res, err := Run(newApp(p), events, WithHooks(Hooks{
		OnBatch: func(_ int, batch []input.Event) { tr.batches = append(tr.batches, batch) },
	}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	tr.ticks = res.Ticks
	tr.motion = p.motion
	return tr
}

func TestReplayIsDeterministic(t *testing.T) {
	events := []input.Event{
		input.SurfaceResized{Width: 640, Height: 480},
		input.PointerDelta{DX: -4, DY: 1},
		input.FrameBoundary{},
		input.KeyChange{ScanCode: 17, Key: input.KeyPtr(input.KeyW), State: input.Pressed},
		input.PointerDelta{DX: 26, DY: 25},
		input.FrameBoundary{},
		input.ButtonChange{Button: input.MouseButton{Code: input.ButtonLeft}, State: input.Pressed},
		input.FrameBoundary{},
	}
	a := replayOnce(t, events)
	b := replayOnce(t, events)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical traces, got %+v and %+v", a, b)
	}
	if a.ticks != 3 {
		t.Fatalf("expected 3 ticks, got %d", a.ticks)
	}
}

func TestReusedHostMatchesFreshHost(t *testing.T) {
	first := []input.Event{press(input.KeyW), input.PointerDelta{DX: 9}, input.FrameBoundary{}}
	second := []input.Event{input.PointerDelta{DX: 1}, input.FrameBoundary{}, input.FrameBoundary{}}

	p := &tracker{}
	app := newApp(p)
	if _, err := Run(app, first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	p.motion, p.ticks, p.startups = nil, 0, 0
	reused, err := Run(app, second)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	keys, _ := host.Resource[host.Keys](app.World)
	if keys.Down(host.KeyW) {
		t.Fatalf("expected key state from the previous run to be reset")
	}

	fresh := &tracker{}
	freshRes, err := Run(newApp(fresh), second)
	if err != nil {
		t.Fatalf("fresh run: %v", err)
	}
	if reused != freshRes || !reflect.DeepEqual(p.motion, fresh.motion) || p.ticks != fresh.ticks {
		t.Fatalf("expected reused host to behave like a fresh one: %+v/%v vs %+v/%v", reused, p.motion, freshRes, fresh.motion)
	}
	if app.World.Len() != 1 {
		t.Fatalf("expected startup entities not to accumulate, got %d", app.World.Len())
	}
}
