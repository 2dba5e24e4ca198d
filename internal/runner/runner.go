// Package runner drives a host App through a recorded or fuzzed event stream,
// one FrameBoundary-delimited batch per tick, instead of the host's native
// loop.
package runner

import (
	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/tickreplay/internal/eventlog"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
	"github.com/appengine-ltd/tickreplay/internal/logging"
)

// Hooks observe a run. Every field is optional.
type Hooks struct {
	OnTransition func(from, to State)
	// OnBatch receives the events delivered before each tick, boundary
	// excluded. The slice is owned by the callee.
	OnBatch func(tick int, batch []input.Event)
}

type Option func(*Runner)

func WithHooks(h Hooks) Option {
	return func(r *Runner) { r.hooks = h }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = logging.OrDiscard(l) }
}

// Result summarizes a finished run.
type Result struct {
	// Ticks counts SteppingHost passes, excluding the reset tick.
	Ticks     int
	Delivered int
	Reason    Reason
	// Exit is the last AppExit seen when Reason is ReasonHostExit.
	Exit host.AppExit
}

// Runner is the replay state machine for one App and one event log.
type Runner struct {
	app    *host.App
	events *eventlog.Log
	hooks  Hooks
	logger *log.Logger

	state  State
	exits  host.Reader[host.AppExit]
	result Result
}

func New(app *host.App, events *eventlog.Log, opts ...Option) *Runner {
	r := &Runner{
		app:    app,
		events: events,
		logger: logging.Discard(),
		state:  Resetting,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) State() State {
	return r.state
}

func (r *Runner) Result() Result {
	return r.result
}

// Run steps until Finished. A MissingCapabilityError aborts the run. Panics
// raised by host systems are not recovered.
func (r *Runner) Run() (Result, error) {
	for r.state != Finished {
		if err := r.Step(); err != nil {
			return r.result, err
		}
	}
	return r.result, nil
}

// Step executes the current state once and moves to the next.
func (r *Runner) Step() error {
	switch r.state {
	case Resetting:
		r.reset()
		r.transition(AwaitingEvents)
	case AwaitingEvents:
		if err := r.feed(); err != nil {
			r.transition(Finished)
			return err
		}
		r.transition(SteppingHost)
	case SteppingHost:
		r.app.Update()
		r.result.Ticks++
		r.transition(CheckingExit)
	case CheckingExit:
		if reason, done := r.checkExit(); done {
			r.result.Reason = reason
			r.logger.Debug("replay finished", "reason", reason, "ticks", r.result.Ticks, "delivered", r.result.Delivered)
			r.transition(Finished)
			return nil
		}
		r.transition(AwaitingEvents)
	}
	return nil
}

func (r *Runner) transition(to State) {
	from := r.state
	r.state = to
	if r.hooks.OnTransition != nil {
		r.hooks.OnTransition(from, to)
	}
}

// reset brings the host to an input-independent baseline: no entities, one
// pass of the first stage, the startup schedule, then a full ordinary tick.
func (r *Runner) reset() {
	w := r.app.World
	w.Reset()
	r.app.RunStage(host.StageFirst)
	r.app.RunStartup()
	r.app.Update()
	r.logger.Debug("host reset", "entities", w.Len(), "events", r.events.Len())
}

// feed delivers events up to and including the next FrameBoundary.
func (r *Runner) feed() error {
	var batch []input.Event
	boundary, found := 0, false
	for i, ev := range r.events.NextBatch() {
		if ev.Kind() == input.KindFrameBoundary {
			boundary, found = i, true
			break
		}
		if err := deliver(r.app.World, ev); err != nil {
			return err
		}
		r.result.Delivered++
		if r.hooks.OnBatch != nil {
			batch = append(batch, ev)
		}
	}
	r.events.Advance(boundary, found)
	if r.hooks.OnBatch != nil {
		r.hooks.OnBatch(r.result.Ticks+1, batch)
	}
	pos, _ := r.events.Cursor()
	r.logger.Debug("batch delivered", "tick", r.result.Ticks+1, "cursor", pos, "boundary", found)
	return nil
}

func (r *Runner) checkExit() (Reason, bool) {
	if r.events.IsFinished() {
		return ReasonExhausted, true
	}
	// Every Advance sets the cursor, so IsFinished already covers this. The
	// bound stays as a backstop should the log's finished rule change.
	if pos, _ := r.events.Cursor(); pos >= r.events.Len() {
		return ReasonBound, true
	}
	if ch, ok := host.EventsOf[host.AppExit](r.app.World); ok {
		if exit, ok := r.exits.Last(ch); ok {
			r.result.Exit = exit
			return ReasonHostExit, true
		}
	}
	return ReasonNone, false
}

// Run replays events against app from Resetting to Finished.
func Run(app *host.App, events []input.Event, opts ...Option) (Result, error) {
	return New(app, eventlog.New(events), opts...).Run()
}
