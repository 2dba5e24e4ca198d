package bootstrap

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/tickreplay/internal/codec"
	"github.com/appengine-ltd/tickreplay/internal/config"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
	"github.com/appengine-ltd/tickreplay/internal/logging"
	"github.com/appengine-ltd/tickreplay/internal/runner"
)

// FuzzContext keeps one headless app alive across fuzz iterations. The app
// is built on the first iteration that has events to replay; every later
// iteration resets it and replays a fresh stream. Calls must not overlap.
type FuzzContext struct {
	target Target
	cfg    config.Config
	logger *log.Logger
	hooks  runner.Hooks

	app *host.App
}

type FuzzOption func(*FuzzContext)

func WithConfig(cfg config.Config) FuzzOption {
	return func(c *FuzzContext) { c.cfg = cfg }
}

func WithLogger(l *log.Logger) FuzzOption {
	return func(c *FuzzContext) { c.logger = logging.OrDiscard(l) }
}

// WithHooks observes every replay the context runs.
func WithHooks(h runner.Hooks) FuzzOption {
	return func(c *FuzzContext) { c.hooks = h }
}

func NewFuzzContext(target Target, opts ...FuzzOption) *FuzzContext {
	c := &FuzzContext{target: target, logger: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Iterate decodes data and replays it. Inputs that are empty, fail to
// decode or decode to no events are skipped without touching the app.
// Panics from the simulation propagate to the caller.
func (c *FuzzContext) Iterate(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	events, err := codec.Decode(data)
	if err != nil {
		var decodeErr *codec.DecodeError
		if errors.As(err, &decodeErr) {
			return nil
		}
		return err
	}
	if len(events) == 0 {
		return nil
	}
	_, err = c.RunOnce(events)
	return err
}

// RunOnce replays events against the shared app, building it first if
// needed. An empty stream returns the zero Result without building.
func (c *FuzzContext) RunOnce(events []input.Event) (runner.Result, error) {
	if len(events) == 0 {
		return runner.Result{}, nil
	}
	if c.app == nil {
		c.app = newApp(c.cfg, c.logger)
		enter(modeFuzz, c.target, c.app)
		c.logger.Debug("fuzz host built", "target", c.target.Name())
	}
	return runner.Run(c.app, events, runner.WithLogger(c.logger), runner.WithHooks(c.hooks))
}

// Built reports whether the shared app exists yet.
func (c *FuzzContext) Built() bool {
	return c.app != nil
}
