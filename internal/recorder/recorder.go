// Package recorder captures the host's input events tick by tick and writes
// them as an encoded stream that the runner can replay.
package recorder

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/tickreplay/internal/codec"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
	"github.com/appengine-ltd/tickreplay/internal/logging"
	"github.com/appengine-ltd/tickreplay/internal/translate"
)

// Recorder is a host plugin. It owns its writer; Close must be called once
// the app stops.
type Recorder struct {
	w      io.WriteCloser
	logger *log.Logger

	frames int
	events int
	err    error
	closed bool
}

type Option func(*Recorder)

func WithLogger(l *log.Logger) Option {
	return func(r *Recorder) { r.logger = logging.OrDiscard(l) }
}

func New(w io.WriteCloser, opts ...Option) *Recorder {
	r := &Recorder{w: w, logger: logging.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (*Recorder) Name() string { return "recorder" }

// Build schedules the capture system in StageLast. Channels the app does not
// provide are skipped.
func (r *Recorder) Build(a *host.App) {
	var collectors []func([]input.Event) []input.Event
	collectors = appendCollector(collectors, a.World, translate.ButtonChange)
	collectors = appendCollector(collectors, a.World, translate.KeyChange)
	collectors = appendCollector(collectors, a.World, translate.WheelScroll)
	collectors = appendCollector(collectors, a.World, translate.PointerDelta)
	collectors = appendCollector(collectors, a.World, translate.PointerMoved)
	collectors = appendCollector(collectors, a.World, translate.SurfaceResized)

	a.AddSystem(host.StageLast, func(*host.World) {
		var batch []input.Event
		for _, collect := range collectors {
			batch = collect(batch)
		}
		r.write(append(batch, input.FrameBoundary{}))
	})
}

func appendCollector[T any, E input.Event](collectors []func([]input.Event) []input.Event, w *host.World, convert func(T) E) []func([]input.Event) []input.Event {
	ch, ok := host.EventsOf[T](w)
	if !ok {
		return collectors
	}
	var reader host.Reader[T]
	return append(collectors, func(batch []input.Event) []input.Event {
		for _, ev := range reader.Read(ch) {
			batch = append(batch, convert(ev))
		}
		return batch
	})
}

func (r *Recorder) write(batch []input.Event) {
	if r.err != nil || r.closed {
		return
	}
	if _, err := r.w.Write(codec.EncodeAll(batch)); err != nil {
		r.err = fmt.Errorf("record frame %d: %w", r.frames, err)
		r.logger.Error("recording stopped", "frame", r.frames, "err", err)
		return
	}
	r.frames++
	r.events += len(batch) - 1
}

// Frames is the number of ticks written so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Events is the number of non-boundary events written so far.
func (r *Recorder) Events() int {
	return r.events
}

// Err reports the first write failure. Writing stops after it.
func (r *Recorder) Err() error {
	return r.err
}

// Close flushes and closes the writer. Later ticks write nothing.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.w.Close()
	r.logger.Info("recording closed", "frames", r.frames, "events", r.events)
	if err != nil {
		return fmt.Errorf("close recording: %w", err)
	}
	return r.err
}
