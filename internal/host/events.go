package host

// Events is a double-buffered event channel. An event survives two Update
// calls so systems running before and after the sender in a tick both see
// it. Readers track their own position.
type Events[T any] struct {
	prev      []T
	cur       []T
	prevStart uint64
	curStart  uint64
}

func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

func (e *Events[T]) Send(ev T) {
	e.cur = append(e.cur, ev)
}

// Update drops the older buffer. It runs once per tick in StageFirst.
func (e *Events[T]) Update() {
	e.prev, e.cur = e.cur, e.prev[:0]
	e.prevStart = e.curStart
	e.curStart = e.prevStart + uint64(len(e.prev))
}

// Clear drops every buffered event and moves the id window past them.
func (e *Events[T]) Clear() {
	e.curStart += uint64(len(e.cur))
	e.prevStart = e.curStart
	e.prev = e.prev[:0]
	e.cur = e.cur[:0]
}

// Reset implements Resetter.
func (e *Events[T]) Reset() {
	e.Clear()
}

// Len reports the number of buffered events.
func (e *Events[T]) Len() int {
	return len(e.prev) + len(e.cur)
}

func (e *Events[T]) end() uint64 {
	return e.curStart + uint64(len(e.cur))
}

// Reader iterates events a consumer has not seen yet.
type Reader[T any] struct {
	next uint64
}

// Read returns the unseen events in send order. Events that were already
// dropped by Update are skipped.
func (r *Reader[T]) Read(e *Events[T]) []T {
	var out []T
	if r.next < e.prevStart {
		r.next = e.prevStart
	}
	if r.next < e.curStart {
		out = append(out, e.prev[r.next-e.prevStart:]...)
		r.next = e.curStart
	}
	if r.next < e.end() {
		out = append(out, e.cur[r.next-e.curStart:]...)
	}
	r.next = e.end()
	return out
}

// Last returns the most recent unseen event and marks everything as seen.
func (r *Reader[T]) Last(e *Events[T]) (T, bool) {
	evs := r.Read(e)
	if len(evs) == 0 {
		var zero T
		return zero, false
	}
	return evs[len(evs)-1], true
}

// AddEvent registers a channel for T and schedules its buffer swap.
func AddEvent[T any](a *App) *Events[T] {
	if ev, ok := EventsOf[T](a.World); ok {
		return ev
	}
	ev := NewEvents[T]()
	InsertResource(a.World, ev)
	a.AddSystem(StageFirst, func(*World) { ev.Update() })
	return ev
}

// EventsOf looks up the channel for T.
func EventsOf[T any](w *World) (*Events[T], bool) {
	return Resource[Events[T]](w)
}
