// Package host is a small tick-stepped application framework: a world of
// entities and resources, typed event channels, ordered stages and plugins.
// The replay harness drives it from the outside.
package host

import (
	"reflect"
	"sort"
)

type Entity uint64

// World stores entities with one opaque component value each, plus
// resources keyed by their Go type.
type World struct {
	next      Entity
	entities  map[Entity]any
	resources map[reflect.Type]any
}

func NewWorld() *World {
	return &World{
		entities:  make(map[Entity]any),
		resources: make(map[reflect.Type]any),
	}
}

func (w *World) Spawn(component any) Entity {
	w.next++
	w.entities[w.next] = component
	return w.next
}

func (w *World) Despawn(e Entity) {
	delete(w.entities, e)
}

func (w *World) Get(e Entity) (any, bool) {
	c, ok := w.entities[e]
	return c, ok
}

func (w *World) Set(e Entity, component any) {
	if _, ok := w.entities[e]; ok {
		w.entities[e] = component
	}
}

// ClearEntities removes every entity. Resources are kept. Entity ids restart
// so a cleared world allocates the same ids as a fresh one.
func (w *World) ClearEntities() {
	w.entities = make(map[Entity]any)
	w.next = 0
}

// Resetter is implemented by resources holding per-run dynamic state.
type Resetter interface {
	Reset()
}

// Reset clears every entity and resets each resource implementing Resetter,
// leaving the world equivalent to a freshly built one before startup.
func (w *World) Reset() {
	w.ClearEntities()
	for _, r := range w.resources {
		if rs, ok := r.(Resetter); ok {
			rs.Reset()
		}
	}
}

func (w *World) Len() int {
	return len(w.entities)
}

// EachEntity visits entities in ascending id order.
func (w *World) EachEntity(fn func(Entity, any)) {
	ids := make([]Entity, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn(id, w.entities[id])
	}
}

// InsertResource stores r under the type of *T, replacing any previous one.
func InsertResource[T any](w *World, r *T) {
	w.resources[reflect.TypeFor[T]()] = r
}

// Resource fetches the resource of type T.
func Resource[T any](w *World) (*T, bool) {
	r, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

func RemoveResource[T any](w *World) {
	delete(w.resources, reflect.TypeFor[T]())
}
