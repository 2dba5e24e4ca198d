package runner

import (
	"fmt"

	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
	"github.com/appengine-ltd/tickreplay/internal/translate"
)

// MissingCapabilityError means the host has no channel for a category of
// event in the stream. It points at a misconfigured capability set, never at
// bad input.
type MissingCapabilityError struct {
	Kind       input.Kind
	Capability string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("missing %s channel for %s events (provided by %s)", channelName(e.Kind), e.Kind, e.Capability)
}

func channelName(k input.Kind) string {
	switch k {
	case input.KindButtonChange:
		return "MouseButtonInput"
	case input.KindKeyChange:
		return "KeyboardInput"
	case input.KindWheelScroll:
		return "MouseWheel"
	case input.KindPointerDelta:
		return "MouseMotion"
	case input.KindPointerMoved:
		return "CursorMoved"
	case input.KindSurfaceResized:
		return "WindowResized"
	default:
		return "unknown"
	}
}

func send[T any](w *host.World, kind input.Kind, capability string, ev T) error {
	ch, ok := host.EventsOf[T](w)
	if !ok {
		return &MissingCapabilityError{Kind: kind, Capability: capability}
	}
	ch.Send(ev)
	return nil
}

// deliver pushes one non-boundary event into its host channel.
func deliver(w *host.World, ev input.Event) error {
	inputCap := host.InputPlugin{}.Name()
	windowCap := host.WindowPlugin{}.Name()
	switch e := ev.(type) {
	case input.ButtonChange:
		return send(w, e.Kind(), inputCap, translate.MouseButtonInput(e))
	case input.KeyChange:
		return send(w, e.Kind(), inputCap, translate.KeyboardInput(e))
	case input.WheelScroll:
		return send(w, e.Kind(), inputCap, translate.MouseWheel(e))
	case input.PointerDelta:
		return send(w, e.Kind(), inputCap, translate.MouseMotion(e))
	case input.PointerMoved:
		return send(w, e.Kind(), windowCap, translate.CursorMoved(e))
	case input.SurfaceResized:
		return send(w, e.Kind(), windowCap, translate.WindowResized(e))
	}
	return nil
}
