// Package translate converts between wire input events and the host's
// native event types.
package translate

import (
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
)

func hostState(s input.ElementState) host.ButtonState {
	if s == input.Released {
		return host.StateReleased
	}
	return host.StatePressed
}

func wireState(s host.ButtonState) input.ElementState {
	if s == host.StateReleased {
		return input.Released
	}
	return input.Pressed
}

func MouseButtonInput(e input.ButtonChange) host.MouseButtonInput {
	out := host.MouseButtonInput{State: hostState(e.State)}
	switch e.Button.Code {
	case input.ButtonLeft:
		out.Button.Button = host.MouseLeft
	case input.ButtonRight:
		out.Button.Button = host.MouseRight
	case input.ButtonMiddle:
		out.Button.Button = host.MouseMiddle
	default:
		out.Button = host.PointerButton{Button: host.MouseOther, ID: e.Button.Other}
	}
	return out
}

func ButtonChange(e host.MouseButtonInput) input.ButtonChange {
	out := input.ButtonChange{State: wireState(e.State)}
	switch e.Button.Button {
	case host.MouseLeft:
		out.Button.Code = input.ButtonLeft
	case host.MouseRight:
		out.Button.Code = input.ButtonRight
	case host.MouseMiddle:
		out.Button.Code = input.ButtonMiddle
	default:
		out.Button = input.MouseButton{Code: input.ButtonOther, Other: e.Button.ID}
	}
	return out
}

func KeyboardInput(e input.KeyChange) host.KeyboardInput {
	out := host.KeyboardInput{ScanCode: e.ScanCode, State: hostState(e.State)}
	if e.Key != nil {
		out.Key, out.HasKey = HostKey(*e.Key)
	}
	return out
}

func KeyChange(e host.KeyboardInput) input.KeyChange {
	out := input.KeyChange{ScanCode: e.ScanCode, State: wireState(e.State)}
	if e.HasKey {
		if k, ok := WireKey(e.Key); ok {
			out.Key = &k
		}
	}
	return out
}

func MouseWheel(e input.WheelScroll) host.MouseWheel {
	unit := host.ScrollLines
	if e.Unit == input.ScrollPixel {
		unit = host.ScrollPixels
	}
	return host.MouseWheel{Unit: unit, X: e.X, Y: e.Y}
}

func WheelScroll(e host.MouseWheel) input.WheelScroll {
	unit := input.ScrollLine
	if e.Unit == host.ScrollPixels {
		unit = input.ScrollPixel
	}
	return input.WheelScroll{Unit: unit, X: e.X, Y: e.Y}
}

func MouseMotion(e input.PointerDelta) host.MouseMotion {
	return host.MouseMotion{Delta: host.Vec2{X: e.DX, Y: e.DY}}
}

func PointerDelta(e host.MouseMotion) input.PointerDelta {
	return input.PointerDelta{DX: e.Delta.X, DY: e.Delta.Y}
}

func CursorMoved(e input.PointerMoved) host.CursorMoved {
	return host.CursorMoved{Window: host.WindowID(e.Window), Position: host.Vec2{X: e.X, Y: e.Y}}
}

func PointerMoved(e host.CursorMoved) input.PointerMoved {
	return input.PointerMoved{Window: input.WindowID(e.Window), X: e.Position.X, Y: e.Position.Y}
}

func WindowResized(e input.SurfaceResized) host.WindowResized {
	return host.WindowResized{Window: host.WindowID(e.Window), Width: e.Width, Height: e.Height}
}

func SurfaceResized(e host.WindowResized) input.SurfaceResized {
	return input.SurfaceResized{Window: input.WindowID(e.Window), Width: e.Width, Height: e.Height}
}
