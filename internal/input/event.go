package input

import "fmt"

// Kind identifies the category of an input event. The numeric values are the
// variant tags written by the codec and must not be reordered.
type Kind uint32

const (
	KindButtonChange Kind = iota
	KindKeyChange
	KindWheelScroll
	KindPointerDelta
	KindPointerMoved
	KindSurfaceResized
	KindFrameBoundary
)

var kindNames = [...]string{
	KindButtonChange:   "ButtonChange",
	KindKeyChange:      "KeyChange",
	KindWheelScroll:    "WheelScroll",
	KindPointerDelta:   "PointerDelta",
	KindPointerMoved:   "PointerMoved",
	KindSurfaceResized: "SurfaceResized",
	KindFrameBoundary:  "FrameBoundary",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

// Event is one normalized input occurrence, or the FrameBoundary sentinel.
// The set of implementations is closed to this package.
type Event interface {
	Kind() Kind
	String() string
	isEvent()
}

type ElementState uint32

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("ElementState(%d)", uint32(s))
	}
}

type ButtonCode uint32

const (
	ButtonLeft ButtonCode = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

// MouseButton names a pointer button. Other is only meaningful when Code is
// ButtonOther.
type MouseButton struct {
	Code  ButtonCode
	Other uint16
}

func (b MouseButton) String() string {
	switch b.Code {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonOther:
		return fmt.Sprintf("other(%d)", b.Other)
	default:
		return fmt.Sprintf("ButtonCode(%d)", uint32(b.Code))
	}
}

type ScrollUnit uint32

const (
	ScrollLine ScrollUnit = iota
	ScrollPixel
)

func (u ScrollUnit) String() string {
	switch u {
	case ScrollLine:
		return "line"
	case ScrollPixel:
		return "pixel"
	default:
		return fmt.Sprintf("ScrollUnit(%d)", uint32(u))
	}
}

// WindowID is an opaque window identifier. Recordings only ever carry the
// primary window.
type WindowID [16]byte

var PrimaryWindow WindowID

func (w WindowID) String() string {
	if w == PrimaryWindow {
		return "primary"
	}
	return fmt.Sprintf("%x", [16]byte(w))
}

type ButtonChange struct {
	Button MouseButton
	State  ElementState
}

type KeyChange struct {
	ScanCode uint32
	Key      *Key
	State    ElementState
}

type WheelScroll struct {
	Unit ScrollUnit
	X, Y float32
}

type PointerDelta struct {
	DX, DY float32
}

type PointerMoved struct {
	Window WindowID
	X, Y   float32
}

type SurfaceResized struct {
	Window        WindowID
	Width, Height float32
}

// FrameBoundary means: deliver everything buffered so far, then advance the
// host by one tick.
type FrameBoundary struct{}

func (ButtonChange) Kind() Kind   { return KindButtonChange }
func (KeyChange) Kind() Kind      { return KindKeyChange }
func (WheelScroll) Kind() Kind    { return KindWheelScroll }
func (PointerDelta) Kind() Kind   { return KindPointerDelta }
func (PointerMoved) Kind() Kind   { return KindPointerMoved }
func (SurfaceResized) Kind() Kind { return KindSurfaceResized }
func (FrameBoundary) Kind() Kind  { return KindFrameBoundary }

func (ButtonChange) isEvent()   {}
func (KeyChange) isEvent()      {}
func (WheelScroll) isEvent()    {}
func (PointerDelta) isEvent()   {}
func (PointerMoved) isEvent()   {}
func (SurfaceResized) isEvent() {}
func (FrameBoundary) isEvent()  {}

func (e ButtonChange) String() string {
	return fmt.Sprintf("ButtonChange(%s, %s)", e.Button, e.State)
}

func (e KeyChange) String() string {
	key := "none"
	if e.Key != nil {
		key = e.Key.String()
	}
	return fmt.Sprintf("KeyChange(scan=%d, key=%s, %s)", e.ScanCode, key, e.State)
}

func (e WheelScroll) String() string {
	return fmt.Sprintf("WheelScroll(%s, %g, %g)", e.Unit, e.X, e.Y)
}

func (e PointerDelta) String() string {
	return fmt.Sprintf("PointerDelta(%g, %g)", e.DX, e.DY)
}

func (e PointerMoved) String() string {
	return fmt.Sprintf("PointerMoved(%s, %g, %g)", e.Window, e.X, e.Y)
}

func (e SurfaceResized) String() string {
	return fmt.Sprintf("SurfaceResized(%s, %g, %g)", e.Window, e.Width, e.Height)
}

func (FrameBoundary) String() string { return "FrameBoundary" }

// KeyPtr returns a pointer to k, for building KeyChange literals.
func KeyPtr(k Key) *Key {
	return &k
}
