//go:build cgo
// +build cgo

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/tickreplay/internal/host"
)

// keyTable maps every host key code to the raylib key polled for it.
var keyTable = []struct {
	raylib int32
	host   host.KeyCode
}{
	{rl.KeyEscape, host.KeyEscape},
	{rl.KeyF1, host.KeyF1},
	{rl.KeyF2, host.KeyF2},
	{rl.KeyF3, host.KeyF3},
	{rl.KeyF4, host.KeyF4},
	{rl.KeyF5, host.KeyF5},
	{rl.KeyF6, host.KeyF6},
	{rl.KeyF7, host.KeyF7},
	{rl.KeyF8, host.KeyF8},
	{rl.KeyF9, host.KeyF9},
	{rl.KeyF10, host.KeyF10},
	{rl.KeyF11, host.KeyF11},
	{rl.KeyF12, host.KeyF12},

	{rl.KeyOne, host.Key1},
	{rl.KeyTwo, host.Key2},
	{rl.KeyThree, host.Key3},
	{rl.KeyFour, host.Key4},
	{rl.KeyFive, host.Key5},
	{rl.KeySix, host.Key6},
	{rl.KeySeven, host.Key7},
	{rl.KeyEight, host.Key8},
	{rl.KeyNine, host.Key9},
	{rl.KeyZero, host.Key0},
	{rl.KeyMinus, host.KeyMinus},
	{rl.KeyEqual, host.KeyEqual},
	{rl.KeyBackspace, host.KeyBack},

	{rl.KeyTab, host.KeyTab},
	{rl.KeyQ, host.KeyQ},
	{rl.KeyW, host.KeyW},
	{rl.KeyE, host.KeyE},
	{rl.KeyR, host.KeyR},
	{rl.KeyT, host.KeyT},
	{rl.KeyY, host.KeyY},
	{rl.KeyU, host.KeyU},
	{rl.KeyI, host.KeyI},
	{rl.KeyO, host.KeyO},
	{rl.KeyP, host.KeyP},

	{rl.KeyA, host.KeyA},
	{rl.KeyS, host.KeyS},
	{rl.KeyD, host.KeyD},
	{rl.KeyF, host.KeyF},
	{rl.KeyG, host.KeyG},
	{rl.KeyH, host.KeyH},
	{rl.KeyJ, host.KeyJ},
	{rl.KeyK, host.KeyK},
	{rl.KeyL, host.KeyL},
	{rl.KeySemicolon, host.KeySemicolon},
	{rl.KeyEnter, host.KeyReturn},

	{rl.KeyLeftShift, host.KeyLShift},
	{rl.KeyZ, host.KeyZ},
	{rl.KeyX, host.KeyX},
	{rl.KeyC, host.KeyC},
	{rl.KeyV, host.KeyV},
	{rl.KeyB, host.KeyB},
	{rl.KeyN, host.KeyN},
	{rl.KeyM, host.KeyM},
	{rl.KeyComma, host.KeyComma},
	{rl.KeyPeriod, host.KeyPeriod},
	{rl.KeySlash, host.KeySlash},
	{rl.KeyRightShift, host.KeyRShift},

	{rl.KeyLeftControl, host.KeyLControl},
	{rl.KeyLeftAlt, host.KeyLAlt},
	{rl.KeySpace, host.KeySpace},
	{rl.KeyRightAlt, host.KeyRAlt},
	{rl.KeyRightControl, host.KeyRControl},

	{rl.KeyInsert, host.KeyInsert},
	{rl.KeyDelete, host.KeyDelete},
	{rl.KeyHome, host.KeyHome},
	{rl.KeyEnd, host.KeyEnd},
	{rl.KeyPageUp, host.KeyPageUp},
	{rl.KeyPageDown, host.KeyPageDown},

	{rl.KeyUp, host.KeyUp},
	{rl.KeyLeft, host.KeyLeft},
	{rl.KeyDown, host.KeyDown},
	{rl.KeyRight, host.KeyRight},
}

var buttonTable = []struct {
	raylib rl.MouseButton
	host   host.PointerButton
}{
	{rl.MouseButtonLeft, host.PointerButton{Button: host.MouseLeft}},
	{rl.MouseButtonRight, host.PointerButton{Button: host.MouseRight}},
	{rl.MouseButtonMiddle, host.PointerButton{Button: host.MouseMiddle}},
	{rl.MouseButtonSide, host.PointerButton{Button: host.MouseOther, ID: uint16(rl.MouseButtonSide)}},
	{rl.MouseButtonExtra, host.PointerButton{Button: host.MouseOther, ID: uint16(rl.MouseButtonExtra)}},
	{rl.MouseButtonForward, host.PointerButton{Button: host.MouseOther, ID: uint16(rl.MouseButtonForward)}},
	{rl.MouseButtonBack, host.PointerButton{Button: host.MouseOther, ID: uint16(rl.MouseButtonBack)}},
}
