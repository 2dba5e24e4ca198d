package translate

import (
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
)

// keyTable pairs every wire key symbol with the host key code it stands for.
// Both lookup directions are derived from it.
var keyTable = []struct {
	wire input.Key
	host host.KeyCode
}{
	{input.KeyA, host.KeyA}, {input.KeyB, host.KeyB}, {input.KeyC, host.KeyC},
	{input.KeyD, host.KeyD}, {input.KeyE, host.KeyE}, {input.KeyF, host.KeyF},
	{input.KeyG, host.KeyG}, {input.KeyH, host.KeyH}, {input.KeyI, host.KeyI},
	{input.KeyJ, host.KeyJ}, {input.KeyK, host.KeyK}, {input.KeyL, host.KeyL},
	{input.KeyM, host.KeyM}, {input.KeyN, host.KeyN}, {input.KeyO, host.KeyO},
	{input.KeyP, host.KeyP}, {input.KeyQ, host.KeyQ}, {input.KeyR, host.KeyR},
	{input.KeyS, host.KeyS}, {input.KeyT, host.KeyT}, {input.KeyU, host.KeyU},
	{input.KeyV, host.KeyV}, {input.KeyW, host.KeyW}, {input.KeyX, host.KeyX},
	{input.KeyY, host.KeyY}, {input.KeyZ, host.KeyZ},

	{input.Key0, host.Key0}, {input.Key1, host.Key1}, {input.Key2, host.Key2},
	{input.Key3, host.Key3}, {input.Key4, host.Key4}, {input.Key5, host.Key5},
	{input.Key6, host.Key6}, {input.Key7, host.Key7}, {input.Key8, host.Key8},
	{input.Key9, host.Key9},

	{input.KeyF1, host.KeyF1}, {input.KeyF2, host.KeyF2}, {input.KeyF3, host.KeyF3},
	{input.KeyF4, host.KeyF4}, {input.KeyF5, host.KeyF5}, {input.KeyF6, host.KeyF6},
	{input.KeyF7, host.KeyF7}, {input.KeyF8, host.KeyF8}, {input.KeyF9, host.KeyF9},
	{input.KeyF10, host.KeyF10}, {input.KeyF11, host.KeyF11}, {input.KeyF12, host.KeyF12},

	{input.KeyEscape, host.KeyEscape},
	{input.KeyEnter, host.KeyReturn},
	{input.KeySpace, host.KeySpace},
	{input.KeyTab, host.KeyTab},
	{input.KeyBackspace, host.KeyBack},
	{input.KeyInsert, host.KeyInsert},
	{input.KeyDelete, host.KeyDelete},
	{input.KeyHome, host.KeyHome},
	{input.KeyEnd, host.KeyEnd},
	{input.KeyPageUp, host.KeyPageUp},
	{input.KeyPageDown, host.KeyPageDown},
	{input.KeyLeft, host.KeyLeft},
	{input.KeyRight, host.KeyRight},
	{input.KeyUp, host.KeyUp},
	{input.KeyDown, host.KeyDown},
	{input.KeyLeftShift, host.KeyLShift},
	{input.KeyRightShift, host.KeyRShift},
	{input.KeyLeftControl, host.KeyLControl},
	{input.KeyRightControl, host.KeyRControl},
	{input.KeyLeftAlt, host.KeyLAlt},
	{input.KeyRightAlt, host.KeyRAlt},
	{input.KeyMinus, host.KeyMinus},
	{input.KeyEqual, host.KeyEqual},
	{input.KeyComma, host.KeyComma},
	{input.KeyPeriod, host.KeyPeriod},
	{input.KeySlash, host.KeySlash},
	{input.KeySemicolon, host.KeySemicolon},
}

var (
	wireToHost = map[input.Key]host.KeyCode{}
	hostToWire = map[host.KeyCode]input.Key{}
)

func init() {
	for _, row := range keyTable {
		wireToHost[row.wire] = row.host
		hostToWire[row.host] = row.wire
	}
}

// HostKey maps a wire key symbol to the host key code.
func HostKey(k input.Key) (host.KeyCode, bool) {
	code, ok := wireToHost[k]
	return code, ok
}

// WireKey maps a host key code to its wire key symbol.
func WireKey(code host.KeyCode) (input.Key, bool) {
	k, ok := hostToWire[code]
	return k, ok
}
