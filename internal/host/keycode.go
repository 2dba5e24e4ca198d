package host

// KeyCode is the host's native key identifier, laid out by keyboard row.
type KeyCode uint16

const (
	KeyEscape KeyCode = iota + 1
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEqual
	KeyBack

	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP

	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyReturn

	KeyLShift
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyPeriod
	KeySlash
	KeyRShift

	KeyLControl
	KeyLAlt
	KeySpace
	KeyRAlt
	KeyRControl

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyLeft
	KeyDown
	KeyRight

	lastKeyCode = KeyRight
)

// AllKeyCodes lists every native key code.
func AllKeyCodes() []KeyCode {
	codes := make([]KeyCode, 0, lastKeyCode)
	for k := KeyEscape; k <= lastKeyCode; k++ {
		codes = append(codes, k)
	}
	return codes
}
