package host

type ButtonState int

const (
	StatePressed ButtonState = iota
	StateReleased
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

// PointerButton pairs a MouseButton with the id carried by MouseOther.
type PointerButton struct {
	Button MouseButton
	ID     uint16
}

type Vec2 struct {
	X, Y float32
}

type MouseButtonInput struct {
	Button PointerButton
	State  ButtonState
}

type KeyboardInput struct {
	ScanCode uint32
	Key      KeyCode
	HasKey   bool
	State    ButtonState
}

type ScrollUnit int

const (
	ScrollLines ScrollUnit = iota
	ScrollPixels
)

type MouseWheel struct {
	Unit ScrollUnit
	X, Y float32
}

type MouseMotion struct {
	Delta Vec2
}

// Pressed tracks which values are held down and which changed this tick.
type Pressed[T comparable] struct {
	down     map[T]bool
	justDown map[T]bool
	justUp   map[T]bool
}

func NewPressed[T comparable]() *Pressed[T] {
	return &Pressed[T]{
		down:     make(map[T]bool),
		justDown: make(map[T]bool),
		justUp:   make(map[T]bool),
	}
}

func (p *Pressed[T]) Press(v T) {
	if !p.down[v] {
		p.justDown[v] = true
	}
	p.down[v] = true
}

func (p *Pressed[T]) Release(v T) {
	if p.down[v] {
		p.justUp[v] = true
	}
	delete(p.down, v)
}

func (p *Pressed[T]) Down(v T) bool         { return p.down[v] }
func (p *Pressed[T]) JustPressed(v T) bool  { return p.justDown[v] }
func (p *Pressed[T]) JustReleased(v T) bool { return p.justUp[v] }

// Reset forgets all state, as if every input had been released silently.
func (p *Pressed[T]) Reset() {
	clear(p.down)
	p.clearJust()
}

func (p *Pressed[T]) clearJust() {
	clear(p.justDown)
	clear(p.justUp)
}

type Keys = Pressed[KeyCode]
type Buttons = Pressed[PointerButton]

// InputPlugin provides keyboard and mouse channels plus their pressed-state
// resources, refreshed in StagePreUpdate.
type InputPlugin struct{}

func (InputPlugin) Name() string { return "host.input" }

func (InputPlugin) Build(a *App) {
	buttons := AddEvent[MouseButtonInput](a)
	keyboard := AddEvent[KeyboardInput](a)
	AddEvent[MouseWheel](a)
	AddEvent[MouseMotion](a)

	keys := NewPressed[KeyCode]()
	pressed := NewPressed[PointerButton]()
	InsertResource(a.World, keys)
	InsertResource(a.World, pressed)

	var keyReader Reader[KeyboardInput]
	var buttonReader Reader[MouseButtonInput]
	a.AddSystem(StagePreUpdate, func(*World) {
		keys.clearJust()
		for _, ev := range keyReader.Read(keyboard) {
			if !ev.HasKey {
				continue
			}
			if ev.State == StatePressed {
				keys.Press(ev.Key)
			} else {
				keys.Release(ev.Key)
			}
		}
		pressed.clearJust()
		for _, ev := range buttonReader.Read(buttons) {
			if ev.State == StatePressed {
				pressed.Press(ev.Button)
			} else {
				pressed.Release(ev.Button)
			}
		}
	})
}
