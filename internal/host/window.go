package host

// WindowID identifies a window. The zero value is the primary window.
type WindowID [16]byte

type CursorMoved struct {
	Window   WindowID
	Position Vec2
}

type WindowResized struct {
	Window        WindowID
	Width, Height float32
}

// Window is the primary window's last known geometry.
type Window struct {
	Width, Height float32
	Cursor        Vec2
	initial       windowSize
}

type windowSize struct {
	Width, Height float32
}

func (w *Window) Reset() {
	w.Width, w.Height = w.initial.Width, w.initial.Height
	w.Cursor = Vec2{}
}

// WindowPlugin provides cursor and resize channels and keeps the Window
// resource current in StagePreUpdate.
type WindowPlugin struct {
	Width, Height float32
}

func (WindowPlugin) Name() string { return "host.window" }

func (p WindowPlugin) Build(a *App) {
	moved := AddEvent[CursorMoved](a)
	resized := AddEvent[WindowResized](a)

	width, height := p.Width, p.Height
	if width <= 0 || height <= 0 {
		width, height = 1280, 720
	}
	win := &Window{Width: width, Height: height, initial: windowSize{Width: width, Height: height}}
	InsertResource(a.World, win)

	var movedReader Reader[CursorMoved]
	var resizedReader Reader[WindowResized]
	a.AddSystem(StagePreUpdate, func(*World) {
		for _, ev := range resizedReader.Read(resized) {
			win.Width, win.Height = ev.Width, ev.Height
		}
		if ev, ok := movedReader.Last(moved); ok {
			win.Cursor = ev.Position
		}
	})
}
