//go:build cgo
// +build cgo

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/tickreplay/internal/host"
)

func (p Plugin) Build(a *host.App) {
	p = p.settings()
	a.SetRunner(p.loop)
}

// loop owns the window for the app's lifetime: startup once, then one host
// tick per rendered frame until the window closes or the app exits.
func (p Plugin) loop(a *host.App) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(p.Width, p.Height, p.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(p.FPS)

	in := newPump(a.World)
	exitCh, _ := host.EventsOf[host.AppExit](a.World)
	var exits host.Reader[host.AppExit]

	p.Logger.Info("window open", "width", p.Width, "height", p.Height, "fps", p.FPS)
	a.RunStartup()
	for !rl.WindowShouldClose() {
		in.poll()
		a.Update()
		if exitCh != nil {
			if exit, ok := exits.Last(exitCh); ok {
				p.Logger.Info("app exit", "code", exit.Code, "ticks", a.Ticks())
				return nil
			}
		}
		drawOverlay(a)
	}
	p.Logger.Info("window closed", "ticks", a.Ticks())
	return nil
}

func drawOverlay(a *host.App) {
	width := float32(rl.GetScreenWidth())
	rl.BeginDrawing()
	rl.ClearBackground(colorBG)
	rl.DrawRectangleRec(rl.NewRectangle(spaceS, spaceS, width-2*spaceS, 44), colorPanel)
	rl.DrawRectangleLinesEx(rl.NewRectangle(spaceS, spaceS, width-2*spaceS, 44), 1.2, colorBorder)
	status := fmt.Sprintf("tick %d  entities %d", a.Ticks(), a.World.Len())
	rl.DrawText(status, int32(spaceS+spaceXS), int32(spaceS+spaceXS+4), 19, colorText)
	if win, ok := host.Resource[host.Window](a.World); ok {
		rl.DrawCircleV(rl.NewVector2(win.Cursor.X, win.Cursor.Y), 4, colorAccent)
	}
	rl.EndDrawing()
}

// pump translates raylib's per-frame input state into host events. Channels
// the app lacks are skipped.
type pump struct {
	keys    *host.Events[host.KeyboardInput]
	buttons *host.Events[host.MouseButtonInput]
	wheel   *host.Events[host.MouseWheel]
	motion  *host.Events[host.MouseMotion]
	moved   *host.Events[host.CursorMoved]
	resized *host.Events[host.WindowResized]

	cursor rl.Vector2
}

func newPump(w *host.World) *pump {
	p := &pump{cursor: rl.NewVector2(-1, -1)}
	p.keys, _ = host.EventsOf[host.KeyboardInput](w)
	p.buttons, _ = host.EventsOf[host.MouseButtonInput](w)
	p.wheel, _ = host.EventsOf[host.MouseWheel](w)
	p.motion, _ = host.EventsOf[host.MouseMotion](w)
	p.moved, _ = host.EventsOf[host.CursorMoved](w)
	p.resized, _ = host.EventsOf[host.WindowResized](w)
	return p
}

func (p *pump) poll() {
	if p.keys != nil {
		for _, k := range keyTable {
			switch {
			case rl.IsKeyPressed(k.raylib):
				p.keys.Send(host.KeyboardInput{ScanCode: uint32(k.raylib), Key: k.host, HasKey: true, State: host.StatePressed})
			case rl.IsKeyReleased(k.raylib):
				p.keys.Send(host.KeyboardInput{ScanCode: uint32(k.raylib), Key: k.host, HasKey: true, State: host.StateReleased})
			}
		}
	}
	if p.buttons != nil {
		for _, b := range buttonTable {
			switch {
			case rl.IsMouseButtonPressed(b.raylib):
				p.buttons.Send(host.MouseButtonInput{Button: b.host, State: host.StatePressed})
			case rl.IsMouseButtonReleased(b.raylib):
				p.buttons.Send(host.MouseButtonInput{Button: b.host, State: host.StateReleased})
			}
		}
	}
	if p.wheel != nil {
		if move := rl.GetMouseWheelMoveV(); move.X != 0 || move.Y != 0 {
			p.wheel.Send(host.MouseWheel{Unit: host.ScrollLines, X: move.X, Y: move.Y})
		}
	}
	if p.motion != nil {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			p.motion.Send(host.MouseMotion{Delta: host.Vec2{X: delta.X, Y: delta.Y}})
		}
	}
	if p.moved != nil {
		if pos := rl.GetMousePosition(); pos != p.cursor {
			p.cursor = pos
			p.moved.Send(host.CursorMoved{Position: host.Vec2{X: pos.X, Y: pos.Y}})
		}
	}
	if p.resized != nil && rl.IsWindowResized() {
		p.resized.Send(host.WindowResized{
			Width:  float32(rl.GetScreenWidth()),
			Height: float32(rl.GetScreenHeight()),
		})
	}
}
