// Package camp is a small survival simulation used to exercise the harness:
// a player walks around a campfire that keeps them warm while the weather
// drains their warmth.
package camp

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/appengine-ltd/tickreplay/internal/bootstrap"
	"github.com/appengine-ltd/tickreplay/internal/host"
)

const (
	walkSpeed    = float32(4)
	fireRadius   = 100.0
	gatherRadius = 120.0
	maxWarmth    = 100.0
	fuelPerStick = 5.0
	burnPerTick  = 0.1
	heatPerTick  = 0.8
	maxChill     = 0.6
	minZoom      = float32(0.5)
	maxZoom      = float32(3)
)

// Player is the single controllable entity.
type Player struct {
	Pos      host.Vec2
	Aim      host.Vec2
	Warmth   float64
	Gathered int
	Frozen   bool
}

type Fire struct {
	Pos  host.Vec2
	Fuel float64
}

// View is the camera state driven by the wheel.
type View struct {
	Zoom float32
}

// Weather owns the run's random stream.
type Weather struct {
	rng   *rand.Rand
	Chill float64
}

// Camp is the bootstrap target. A zero PanicKey disables the deliberate
// crash used to check that fuzzing surfaces host panics.
type Camp struct {
	bootstrap.Defaults
	PanicKey host.KeyCode
}

func (Camp) Name() string { return "camp" }

func (c Camp) Build(a *host.App) {
	a.AddStartupSystem(host.StageStartup, func(w *host.World) {
		center := host.Vec2{X: 640, Y: 360}
		if win, ok := host.Resource[host.Window](w); ok {
			center = host.Vec2{X: win.Width / 2, Y: win.Height / 2}
		}
		w.Spawn(&Player{Pos: center, Aim: center, Warmth: maxWarmth})
		w.Spawn(&Fire{Pos: host.Vec2{X: center.X, Y: center.Y + 80}, Fuel: 30})
		host.InsertResource(w, &Weather{rng: weatherRNG(bootstrap.Settings(a).Seed)})
		host.InsertResource(w, &View{Zoom: 1})
	})

	wheel, _ := host.EventsOf[host.MouseWheel](a.World)
	var wheelReader host.Reader[host.MouseWheel]

	a.AddSystem(host.StageUpdate, func(w *host.World) {
		keys, ok := host.Resource[host.Keys](w)
		if !ok {
			return
		}
		if keys.JustPressed(host.KeyEscape) {
			host.Exit(w, 0)
		}
		if c.PanicKey != 0 && keys.JustPressed(c.PanicKey) {
			panic(fmt.Sprintf("camp: %d pressed", c.PanicKey))
		}
		player := first[Player](w)
		if player == nil || player.Frozen {
			return
		}
		walk(w, keys, player)
		if win, ok := host.Resource[host.Window](w); ok {
			player.Aim = win.Cursor
		}
	})

	a.AddSystem(host.StageUpdate, func(w *host.World) {
		view, ok := host.Resource[View](w)
		if !ok || wheel == nil {
			return
		}
		for _, ev := range wheelReader.Read(wheel) {
			view.Zoom = clamp(view.Zoom+ev.Y*0.1, minZoom, maxZoom)
		}
	})

	a.AddSystem(host.StageUpdate, func(w *host.World) {
		player, fire := first[Player](w), first[Fire](w)
		if player == nil || fire == nil || player.Frozen {
			return
		}
		buttons, ok := host.Resource[host.Buttons](w)
		if ok && buttons.JustPressed(host.PointerButton{Button: host.MouseLeft}) && distance(player.Pos, fire.Pos) <= gatherRadius {
			fire.Fuel += fuelPerStick
			player.Gathered++
		}
	})

	a.AddSystem(host.StagePostUpdate, func(w *host.World) {
		player, fire := first[Player](w), first[Fire](w)
		weather, ok := host.Resource[Weather](w)
		if player == nil || fire == nil || !ok || player.Frozen {
			return
		}
		weather.Chill = weather.rng.Float64() * maxChill
		fire.Fuel = math.Max(0, fire.Fuel-burnPerTick)
		if fire.Fuel > 0 && distance(player.Pos, fire.Pos) <= fireRadius {
			player.Warmth = math.Min(maxWarmth, player.Warmth+heatPerTick)
		} else {
			player.Warmth = math.Max(0, player.Warmth-weather.Chill)
		}
		if player.Warmth == 0 {
			player.Frozen = true
			host.Exit(w, 1)
		}
	})
}

func walk(w *host.World, keys *host.Keys, p *Player) {
	var dx, dy float32
	if keys.Down(host.KeyW) || keys.Down(host.KeyUp) {
		dy -= walkSpeed
	}
	if keys.Down(host.KeyS) || keys.Down(host.KeyDown) {
		dy += walkSpeed
	}
	if keys.Down(host.KeyA) || keys.Down(host.KeyLeft) {
		dx -= walkSpeed
	}
	if keys.Down(host.KeyD) || keys.Down(host.KeyRight) {
		dx += walkSpeed
	}
	p.Pos.X += dx
	p.Pos.Y += dy
	if win, ok := host.Resource[host.Window](w); ok {
		p.Pos.X = clamp(p.Pos.X, 0, win.Width)
		p.Pos.Y = clamp(p.Pos.Y, 0, win.Height)
	}
}

// first returns the lowest-id entity holding a *T.
func first[T any](w *host.World) *T {
	var found *T
	w.EachEntity(func(_ host.Entity, c any) {
		if found != nil {
			return
		}
		if v, ok := c.(*T); ok {
			found = v
		}
	})
	return found
}

func distance(a, b host.Vec2) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

// Snapshot is the observable simulation state.
type Snapshot struct {
	Player Player
	Fire   Fire
	Zoom   float32
	Chill  float64
}

// Observe copies the current state out of w. Missing parts stay zero.
func Observe(w *host.World) Snapshot {
	var s Snapshot
	if p := first[Player](w); p != nil {
		s.Player = *p
	}
	if f := first[Fire](w); f != nil {
		s.Fire = *f
	}
	if v, ok := host.Resource[View](w); ok {
		s.Zoom = v.Zoom
	}
	if weather, ok := host.Resource[Weather](w); ok {
		s.Chill = weather.Chill
	}
	return s
}
