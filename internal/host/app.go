package host

import (
	"errors"
	"fmt"
)

type Stage string

const (
	StageStartupClean Stage = "startup_clean"
	StagePreStartup   Stage = "pre_startup"
	StageStartup      Stage = "startup"
	StagePostStartup  Stage = "post_startup"

	StageFirst      Stage = "first"
	StagePreUpdate  Stage = "pre_update"
	StageUpdate     Stage = "update"
	StagePostUpdate Stage = "post_update"
	StageLast       Stage = "last"
)

// StartupStages run once, in this order, before the first tick.
var StartupStages = []Stage{StageStartupClean, StagePreStartup, StageStartup, StagePostStartup}

// CoreStages make up one ordinary tick.
var CoreStages = []Stage{StageFirst, StagePreUpdate, StageUpdate, StagePostUpdate, StageLast}

type System func(*World)

// Plugin contributes systems, resources and events to an App.
type Plugin interface {
	Name() string
	Build(*App)
}

// Runner owns the main loop once App.Run is called.
type Runner func(*App) error

// AppExit asks the main loop to stop. The last one sent in a tick wins.
type AppExit struct {
	Code int
}

var ErrNoRunner = errors.New("host: no runner installed")

type App struct {
	World *World

	systems map[Stage][]System
	plugins map[string]bool
	runner  Runner
	ticks   uint64
}

func NewApp() *App {
	a := &App{
		World:   NewWorld(),
		systems: make(map[Stage][]System),
		plugins: make(map[string]bool),
	}
	AddEvent[AppExit](a)
	return a
}

// AddPlugin builds p unless a plugin with the same name was already added.
func (a *App) AddPlugin(p Plugin) *App {
	if a.plugins[p.Name()] {
		return a
	}
	a.plugins[p.Name()] = true
	p.Build(a)
	return a
}

func (a *App) HasPlugin(name string) bool {
	return a.plugins[name]
}

func (a *App) AddSystem(stage Stage, sys System) *App {
	a.systems[stage] = append(a.systems[stage], sys)
	return a
}

// AddStartupSystem is AddSystem restricted to startup stages.
func (a *App) AddStartupSystem(stage Stage, sys System) *App {
	if !isStartup(stage) {
		panic(fmt.Sprintf("host: %q is not a startup stage", stage))
	}
	return a.AddSystem(stage, sys)
}

// RunStage runs every system of one stage in registration order.
func (a *App) RunStage(stage Stage) {
	for _, sys := range a.systems[stage] {
		sys(a.World)
	}
}

// RunStartup runs the startup stages once.
func (a *App) RunStartup() {
	for _, stage := range StartupStages {
		a.RunStage(stage)
	}
}

// Update runs one tick of the core stages.
func (a *App) Update() {
	for _, stage := range CoreStages {
		a.RunStage(stage)
	}
	a.ticks++
}

// Ticks counts completed Update calls.
func (a *App) Ticks() uint64 {
	return a.ticks
}

func (a *App) SetRunner(r Runner) *App {
	a.runner = r
	return a
}

// Run hands control to the installed runner.
func (a *App) Run() error {
	if a.runner == nil {
		return ErrNoRunner
	}
	return a.runner(a)
}

// Exit sends an AppExit event from outside a system.
func Exit(w *World, code int) {
	if ev, ok := EventsOf[AppExit](w); ok {
		ev.Send(AppExit{Code: code})
	}
}

func isStartup(stage Stage) bool {
	for _, s := range StartupStages {
		if s == stage {
			return true
		}
	}
	return false
}
