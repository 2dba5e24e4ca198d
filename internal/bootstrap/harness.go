package bootstrap

import (
	"errors"

	"github.com/appengine-ltd/tickreplay/internal/host"
)

// ErrNativeRunnerDisabled is returned if a headless app is started through
// App.Run instead of being driven by the replay runner.
var ErrNativeRunnerDisabled = errors.New("bootstrap: native runner disabled in headless mode")

// Harness prepares an app to be driven from outside. It replaces the native
// runner and despawns every entity at the start of each startup pass.
type Harness struct{}

func (Harness) Name() string { return "bootstrap.harness" }

func (Harness) Build(a *host.App) {
	a.SetRunner(func(*host.App) error { return ErrNativeRunnerDisabled })
	a.AddStartupSystem(host.StageStartupClean, func(w *host.World) {
		w.ClearEntities()
	})
}
