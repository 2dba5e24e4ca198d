//go:build !cgo
// +build !cgo

package gui

import "github.com/appengine-ltd/tickreplay/internal/host"

func (p Plugin) Build(a *host.App) {
	p = p.settings()
	a.SetRunner(func(*host.App) error {
		p.Logger.Error("window unavailable", "title", p.Title)
		return ErrUnavailable
	})
}
