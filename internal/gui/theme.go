//go:build cgo
// +build cgo

package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// Field-log palette.
var (
	colorBG     = rl.NewColor(0x14, 0x1A, 0x1F, 255) // #141A1F
	colorPanel  = rl.NewColor(0x1C, 0x23, 0x29, 255) // #1C2329
	colorBorder = rl.NewColor(0x2E, 0x3A, 0x40, 255) // #2E3A40
	colorText   = rl.NewColor(0xE8, 0xE2, 0xD8, 255) // #E8E2D8
	colorAccent = rl.NewColor(0xD4, 0x6A, 0x1E, 255) // #D46A1E
)

const (
	spaceXS = float32(8)
	spaceS  = float32(12)
)
