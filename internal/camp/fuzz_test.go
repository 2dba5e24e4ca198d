package camp

import (
	"testing"

	"github.com/appengine-ltd/tickreplay/internal/bootstrap"
	"github.com/appengine-ltd/tickreplay/internal/codec"
	"github.com/appengine-ltd/tickreplay/internal/host"
	"github.com/appengine-ltd/tickreplay/internal/input"
)

// FuzzCamp replays fuzzer-supplied streams against one long-lived camp. The
// panic key is armed so the fuzzer can find it; the seeds never press it.
func FuzzCamp(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x02, 0x06, 0x00})
	f.Add([]byte{
		0x02, 0x03, 0x01, 0x03, 0x80, 0xC0, 0x01, 0x03, 0x80, 0x3F, 0x00,
		0x02, 0x03, 0x01, 0x03, 0xD0, 0x41, 0x01, 0x03, 0xC8, 0x41, 0x00,
	})
	f.Add([]byte{0x02, 0x06, 0x00, 0x02, 0x06})
	f.Add(codec.EncodeAll([]input.Event{
		input.KeyChange{ScanCode: 32, Key: input.KeyPtr(input.KeyD), State: input.Pressed},
		input.PointerDelta{DX: -4, DY: 1},
		input.FrameBoundary{},
		input.PointerMoved{X: 26, Y: 25},
		input.WheelScroll{Unit: input.ScrollPixel, Y: -2},
		input.FrameBoundary{},
		input.ButtonChange{Button: input.MouseButton{Code: input.ButtonLeft}, State: input.Pressed},
		input.SurfaceResized{Width: 800, Height: 600},
		input.FrameBoundary{},
	}))
	f.Add(codec.EncodeAll([]input.Event{
		input.KeyChange{Key: input.KeyPtr(input.KeyEscape), State: input.Pressed},
		input.FrameBoundary{},
	}))

	ctx := bootstrap.NewFuzzContext(Camp{PanicKey: host.KeyZ})
	f.Fuzz(func(t *testing.T, data []byte) {
		if err := ctx.Iterate(data); err != nil {
			t.Fatalf("iterate: %v", err)
		}
	})
}
