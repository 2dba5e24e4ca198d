package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/appengine-ltd/tickreplay/internal/input"
)

var (
	errTruncated      = errors.New("unexpected end of payload")
	errVarintOverflow = errors.New("varint overflows 32 bits")
	errTrailingBytes  = errors.New("trailing bytes after event")
)

type payloadWriter struct {
	buf []byte
}

func (w *payloadWriter) varint(v uint32) {
	w.buf = binary.AppendUvarint(w.buf, uint64(v))
}

func (w *payloadWriter) f32(v float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v))
}

func (w *payloadWriter) raw(b []byte) {
	w.buf = append(w.buf, b...)
}

func marshal(ev input.Event) []byte {
	w := &payloadWriter{buf: make([]byte, 0, 40)}
	w.varint(uint32(ev.Kind()))
	switch e := ev.(type) {
	case input.ButtonChange:
		w.varint(uint32(e.Button.Code))
		if e.Button.Code == input.ButtonOther {
			w.varint(uint32(e.Button.Other))
		}
		w.varint(uint32(e.State))
	case input.KeyChange:
		w.varint(e.ScanCode)
		if e.Key == nil {
			w.raw([]byte{0})
		} else {
			w.raw([]byte{1})
			w.varint(uint32(*e.Key))
		}
		w.varint(uint32(e.State))
	case input.WheelScroll:
		w.varint(uint32(e.Unit))
		w.f32(e.X)
		w.f32(e.Y)
	case input.PointerDelta:
		w.f32(e.DX)
		w.f32(e.DY)
	case input.PointerMoved:
		w.raw(e.Window[:])
		w.f32(e.X)
		w.f32(e.Y)
	case input.SurfaceResized:
		w.raw(e.Window[:])
		w.f32(e.Width)
		w.f32(e.Height)
	case input.FrameBoundary:
	}
	return w.buf
}

type payloadReader struct {
	buf []byte
	pos int
}

// varint reads an unsigned LEB128 value of at most five bytes.
func (r *payloadReader) varint() (uint32, error) {
	var v uint64
	for shift := uint(0); shift < 35; shift += 7 {
		if r.pos >= len(r.buf) {
			return 0, errTruncated
		}
		b := r.buf[r.pos]
		r.pos++
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			if v > math.MaxUint32 {
				return 0, errVarintOverflow
			}
			return uint32(v), nil
		}
	}
	return 0, errVarintOverflow
}

func (r *payloadReader) u16() (uint16, error) {
	v, err := r.varint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint16 {
		return 0, fmt.Errorf("value %d overflows 16 bits", v)
	}
	return uint16(v), nil
}

func (r *payloadReader) f32() (float32, error) {
	if len(r.buf)-r.pos < 4 {
		return 0, errTruncated
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return math.Float32frombits(v), nil
}

func (r *payloadReader) u8() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, errTruncated
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *payloadReader) window() (input.WindowID, error) {
	var id input.WindowID
	if len(r.buf)-r.pos < len(id) {
		return id, errTruncated
	}
	copy(id[:], r.buf[r.pos:])
	r.pos += len(id)
	return id, nil
}

func (r *payloadReader) state() (input.ElementState, error) {
	v, err := r.varint()
	if err != nil {
		return 0, err
	}
	if s := input.ElementState(v); s == input.Pressed || s == input.Released {
		return s, nil
	}
	return 0, fmt.Errorf("unknown element state %d", v)
}

func (r *payloadReader) point() (float32, float32, error) {
	x, err := r.f32()
	if err != nil {
		return 0, 0, err
	}
	y, err := r.f32()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func unmarshal(payload []byte) (input.Event, error) {
	r := &payloadReader{buf: payload}
	tag, err := r.varint()
	if err != nil {
		return nil, err
	}
	var ev input.Event
	switch input.Kind(tag) {
	case input.KindButtonChange:
		ev, err = r.buttonChange()
	case input.KindKeyChange:
		ev, err = r.keyChange()
	case input.KindWheelScroll:
		ev, err = r.wheelScroll()
	case input.KindPointerDelta:
		var e input.PointerDelta
		e.DX, e.DY, err = r.point()
		ev = e
	case input.KindPointerMoved:
		var e input.PointerMoved
		if e.Window, err = r.window(); err == nil {
			e.X, e.Y, err = r.point()
		}
		ev = e
	case input.KindSurfaceResized:
		var e input.SurfaceResized
		if e.Window, err = r.window(); err == nil {
			e.Width, e.Height, err = r.point()
		}
		ev = e
	case input.KindFrameBoundary:
		ev = input.FrameBoundary{}
	default:
		return nil, fmt.Errorf("unknown event tag %d", tag)
	}
	if err != nil {
		return nil, err
	}
	if r.pos != len(r.buf) {
		return nil, errTrailingBytes
	}
	return ev, nil
}

func (r *payloadReader) buttonChange() (input.Event, error) {
	code, err := r.varint()
	if err != nil {
		return nil, err
	}
	var e input.ButtonChange
	switch input.ButtonCode(code) {
	case input.ButtonLeft, input.ButtonRight, input.ButtonMiddle:
		e.Button.Code = input.ButtonCode(code)
	case input.ButtonOther:
		e.Button.Code = input.ButtonOther
		if e.Button.Other, err = r.u16(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown mouse button %d", code)
	}
	if e.State, err = r.state(); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *payloadReader) keyChange() (input.Event, error) {
	var e input.KeyChange
	var err error
	if e.ScanCode, err = r.varint(); err != nil {
		return nil, err
	}
	present, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch present {
	case 0:
	case 1:
		v, err := r.varint()
		if err != nil {
			return nil, err
		}
		k := input.Key(v)
		if !k.Valid() {
			return nil, fmt.Errorf("unknown key %d", v)
		}
		e.Key = &k
	default:
		return nil, fmt.Errorf("invalid option marker %d", present)
	}
	if e.State, err = r.state(); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *payloadReader) wheelScroll() (input.Event, error) {
	unit, err := r.varint()
	if err != nil {
		return nil, err
	}
	e := input.WheelScroll{Unit: input.ScrollUnit(unit)}
	if e.Unit != input.ScrollLine && e.Unit != input.ScrollPixel {
		return nil, fmt.Errorf("unknown scroll unit %d", unit)
	}
	if e.X, e.Y, err = r.point(); err != nil {
		return nil, err
	}
	return e, nil
}
