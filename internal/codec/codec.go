package codec

import (
	"bytes"
	"fmt"

	"github.com/appengine-ltd/tickreplay/internal/input"
)

// DecodeError reports the first frame of a buffer that could not be decoded.
// It always invalidates the whole buffer: a corrupt frame shifts the offsets
// of every frame after it.
type DecodeError struct {
	Frame  int
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame %d at offset %d: %v", e.Frame, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode serializes one event as a delimited, stuffed frame.
func Encode(ev input.Event) []byte {
	payload := marshal(ev)
	out := make([]byte, 0, len(payload)+len(payload)/254+2)
	out = stuff(out, payload)
	return append(out, Delimiter)
}

// EncodeAll concatenates the frames of events in order.
func EncodeAll(events []input.Event) []byte {
	var out []byte
	for _, ev := range events {
		out = stuff(out, marshal(ev))
		out = append(out, Delimiter)
	}
	return out
}

// Decode parses every complete frame in data. Bytes after the last delimiter
// belong to an incomplete frame and are ignored.
func Decode(data []byte) ([]input.Event, error) {
	events := []input.Event{}
	offset := 0
	for frame := 0; offset < len(data); frame++ {
		end := bytes.IndexByte(data[offset:], Delimiter)
		if end < 0 {
			break
		}
		payload, err := unstuff(data[offset : offset+end])
		if err == nil {
			var ev input.Event
			if ev, err = unmarshal(payload); err == nil {
				events = append(events, ev)
			}
		}
		if err != nil {
			return nil, &DecodeError{Frame: frame, Offset: offset, Err: err}
		}
		offset += end + 1
	}
	return events, nil
}
