package codec

import "errors"

// Delimiter terminates every encoded frame. Stuffing guarantees it never
// appears inside one.
const Delimiter byte = 0x00

var (
	errEmptyFrame   = errors.New("empty frame")
	errShortBlock   = errors.New("stuffed block runs past end of frame")
	errZeroInFrame  = errors.New("delimiter inside stuffed block")
	errZeroCodeByte = errors.New("zero code byte")
)

// stuff appends the consistent-overhead byte stuffing of src to dst, without
// the trailing delimiter.
func stuff(dst, src []byte) []byte {
	codeAt := len(dst)
	dst = append(dst, 0)
	code := byte(1)
	for _, b := range src {
		if b == 0 {
			dst[codeAt] = code
			codeAt = len(dst)
			dst = append(dst, 0)
			code = 1
			continue
		}
		dst = append(dst, b)
		code++
		if code == 0xFF {
			dst[codeAt] = code
			codeAt = len(dst)
			dst = append(dst, 0)
			code = 1
		}
	}
	dst[codeAt] = code
	return dst
}

// unstuff reverses stuff for one frame (delimiter excluded).
func unstuff(frame []byte) ([]byte, error) {
	if len(frame) == 0 {
		return nil, errEmptyFrame
	}
	out := make([]byte, 0, len(frame))
	for i := 0; i < len(frame); {
		code := frame[i]
		if code == 0 {
			return nil, errZeroCodeByte
		}
		end := i + int(code)
		if end > len(frame) {
			return nil, errShortBlock
		}
		for _, b := range frame[i+1 : end] {
			if b == 0 {
				return nil, errZeroInFrame
			}
			out = append(out, b)
		}
		i = end
		if code < 0xFF && i < len(frame) {
			out = append(out, 0)
		}
	}
	return out, nil
}
