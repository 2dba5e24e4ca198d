// Package stream reads and writes persisted event streams. A stream file is
// a flat sequence of codec frames with no header; paths ending in ".zst" are
// zstd compressed.
package stream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const compressedSuffix = ".zst"

// maxStreamBytes caps how much ReadFile returns, after decompression.
var maxStreamBytes uint64 = 256 << 20

// ErrTooLarge reports a stream whose contents exceed the read limit.
var ErrTooLarge = errors.New("stream exceeds read limit")

// IOError wraps a filesystem or compression failure with the path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Compressed reports whether path is read and written through zstd.
func Compressed(path string) bool {
	return strings.HasSuffix(path, compressedSuffix)
}

// ReadFile returns the raw frame bytes stored at path. Streams larger than
// 256 MiB once decompressed fail with ErrTooLarge.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if Compressed(path) {
		dec, err := zstd.NewReader(f, zstd.WithDecoderMaxMemory(maxStreamBytes))
		if err != nil {
			return nil, &IOError{Op: "decompress", Path: path, Err: overLimit(err)}
		}
		defer dec.Close()
		r = dec
	}
	data, err := io.ReadAll(io.LimitReader(r, int64(maxStreamBytes)+1))
	if err == nil && uint64(len(data)) > maxStreamBytes {
		err = ErrTooLarge
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: overLimit(err)}
	}
	return data, nil
}

func overLimit(err error) error {
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return ErrTooLarge
	}
	return err
}

// Create truncates or creates path for writing. The caller must Close the
// writer to flush compressed output.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}
	w := &fileWriter{path: path, f: f, w: f}
	if Compressed(path) {
		enc, err := zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, &IOError{Op: "compress", Path: path, Err: err}
		}
		w.enc = enc
		w.w = enc
	}
	return w, nil
}

type fileWriter struct {
	path string
	f    *os.File
	enc  *zstd.Encoder
	w    io.Writer
}

func (w *fileWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		return n, &IOError{Op: "write", Path: w.path, Err: err}
	}
	return n, nil
}

// Flush pushes buffered compressed bytes to the file. Plain files are
// unbuffered.
func (w *fileWriter) Flush() error {
	if w.enc == nil {
		return nil
	}
	if err := w.enc.Flush(); err != nil {
		return &IOError{Op: "flush", Path: w.path, Err: err}
	}
	return nil
}

func (w *fileWriter) Close() error {
	var errs []error
	if w.enc != nil {
		if err := w.enc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := w.f.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return &IOError{Op: "close", Path: w.path, Err: err}
	}
	return nil
}
