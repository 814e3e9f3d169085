//go:build !clibs
// +build !clibs

package cflate

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// deflater is the slice of the compress engines the Writer drives; the
// flate, gzip and zlib writers all satisfy it.
type deflater interface {
	io.WriteCloser
	Flush() error
	Reset(w io.Writer)
}

// Writer compresses everything written to it into the underlying writer.
// Framing, history window and preset dictionary are fixed at construction.
// Output is buffered inside the engine: call Flush to make everything
// written so far decodable, and Close to emit the stream trailer.
type Writer struct {
	eng    deflater
	level  int
	wbits  WindowBits
	dict   Dictionary
	closed bool
	err    error
}

// NewWriter compresses to w as a zlib stream at the default level. The
// configuration cannot fail, so no error is returned.
func NewWriter(w io.Writer) *Writer {
	z, _ := NewWriterDict(w, DefaultCompression, DefaultWindowBits, nil)
	return z
}

// NewWriterLevel compresses to w as a zlib stream at the given level:
// 0..9, DefaultCompression, or HuffmanOnly.
func NewWriterLevel(w io.Writer, level int) (*Writer, error) {
	return NewWriterDict(w, level, DefaultWindowBits, nil)
}

// NewWriterWindowBits selects the frame and window: 8..15 for zlib,
// negated for raw DEFLATE, +16 for gzip. The 256-byte window is only
// expressible inside the zlib wrapper, as in deflateInit2.
func NewWriterWindowBits(w io.Writer, level int, wbits WindowBits) (*Writer, error) {
	return NewWriterDict(w, level, wbits, nil)
}

// NewWriterDict is NewWriterWindowBits with a preset dictionary. A zlib
// stream advertises its checksum in the header, a raw stream just starts
// with it in the window, and gzip has no place for one, so a gzip window
// with a dictionary is a stream error.
func NewWriterDict(w io.Writer, level int, wbits WindowBits, dict Dictionary) (*Writer, error) {
	if s := levelStatus(level); s != StatusOK {
		return nil, statusErr(s, "")
	}
	if s := wbits.deflateStatus(); s != StatusOK {
		return nil, statusErr(s, "")
	}
	z := &Writer{level: level, wbits: wbits, dict: dict}
	var err error
	switch wbits.Format() {
	case FormatRaw:
		z.eng, err = flate.NewWriterDict(w, level, dict)
	case FormatGzip:
		if dict != nil {
			return nil, statusErr(StatusStreamError, "")
		}
		z.eng, err = gzip.NewWriterLevel(w, level)
	default:
		z.eng, err = zlib.NewWriterLevelDict(w, level, dict)
	}
	if err != nil {
		// level and window were screened above; nothing else can fail
		return nil, statusErr(StatusStreamError, "")
	}
	return z, nil
}

func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}
	if z.err != nil {
		return 0, z.err
	}
	n, err := z.eng.Write(p)
	if err != nil {
		z.err = err
	}
	return n, err
}

// Flush emits a sync flush point: everything written so far becomes
// decodable by a reader, at a small cost in ratio. The stream stays open.
func (z *Writer) Flush() error {
	if z.closed {
		return ErrClosed
	}
	if z.err != nil {
		return z.err
	}
	if err := z.eng.Flush(); err != nil {
		z.err = err
		return err
	}
	return nil
}

// Close finishes the stream and writes the trailer. It does not close the
// underlying writer. Close is idempotent; writing after it fails with
// ErrClosed.
func (z *Writer) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true
	if z.err != nil {
		return z.err
	}
	return z.eng.Close()
}

// Reset discards unfinished output and starts a fresh stream to w with the
// same level, window and dictionary.
func (z *Writer) Reset(w io.Writer) error {
	if z.closed {
		return ErrClosed
	}
	z.eng.Reset(w)
	z.err = nil
	return nil
}
