//go:build clibs
// +build clibs

package cflate

import "io"

// Writer compresses everything written to it into the underlying writer.
// Framing, history window and preset dictionary are fixed at construction.
// Output is buffered inside the engine: call Flush to make everything
// written so far decodable, and Close to emit the stream trailer.
//
// This build drives C zlib through a zstream.
type Writer struct {
	w      io.Writer
	out    []byte
	strm   zstream
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
	if wbits.Format() == FormatGzip && dict != nil {
		return nil, statusErr(StatusStreamError, "")
	}
	// deflateInit2 has no level -2; huffman-only is a strategy there
	clevel, strategy := level, zDefaultStrategy
	if level == HuffmanOnly {
		clevel, strategy = DefaultCompression, zHuffmanOnly
	}
	z := &Writer{w: w, out: make([]byte, defaultBufSize), dict: dict}
	if s := z.strm.deflateInit(clevel, wbits, strategy); s != StatusOK {
		return nil, statusErr(s, z.strm.msg())
	}
	if dict != nil {
		if s := z.strm.deflateSetDictionary(dict); s != StatusOK {
			z.strm.deflateEnd()
			return nil, statusErr(s, z.strm.msg())
		}
	}
	return z, nil
}

// drive runs one deflate call against a fresh output buffer and forwards
// whatever it produced.
func (z *Writer) drive(flush int) (Status, error) {
	z.strm.setOutBuf(z.out)
	ret := z.strm.deflate(flush)
	switch ret {
	case StatusOK, StatusBufError, StatusStreamEnd:
	default:
		return ret, statusErr(ret, z.strm.msg())
	}
	if have := len(z.out) - z.strm.availOut(); have > 0 {
		if _, err := z.w.Write(z.out[:have]); err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}
	if z.err != nil {
		return 0, z.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	z.strm.setInBuf(p)
	for z.strm.availIn() > 0 {
		if _, err := z.drive(zNoFlush); err != nil {
			z.err = err
			return len(p) - z.strm.availIn(), err
		}
	}
	return len(p), nil
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
	z.strm.setInBuf(nil)
	for {
		if _, err := z.drive(zSyncFlush); err != nil {
			z.err = err
			return err
		}
		// a partially filled buffer means deflate has nothing pending
		if z.strm.availOut() > 0 {
			return nil
		}
	}
}

// Close finishes the stream, writes the trailer and releases the C stream
// state. It does not close the underlying writer. Close is idempotent;
// writing after it fails with ErrClosed.
func (z *Writer) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true
	defer z.strm.deflateEnd()
	if z.err != nil {
		return z.err
	}
	z.strm.setInBuf(nil)
	for {
		ret, err := z.drive(zFinish)
		if err != nil {
			z.err = err
			return err
		}
		if ret == StatusStreamEnd {
			return nil
		}
	}
}

// Reset discards unfinished output and starts a fresh stream to w with the
// same level, window and dictionary.
func (z *Writer) Reset(w io.Writer) error {
	if z.closed {
		return ErrClosed
	}
	if s := z.strm.deflateReset(); s != StatusOK {
		return statusErr(s, z.strm.msg())
	}
	// deflateReset drops the primed window along with everything else
	if z.dict != nil {
		if s := z.strm.deflateSetDictionary(z.dict); s != StatusOK {
			return statusErr(s, z.strm.msg())
		}
	}
	z.strm.setInBuf(nil)
	z.w = w
	z.err = nil
	return nil
}
