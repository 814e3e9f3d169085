//go:build clibs
// +build clibs

package cflate

import "io"

// Reader decompresses a DEFLATE stream read from an underlying reader. The
// container format and history window are selected by WindowBits at
// construction time; nothing is read from the source until the first Read.
//
// This build drives C zlib through a zstream. Read hands its destination
// slice to inflate directly, so decompressed bytes land in the caller's
// buffer without an intermediate copy.
type Reader struct {
	r     io.Reader
	in    []byte
	strm  zstream
	w     WindowBits
	dict  Dictionary
	dicts *DictionarySet

	multistream bool
	atBoundary  bool  // last inflate ended exactly on a member trailer
	skipIn      bool  // output filled up; inflate again before reading more
	srcErr      error // terminal source error, io.EOF included
	closed      bool
	err         error
}

// NewReader decompresses r, auto-detecting zlib or gzip framing from the
// stream header (windowBits 15+32).
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderWindowBits(r, AutoBits(maxWindowLog))
}

// NewReaderWindowBits decompresses r with an explicit window selection. An
// out-of-range w fails with the stream-error status.
func NewReaderWindowBits(r io.Reader, w WindowBits) (*Reader, error) {
	return NewReaderBuffer(r, w, defaultBufSize)
}

// NewReaderDict is NewReaderWindowBits with a preset dictionary. A zlib
// stream uses it when its header asks for one, a raw stream has it preloaded
// into the window, and gzip members never request one.
func NewReaderDict(r io.Reader, w WindowBits, dict Dictionary) (*Reader, error) {
	z, err := NewReaderBuffer(r, w, defaultBufSize)
	if err != nil {
		return nil, err
	}
	z.dict = dict
	if w.Format() == FormatRaw && dict != nil {
		if s := z.strm.inflateSetDictionary(dict); s != StatusOK {
			z.strm.inflateEnd()
			return nil, statusErr(s, z.strm.msg())
		}
	}
	return z, nil
}

// NewReaderBuffer sets the size of the compressed-side buffer.
func NewReaderBuffer(r io.Reader, w WindowBits, size int) (*Reader, error) {
	if s := w.inflateStatus(); s != StatusOK {
		return nil, statusErr(s, "")
	}
	if size <= 0 {
		size = defaultBufSize
	}
	z := &Reader{
		r:           r,
		in:          make([]byte, size),
		w:           w,
		multistream: w.Format() == FormatGzip || w.Format() == FormatAuto,
	}
	if s := z.strm.inflateInit(w); s != StatusOK {
		return nil, statusErr(s, z.strm.msg())
	}
	return z, nil
}

// Multistream controls what happens at the end of a member. When on, the
// default for gzip and auto windows, concatenated members decode to the
// concatenation of their contents, the way gzip(1) reads them. When off,
// Read reports io.EOF after the first member and leaves the following bytes
// unread.
func (z *Reader) Multistream(ok bool) {
	z.multistream = ok
}

// Reset discards the reader state and starts over on r with window w,
// keeping the configured dictionaries and the compressed-side buffer.
func (z *Reader) Reset(r io.Reader, w WindowBits) error {
	if z.closed {
		return ErrClosed
	}
	if s := w.inflateStatus(); s != StatusOK {
		return statusErr(s, "")
	}
	if s := z.strm.inflateReset(w); s != StatusOK {
		return statusErr(s, z.strm.msg())
	}
	if w.Format() == FormatRaw && z.dict != nil {
		if s := z.strm.inflateSetDictionary(z.dict); s != StatusOK {
			return statusErr(s, z.strm.msg())
		}
	}
	// inflateReset leaves next_in alone; drop the old source's leftovers.
	z.strm.setInBuf(nil)
	z.r = r
	z.w = w
	z.multistream = w.Format() == FormatGzip || w.Format() == FormatAuto
	z.atBoundary = false
	z.skipIn = false
	z.srcErr = nil
	z.err = nil
	return nil
}

func (z *Reader) Read(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}
	if z.err != nil {
		return 0, z.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	z.strm.setOutBuf(p)
	for {
		if !z.skipIn && z.strm.availIn() == 0 {
			if z.srcErr == nil {
				n, err := z.r.Read(z.in)
				if n > 0 {
					z.strm.setInBuf(z.in[:n])
				}
				z.srcErr = err
			}
			if z.strm.availIn() == 0 && z.srcErr != nil {
				switch {
				case z.srcErr != io.EOF:
					z.err = z.srcErr
				case z.atBoundary:
					z.err = io.EOF
				default:
					z.err = io.ErrUnexpectedEOF
				}
				return 0, z.err
			}
		}
		z.skipIn = false
		z.atBoundary = false

		ret := z.strm.inflate(zNoFlush)
		have := len(p) - z.strm.availOut()
		switch ret {
		case StatusOK, StatusBufError:
			// made progress, or needs more input or output room
		case StatusStreamEnd:
			z.atBoundary = true
			if !z.multistream {
				z.err = io.EOF
				return have, io.EOF
			}
			if s := z.strm.inflateReset(z.w); s != StatusOK {
				return z.fail(have, statusErr(s, z.strm.msg()))
			}
			if z.w.Format() == FormatRaw && z.dict != nil {
				if s := z.strm.inflateSetDictionary(z.dict); s != StatusOK {
					return z.fail(have, statusErr(s, z.strm.msg()))
				}
			}
			if z.strm.availIn() == 0 && z.srcErr != nil {
				if z.srcErr != io.EOF {
					return z.fail(have, z.srcErr)
				}
				z.err = io.EOF
				return have, io.EOF
			}
			if have > 0 {
				return have, nil
			}
		case StatusNeedDict:
			// adler holds the DICTID the stream header asked for
			dict := z.dict
			if dict == nil && z.dicts != nil {
				if d, ok := z.dicts.Lookup(z.strm.adler()); ok {
					dict = d
				}
			}
			if dict == nil {
				return z.fail(have, statusErr(StatusNeedDict, ""))
			}
			if s := z.strm.inflateSetDictionary(dict); s != StatusOK {
				return z.fail(have, statusErr(s, z.strm.msg()))
			}
		default:
			return z.fail(have, statusErr(ret, z.strm.msg()))
		}

		if have > 0 {
			z.skipIn = z.strm.availOut() == 0
			return have, nil
		}
	}
}

// fail records err and returns whatever was decoded before it. A non-EOF
// error with bytes in hand is held back until the next call so the caller
// never loses output.
func (z *Reader) fail(have int, err error) (int, error) {
	z.err = err
	if have > 0 && err != io.EOF {
		return have, nil
	}
	return have, err
}

// Close releases the C stream state. It does not close the underlying
// reader. A decode error already reported by Read is returned again here so
// that copy-then-close callers cannot miss it.
func (z *Reader) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true
	z.strm.inflateEnd()
	if z.err != nil && z.err != io.EOF {
		return z.err
	}
	return nil
}
