//go:build !clibs
// +build !clibs

package cflate

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Reader decompresses a DEFLATE stream read from an underlying reader. The
// container format and history window are selected by WindowBits at
// construction time; nothing is read from the source until the first Read.
//
// This build drives the engines from github.com/klauspost/compress. The
// clibs build tag swaps in the C zlib engine behind the same surface. The
// pure engines always keep a full 32 KiB window, so they accept streams a
// small-window C inflater would reject with a data error.
type Reader struct {
	br    *bufio.Reader
	w     WindowBits
	dict  Dictionary
	dicts *DictionarySet

	zr io.ReadCloser // engine for the member being inflated
	gz *gzip.Reader
	zz io.ReadCloser
	fr io.ReadCloser

	multistream bool
	started     bool
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
	return &Reader{
		br:          bufio.NewReaderSize(r, size),
		w:           w,
		multistream: w.Format() == FormatGzip || w.Format() == FormatAuto,
	}, nil
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
	z.br.Reset(r)
	z.w = w
	z.multistream = w.Format() == FormatGzip || w.Format() == FormatAuto
	z.zr = nil
	z.started = false
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
	if !z.started {
		z.started = true
		if err := z.nextMember(); err != nil {
			z.err = err
			return 0, err
		}
	}
	for {
		n, err := z.zr.Read(p)
		switch {
		case err == nil:
			if n > 0 || len(p) == 0 {
				return n, nil
			}
			continue
		case err == io.EOF:
			// member finished cleanly
			if !z.multistream {
				z.err = io.EOF
			} else if _, perr := z.br.Peek(1); perr == nil {
				if nerr := z.nextMember(); nerr != nil {
					z.err = nerr
				}
			} else if perr != io.EOF {
				z.err = perr
			} else {
				z.err = io.EOF
			}
			if n > 0 {
				if z.err == io.EOF {
					return n, io.EOF
				}
				return n, nil
			}
			if z.err != nil {
				return 0, z.err
			}
			continue // next member started, nothing decoded yet
		default:
			z.err = engineError(err, z.dict != nil || z.dicts != nil)
			if n > 0 {
				return n, nil
			}
			return 0, z.err
		}
	}
}

// nextMember stands an engine up for the member at the head of the buffered
// source, reusing a previous engine of the same format when there is one.
func (z *Reader) nextMember() error {
	f := z.w.Format()
	if f == FormatAuto {
		head, err := z.br.Peek(2)
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		if DetectFormat(head) == FormatGzip {
			f = FormatGzip
		} else {
			// broken headers land here too; the zlib engine names the damage
			f = FormatZlib
		}
	}
	switch f {
	case FormatGzip:
		if z.gz == nil {
			z.gz = new(gzip.Reader)
		}
		if err := z.gz.Reset(z.br); err != nil {
			return engineError(err, false)
		}
		z.gz.Multistream(false)
		z.zr = z.gz
	case FormatRaw:
		if z.fr == nil {
			z.fr = flate.NewReaderDict(z.br, z.dict)
		} else if err := z.fr.(flate.Resetter).Reset(z.br, z.dict); err != nil {
			return engineError(err, z.dict != nil)
		}
		z.zr = z.fr
	default:
		dict := z.memberDict()
		var err error
		if z.zz == nil {
			z.zz, err = zlib.NewReaderDict(z.br, dict)
		} else {
			err = z.zz.(zlib.Resetter).Reset(z.br, dict)
		}
		if err != nil {
			return engineError(err, dict != nil)
		}
		z.zr = z.zz
	}
	return nil
}

// memberDict resolves the preset dictionary for the zlib member about to be
// read: an explicit dictionary wins, otherwise the DICTID in the member
// header is looked up in the wired set.
func (z *Reader) memberDict() []byte {
	if z.dict != nil || z.dicts == nil {
		return z.dict
	}
	head, err := z.br.Peek(6)
	if err != nil || head[1]&zlibFlagDict == 0 {
		return nil
	}
	info, err := parseZlibHeader(head)
	if err != nil {
		return nil
	}
	if d, ok := z.dicts.Lookup(info.DictID); ok {
		return d
	}
	return nil
}

// Close releases the engine. It does not close the underlying reader. A
// decode error already reported by Read is returned again here so that
// copy-then-close callers cannot miss it.
func (z *Reader) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true
	var err error
	if z.zr != nil {
		err = z.zr.Close()
	}
	if z.err != nil && z.err != io.EOF {
		return z.err
	}
	if err != nil && err != io.EOF {
		return engineError(err, false)
	}
	return nil
}
