package cflate

// Format identifies the container wrapped around a DEFLATE stream.
type Format int

const (
	FormatRaw  Format = iota // headerless DEFLATE, RFC 1951
	FormatZlib               // zlib wrapper, RFC 1950
	FormatGzip               // gzip wrapper, RFC 1952
	FormatAuto               // zlib or gzip, decided by the stream header (inflate only)
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatZlib:
		return "zlib"
	case FormatGzip:
		return "gzip"
	case FormatAuto:
		return "auto"
	}
	return "unknown"
}

// WindowBits selects the history window size and the container format using
// the encoding of zlib's inflateInit2 and deflateInit2: 8..15 select a zlib
// stream with a 2^n byte window, negating selects headerless raw DEFLATE,
// adding 16 selects gzip, and adding 32 (inflate only) auto-detects zlib or
// gzip from the stream header. Zero lets inflate size the window from the
// zlib header. The value is handed to the engine as-is; out-of-range values
// fail there with a stream-error status, never here.
type WindowBits int

// RawBits returns the WindowBits for a headerless DEFLATE stream with a
// 2^log byte window. The engine accepts log in [8,15].
func RawBits(log int) WindowBits { return WindowBits(-log) }

// GzipBits returns the WindowBits for a gzip-wrapped stream with a 2^log
// byte window.
func GzipBits(log int) WindowBits { return WindowBits(log + gzipOffset) }

// AutoBits returns the WindowBits that make inflate accept either a zlib or
// a gzip stream, detected from the header, with a 2^log byte window.
func AutoBits(log int) WindowBits { return WindowBits(log + autoOffset) }

// Format classifies the container w selects. Only meaningful for values the
// engine accepts.
func (w WindowBits) Format() Format {
	switch {
	case w < 0:
		return FormatRaw
	case int(w) <= maxWindowLog:
		return FormatZlib
	case int(w) <= maxWindowLog+gzipOffset:
		return FormatGzip
	default:
		return FormatAuto
	}
}

// Lookback returns the window log2 encoded in w, or 0 when the stream
// header decides.
func (w WindowBits) Lookback() int {
	log := int(w)
	if log < 0 {
		return -log
	}
	if log < maxWindowLog+autoOffset+1 {
		log &= 15
	}
	return log
}

// Size returns the history window size in bytes, or 0 when the stream
// header decides.
func (w WindowBits) Size() int {
	if log := w.Lookback(); log != 0 {
		return 1 << log
	}
	return 0
}

// inflateStatus screens w exactly the way inflateReset2 does and returns
// the status inflateInit2 would. The pure-Go backend uses it so that both
// backends reject the same values with the same code.
func (w WindowBits) inflateStatus() Status {
	log := int(w)
	if log < 0 {
		log = -log
	} else if log < maxWindowLog+autoOffset+1 {
		log &= 15
	}
	if log != 0 && (log < minWindowLog || log > maxWindowLog) {
		return StatusStreamError
	}
	return StatusOK
}

// deflateStatus screens w the way deflateInit2 does. Deflate has no
// auto-detect form and no header-sized window, so zero is rejected too, and
// the 256-byte window is only allowed under the zlib wrapper.
func (w WindowBits) deflateStatus() Status {
	log, zlibWrap := int(w), true
	switch {
	case log < 0:
		log, zlibWrap = -log, false
	case log > maxWindowLog:
		log, zlibWrap = log-gzipOffset, false
	}
	if log < minWindowLog || log > maxWindowLog || (log == minWindowLog && !zlibWrap) {
		return StatusStreamError
	}
	return StatusOK
}

// levelStatus screens a compression level the way the engines do:
// -2 (huffman only), -1 (engine default) or 0..9.
func levelStatus(level int) Status {
	if level < HuffmanOnly || level > BestCompression {
		return StatusStreamError
	}
	return StatusOK
}
