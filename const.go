package cflate

import "strconv"

// Status is a zlib return code. The library defines no codes of its own:
// whatever the engine reports is surfaced unchanged.
type Status int

// Return codes, from zlib.h.
const (
	StatusOK           Status = 0
	StatusStreamEnd    Status = 1
	StatusNeedDict     Status = 2
	StatusErrno        Status = -1
	StatusStreamError  Status = -2
	StatusDataError    Status = -3
	StatusMemError     Status = -4
	StatusBufError     Status = -5
	StatusVersionError Status = -6
)

// String returns zlib's message for the code.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStreamEnd:
		return "stream end"
	case StatusNeedDict:
		return "need dictionary"
	case StatusErrno:
		return "file error"
	case StatusStreamError:
		return "stream error"
	case StatusDataError:
		return "data error"
	case StatusMemError:
		return "insufficient memory"
	case StatusBufError:
		return "buffer error"
	case StatusVersionError:
		return "incompatible version"
	}
	return "status " + strconv.Itoa(int(s))
}

// Compression levels, as zlib defines them. HuffmanOnly disables string
// matching entirely; the C engine expresses it as a strategy rather than a
// level, and the Writer translates.
const (
	NoCompression      = 0
	BestSpeed          = 1
	BestCompression    = 9
	DefaultCompression = -1
	HuffmanOnly        = -2
)

// Flush values for deflate and inflate, from zlib.h. Only the ones the
// Writer uses are exercised; the rest are kept for completeness.
const (
	zNoFlush      = 0
	zPartialFlush = 1
	zSyncFlush    = 2
	zFullFlush    = 3
	zFinish       = 4
	zBlock        = 5
	zTrees        = 6
)

// Compression strategies, from zlib.h.
const (
	zDefaultStrategy = 0
	zFiltered        = 1
	zHuffmanOnly     = 2
	zRLE             = 3
	zFixed           = 4
)

// Window-bits encoding, per inflateInit2/deflateInit2.
const (
	minWindowLog = 8
	maxWindowLog = 15
	gzipOffset   = 16
	autoOffset   = 32

	// DefaultWindowBits selects the zlib format with the full 32 KiB window.
	DefaultWindowBits WindowBits = 15

	// HeaderWindowBits tells inflate to take the window size from the zlib
	// header instead of declaring one up front.
	HeaderWindowBits WindowBits = 0
)

// Container magic, RFC 1950/1952.
const (
	gzipID1 = 0x1f
	gzipID2 = 0x8b

	methodDeflate = 8 // CM value shared by the zlib CMF byte and the gzip header

	gzipFlagText    = 1 << 0
	gzipFlagHdrCRC  = 1 << 1
	gzipFlagExtra   = 1 << 2
	gzipFlagName    = 1 << 3
	gzipFlagComment = 1 << 4

	zlibFlagDict = 1 << 5 // FDICT bit of the zlib FLG byte
)

// defaultBufSize is the compressed-side buffer Readers and Writers use when
// the caller doesn't pick one.
const defaultBufSize = 32 * 1024
