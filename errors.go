package cflate

import (
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Errors
var (
	ErrClosed = errors.New("cflate: use of closed reader or writer")
)

// Error is an engine failure. Status carries the zlib return code
// unmodified; Msg is the engine's message when it supplied one. The io
// layer wraps codes without inspecting or remapping them, so a caller sees
// exactly what zlib reported.
type Error struct {
	Status Status
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "cflate: " + e.Status.String()
	}
	return "cflate: " + e.Status.String() + ": " + e.Msg
}

// StatusOf extracts the zlib status carried by err. It returns StatusOK for
// a nil error and StatusErrno for errors that did not come from the engine
// (transport failures, closed handles).
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var ze *Error
	if errors.As(err, &ze) {
		return ze.Status
	}
	return StatusErrno
}

func statusErr(s Status, msg string) error {
	return &Error{Status: s, Msg: msg}
}

// engineError converts a pure-engine failure into the status and message the
// C engine reports for the same damage, so both backends present one error
// taxonomy. haveDict tells a missing dictionary apart from a wrong one.
// Transport errors and truncation pass through untouched, except that an EOF
// where stream bytes were promised becomes io.ErrUnexpectedEOF.
func engineError(err error, haveDict bool) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return io.ErrUnexpectedEOF
	case errors.Is(err, zlib.ErrHeader), errors.Is(err, gzip.ErrHeader):
		return statusErr(StatusDataError, "incorrect header check")
	case errors.Is(err, zlib.ErrChecksum), errors.Is(err, gzip.ErrChecksum):
		return statusErr(StatusDataError, "incorrect data check")
	case errors.Is(err, zlib.ErrDictionary):
		if !haveDict {
			return statusErr(StatusNeedDict, "")
		}
		return statusErr(StatusDataError, "incorrect dictionary")
	}
	var corrupt flate.CorruptInputError
	if errors.As(err, &corrupt) {
		return statusErr(StatusDataError, corrupt.Error())
	}
	return err
}
