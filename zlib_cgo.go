//go:build clibs
// +build clibs

package cflate

/*
#cgo LDFLAGS: -lz
#include <zlib.h>
*/
import "C"

import "unsafe"

func zlibEncode(buf []byte, level int) ([]byte, error) {
	if s := levelStatus(level); s != StatusOK {
		return nil, statusErr(s, "")
	}
	// compress2 takes a level but no strategy; huffman-only goes through
	// the streaming writer, which knows the translation
	if level == HuffmanOnly {
		return CompressFormat(buf, level, DefaultWindowBits)
	}

	dLen := C.compressBound(C.uLong(len(buf)))
	dst := make([]byte, int(dLen))

	ret := C.compress2(
		(*C.Bytef)(unsafe.Pointer(&dst[0])),
		(*C.uLongf)(unsafe.Pointer(&dLen)),
		(*C.Bytef)(slicePtr(buf)),
		C.uLong(len(buf)),
		C.int(level))
	if ret != C.Z_OK {
		return nil, statusErr(Status(ret), "")
	}

	return dst[:int(dLen)], nil
}

func compressBound(n int) int {
	return int(C.compressBound(C.uLong(n)))
}
