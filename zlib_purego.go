//go:build !clibs
// +build !clibs

package cflate

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// one pool of reusable writers per level, HuffmanOnly..BestCompression
var zlibWriterPools = make(map[int]*sync.Pool)

func init() {
	for i := HuffmanOnly; i <= BestCompression; i++ {
		level := i
		zlibWriterPools[level] = &sync.Pool{
			New: func() interface{} {
				zw, _ := zlib.NewWriterLevel(nil, level)
				return zw
			},
		}
	}
}

func zlibEncode(buf []byte, level int) ([]byte, error) {
	pool := zlibWriterPools[level]
	if pool == nil {
		return nil, statusErr(StatusStreamError, "")
	}

	var comp bytes.Buffer

	zw := pool.Get().(*zlib.Writer)
	defer pool.Put(zw)
	zw.Reset(&comp)

	if _, err := zw.Write(buf); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return comp.Bytes(), nil
}

// compressBound mirrors zlib's compressBound: the worst case of stored
// blocks plus the zlib wrapper.
func compressBound(n int) int {
	return n + n>>12 + n>>14 + n>>25 + 13
}
