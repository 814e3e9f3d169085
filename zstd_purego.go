//go:build !clibs
// +build !clibs

package cflate

import "github.com/klauspost/compress/zstd"

// one shared encoder per speed tier; EncodeAll is safe for concurrent use
var zstdEncoders = make(map[zstd.EncoderLevel]*zstd.Encoder)

var zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))

func init() {
	for lvl := zstd.SpeedFastest; lvl <= zstd.SpeedBestCompression; lvl++ {
		enc, _ := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(lvl),
			zstd.WithEncoderConcurrency(1))
		zstdEncoders[lvl] = enc
	}
}

func zstdEncode(buf []byte, level int) ([]byte, error) {
	enc := zstdEncoders[zstd.EncoderLevelFromZstd(level)]
	return enc.EncodeAll(buf, nil), nil
}

func zstdDecode(buf []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(buf, nil)
}
