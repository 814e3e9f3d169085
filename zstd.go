package cflate

// Zstd levels on the zstd tool's own scale.
const (
	ZstdBestSpeed          = 1
	ZstdDefaultCompression = 3
	ZstdBestCompression    = 20
)

// ZstdCodec frames documents as zstd. A zero Level means
// ZstdDefaultCompression. Which engine runs depends on the build: C
// libzstd under the clibs tag, the pure Go port otherwise.
type ZstdCodec struct {
	Level int
}

func (c ZstdCodec) Compress(buf []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = ZstdDefaultCompression
	}
	return zstdEncode(buf, level)
}

func (c ZstdCodec) Decompress(buf []byte) ([]byte, error) {
	return zstdDecode(buf)
}
