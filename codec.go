package cflate

// Codec compresses and decompresses whole documents in one shot. The
// implementations cover the DEFLATE family plus snappy and zstd, so a
// protocol can negotiate a body encoding and hand the bytes to one Codec
// value without caring which format won.
type Codec interface {
	Compress(buf []byte) ([]byte, error)
	Decompress(buf []byte) ([]byte, error)
}

// ZlibCodec frames documents as zlib streams. A zero Level means the
// engine default; otherwise Level follows CompressLevel.
type ZlibCodec struct {
	Level int
}

func (c ZlibCodec) Compress(buf []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = DefaultCompression
	}
	return CompressLevel(buf, level)
}

func (c ZlibCodec) Decompress(buf []byte) ([]byte, error) {
	return DecompressWindowBits(buf, DefaultWindowBits)
}

// GzipCodec frames documents as single-member gzip streams. A zero Level
// means the engine default.
type GzipCodec struct {
	Level int
}

func (c GzipCodec) Compress(buf []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = DefaultCompression
	}
	return CompressFormat(buf, level, GzipBits(maxWindowLog))
}

func (c GzipCodec) Decompress(buf []byte) ([]byte, error) {
	return DecompressWindowBits(buf, GzipBits(maxWindowLog))
}

// DeflateCodec frames documents as raw DEFLATE with no container, the shape
// embedded in zip entries and HTTP deflate bodies. A zero Level means the
// engine default. There is no integrity check; damage shows up as a data
// error only when it breaks the bit stream.
type DeflateCodec struct {
	Level int
}

func (c DeflateCodec) Compress(buf []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = DefaultCompression
	}
	return CompressFormat(buf, level, RawBits(maxWindowLog))
}

func (c DeflateCodec) Decompress(buf []byte) ([]byte, error) {
	return DecompressWindowBits(buf, RawBits(maxWindowLog))
}
