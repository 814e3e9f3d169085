package cflate

import "bytes"

// Compress compresses buf into a fresh zlib stream at the default level.
func Compress(buf []byte) ([]byte, error) {
	return CompressLevel(buf, DefaultCompression)
}

// CompressLevel compresses buf into a fresh zlib stream at the given level.
func CompressLevel(buf []byte, level int) ([]byte, error) {
	return zlibEncode(buf, level)
}

// CompressString is CompressLevel on the bytes of s, read in place.
func CompressString(s string, level int) ([]byte, error) {
	return CompressLevel(stringBytes(s), level)
}

// CompressFormat compresses buf with an explicit frame and window selection,
// for the raw and gzip shapes CompressLevel does not cover.
func CompressFormat(buf []byte, level int, w WindowBits) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(CompressBound(len(buf)))
	zw, err := NewWriterDict(&out, level, w, nil)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(buf); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decompress inflates src, auto-detecting zlib or gzip framing from the
// header. Concatenated gzip members decode to concatenated payloads.
func Decompress(src []byte) ([]byte, error) {
	return DecompressWindowBits(src, AutoBits(maxWindowLog))
}

// DecompressString is Decompress returning the payload as a string that
// aliases the decoded buffer.
func DecompressString(src []byte) (string, error) {
	buf, err := Decompress(src)
	if err != nil {
		return "", err
	}
	return byteString(buf), nil
}

// DecompressWindowBits inflates src with an explicit window selection.
func DecompressWindowBits(src []byte, w WindowBits) ([]byte, error) {
	zr, err := NewReaderWindowBits(bytes.NewReader(src), w)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var out bytes.Buffer
	out.Grow(len(src) * 2)
	if _, err := out.ReadFrom(zr); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// CompressBound reports the largest zlib stream CompressLevel can produce
// from n bytes of input, the compressBound answer.
func CompressBound(n int) int {
	return compressBound(n)
}
