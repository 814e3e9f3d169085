package cflate

import "github.com/golang/snappy"

// SnappyCodec frames documents in the snappy block format. No levels, no
// checksum beyond what the format carries; it trades ratio for speed.
type SnappyCodec struct{}

func (SnappyCodec) Compress(buf []byte) ([]byte, error) {
	return snappy.Encode(nil, buf), nil
}

func (SnappyCodec) Decompress(buf []byte) ([]byte, error) {
	return snappy.Decode(nil, buf)
}
