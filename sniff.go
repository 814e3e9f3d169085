package cflate

// DetectFormat inspects the opening bytes of a stream and reports the
// container they announce. Gzip is the two ID bytes 0x1f 0x8b, zlib is a
// CMF/FLG pair with method 8, a window log of at most 15 and a check value
// that is a multiple of 31. Anything else, including input shorter than two
// bytes, is reported as raw DEFLATE, which has no header to recognize.
func DetectFormat(b []byte) Format {
	if len(b) < 2 {
		return FormatRaw
	}
	if b[0] == gzipID1 && b[1] == gzipID2 {
		return FormatGzip
	}
	cmf, flg := b[0], b[1]
	if cmf&0x0f == methodDeflate && int(cmf>>4)+minWindowLog <= maxWindowLog &&
		(uint16(cmf)<<8|uint16(flg))%31 == 0 {
		return FormatZlib
	}
	return FormatRaw
}
