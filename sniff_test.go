package cflate

import "testing"

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		want Format
	}{
		{"gzip magic", gzipHello[:2], FormatGzip},
		{"gzip magic only", []byte{0x1f, 0x8b}, FormatGzip},
		{"zlib default", zlibHello[:2], FormatZlib},
		{"zlib window 9", zlibW9[:2], FormatZlib},
		{"zlib best", []byte{0x78, 0xda}, FormatZlib},
		// 0x7800 fails the mod-31 check
		{"zlib bad fcheck", []byte{0x78, 0x00}, FormatRaw},
		// 0x7918 passes mod-31 but CM is 9, not deflate
		{"zlib bad method", []byte{0x79, 0x18}, FormatRaw},
		// 0x8898 passes mod-31 with CM 8, but CINFO declares a 64 KiB window
		{"zlib window too big", []byte{0x88, 0x98}, FormatRaw},
		{"raw deflate", rawHello[:2], FormatRaw},
		{"empty", nil, FormatRaw},
		{"one byte", []byte{0x1f}, FormatRaw},
	}
	for _, tc := range cases {
		if got := DetectFormat(tc.b); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}
