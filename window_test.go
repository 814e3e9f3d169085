package cflate

import "testing"

func TestWindowBitsInflateStatus(t *testing.T) {
	valid := []WindowBits{15, 9, 8, -8, -15, 31, 25, 47, 40, 0, 16, 32}
	for _, w := range valid {
		if s := w.inflateStatus(); s != StatusOK {
			t.Errorf("inflate %d: got %s, want ok", w, s)
		}
	}

	invalid := []WindowBits{7, -7, 5, -5, -16, 48, 55, 100, -100}
	for _, w := range invalid {
		if s := w.inflateStatus(); s != StatusStreamError {
			t.Errorf("inflate %d: got %s, want stream error", w, s)
		}
	}
}

func TestWindowBitsDeflateStatus(t *testing.T) {
	valid := []WindowBits{15, 9, 8, -9, -15, 25, 31, -12}
	for _, w := range valid {
		if s := w.deflateStatus(); s != StatusOK {
			t.Errorf("deflate %d: got %s, want ok", w, s)
		}
	}

	// deflate cannot auto-detect, take the window from a header, or put a
	// 256-byte window outside the zlib wrapper
	invalid := []WindowBits{0, 7, -7, -8, 24, 16, -16, 32, 47, 48, 100}
	for _, w := range invalid {
		if s := w.deflateStatus(); s != StatusStreamError {
			t.Errorf("deflate %d: got %s, want stream error", w, s)
		}
	}
}

func TestWindowBitsAccessors(t *testing.T) {
	cases := []struct {
		w        WindowBits
		format   Format
		lookback int
		size     int
	}{
		{DefaultWindowBits, FormatZlib, 15, 32 * 1024},
		{WindowBits(9), FormatZlib, 9, 512},
		{HeaderWindowBits, FormatZlib, 0, 0},
		{RawBits(15), FormatRaw, 15, 32 * 1024},
		{RawBits(8), FormatRaw, 8, 256},
		{GzipBits(15), FormatGzip, 15, 32 * 1024},
		{GzipBits(9), FormatGzip, 9, 512},
		{AutoBits(15), FormatAuto, 15, 32 * 1024},
		{AutoBits(8), FormatAuto, 8, 256},
	}
	for _, tc := range cases {
		if f := tc.w.Format(); f != tc.format {
			t.Errorf("%d: format %s, want %s", tc.w, f, tc.format)
		}
		if l := tc.w.Lookback(); l != tc.lookback {
			t.Errorf("%d: lookback %d, want %d", tc.w, l, tc.lookback)
		}
		if s := tc.w.Size(); s != tc.size {
			t.Errorf("%d: size %d, want %d", tc.w, s, tc.size)
		}
	}
}

func TestFormatString(t *testing.T) {
	names := map[Format]string{
		FormatRaw:  "raw",
		FormatZlib: "zlib",
		FormatGzip: "gzip",
		FormatAuto: "auto",
	}
	for f, want := range names {
		if f.String() != want {
			t.Errorf("%d: %q, want %q", f, f.String(), want)
		}
	}
}

func TestLevelStatus(t *testing.T) {
	for level := HuffmanOnly; level <= BestCompression; level++ {
		if s := levelStatus(level); s != StatusOK {
			t.Errorf("level %d: got %s", level, s)
		}
	}
	for _, level := range []int{-3, 10, 100} {
		if s := levelStatus(level); s != StatusStreamError {
			t.Errorf("level %d: got %s, want stream error", level, s)
		}
	}
}
