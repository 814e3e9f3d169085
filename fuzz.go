//go:build gofuzz
// +build gofuzz

package cflate

import "github.com/google/go-cmp/cmp"

func Fuzz(data []byte) int {
	dec, err := Decompress(data)
	if err != nil {
		return 0
	}

	enc, err := Compress(dec)
	if err != nil {
		panic("unable to compress")
	}

	dec2, err := Decompress(enc)
	if err != nil {
		panic("decompressing compressed data")
	}

	if !cmp.Equal(dec, dec2) {
		panic("failed to roundtrip: " + cmp.Diff(dec, dec2))
	}

	return 1
}

func FuzzHeader(data []byte) int {
	info, err := ParseHeader(data)
	if err != nil {
		return 0
	}

	if info.Format == FormatRaw {
		// no header to re-parse
		return 0
	}

	info2, err := ParseHeader(data[:info.HeaderLen])
	if err != nil {
		panic("reparsing a parsed header")
	}

	if !cmp.Equal(info, info2) {
		panic("header reparse drifted: " + cmp.Diff(info, info2))
	}

	return 1
}
