package cflate

import (
	"bytes"
	"errors"
	"hash/crc32"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
)

var (
	// "first member\n" and "second member\n" as back to back gzip members
	gzipMulti = unhex("1f8b08000000000000034bcb2c2a2e51c84dcd4d4a2de20200a7f4850a0d0000001f8b08000000000000032b4e4dcecf4b51c84dcd4d4a2de2020036184b0e0e000000")
	// the same payloads as concatenated zlib streams
	zlibMulti = unhex("789c4bcb2c2a2e51c84dcd4d4a2de2020023be04cb789c2b4e4dcecf4b51c84dcd4d4a2de2020028d1051f")
)

func TestMembers(t *testing.T) {
	members, err := Members(bytes.NewReader(gzipMulti))
	if err != nil {
		t.Fatalf("members: %s", err)
	}
	want := []Member{
		{Offset: 0, CompressedLen: 33, Len: 13, CRC32: 0x0a85f4a7},
		{Offset: 33, CompressedLen: 34, Len: 14, CRC32: 0x0e4b1836},
	}
	if !reflect.DeepEqual(members, want) {
		t.Errorf("members:\n got %+v\nwant %+v", members, want)
	}
}

func TestMembersGenerated(t *testing.T) {
	payloads := []string{"alpha body", "beta body, a little longer"}
	names := []string{"alpha.txt", "beta.txt"}
	mt := time.Unix(1700000000, 0)

	var buf bytes.Buffer
	for i, payload := range payloads {
		gw := gzip.NewWriter(&buf)
		gw.Name = names[i]
		gw.ModTime = mt
		if _, err := gw.Write([]byte(payload)); err != nil {
			t.Fatalf("write: %s", err)
		}
		if err := gw.Close(); err != nil {
			t.Fatalf("close: %s", err)
		}
	}

	members, err := Members(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("members: %s", err)
	}
	if len(members) != len(payloads) {
		t.Fatalf("got %d members", len(members))
	}

	var off int64
	for i, m := range members {
		if m.Name != names[i] {
			t.Errorf("member %d name %q", i, m.Name)
		}
		if !m.ModTime.Equal(mt) {
			t.Errorf("member %d mtime %s", i, m.ModTime)
		}
		if m.Len != int64(len(payloads[i])) {
			t.Errorf("member %d len %d", i, m.Len)
		}
		if m.CRC32 != crc32.ChecksumIEEE([]byte(payloads[i])) {
			t.Errorf("member %d crc %08x", i, m.CRC32)
		}
		if m.Offset != off {
			t.Errorf("member %d offset %d, want %d", i, m.Offset, off)
		}
		off += m.CompressedLen
	}
	if off != int64(buf.Len()) {
		t.Errorf("members cover %d of %d bytes", off, buf.Len())
	}
}

func TestMembersEmpty(t *testing.T) {
	if _, err := Members(bytes.NewReader(nil)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("empty input: %v", err)
	}
}

func TestMembersTruncated(t *testing.T) {
	members, err := Members(bytes.NewReader(gzipMulti[:40]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("truncated: %v", err)
	}
	if len(members) != 1 || members[0].Len != 13 {
		t.Errorf("members before cut: %+v", members)
	}
}

func TestMembersTrailingGarbage(t *testing.T) {
	src := append(append([]byte{}, gzipMulti...), []byte("this is not a gzip member")...)
	members, err := Members(bytes.NewReader(src))
	if StatusOf(err) != StatusDataError {
		t.Errorf("garbage: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("members before garbage: %+v", members)
	}
}

func TestReaderMultistream(t *testing.T) {
	z, err := NewReader(bytes.NewReader(gzipMulti))
	if err != nil {
		t.Fatalf("new: %s", err)
	}
	got, err := io.ReadAll(z)
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if want := "first member\nsecond member\n"; string(got) != want {
		t.Errorf("joined: %q", got)
	}
	z.Close()

	// with multistream off the reader stops at the first trailer
	z, err = NewReader(bytes.NewReader(gzipMulti))
	if err != nil {
		t.Fatalf("new: %s", err)
	}
	defer z.Close()
	z.Multistream(false)
	got, err = io.ReadAll(z)
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if want := "first member\n"; string(got) != want {
		t.Errorf("first member: %q", got)
	}
}

func TestReaderZlibConcat(t *testing.T) {
	// an explicit zlib reader is single stream by default
	z, err := NewReaderWindowBits(bytes.NewReader(zlibMulti), DefaultWindowBits)
	if err != nil {
		t.Fatalf("new: %s", err)
	}
	got, err := io.ReadAll(z)
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if want := "first member\n"; string(got) != want {
		t.Errorf("single stream: %q", got)
	}
	z.Close()

	z, err = NewReaderWindowBits(bytes.NewReader(zlibMulti), DefaultWindowBits)
	if err != nil {
		t.Fatalf("new: %s", err)
	}
	defer z.Close()
	z.Multistream(true)
	got, err = io.ReadAll(z)
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if want := "first member\nsecond member\n"; string(got) != want {
		t.Errorf("joined: %q", got)
	}

	// format detection keeps multistream on
	out, err := Decompress(zlibMulti)
	if err != nil {
		t.Fatalf("decompress: %s", err)
	}
	if want := "first member\nsecond member\n"; string(out) != want {
		t.Errorf("auto: %q", out)
	}
}
