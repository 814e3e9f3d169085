// zfuzz hammers the codecs with generated payloads until interrupted.
// Failures are minimized with ddmin and deduplicated by signature, so one
// root cause prints once, not once per payload that trips it.
package main

import (
	"bytes"
	crand "crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	mrand "math/rand"

	"github.com/cflate/cflate"
	"github.com/dchest/siphash"
	"github.com/dgryski/go-ddmin"
	"github.com/google/go-cmp/cmp"
)

// fixed hash keys so failure signatures stay comparable across runs
const (
	sipK0 = 0x0706050403020100
	sipK1 = 0x0f0e0d0c0b0a0908
)

var (
	maxLen = flag.Int("max", 1<<16, "largest generated payload")
	seed   = flag.Int64("seed", 1, "payload generator seed")
	report = flag.Int("report", 1<<12, "print a status line every n rounds")
)

var codecs = []struct {
	name string
	c    cflate.Codec
}{
	{"zlib", cflate.ZlibCodec{}},
	{"zlib-1", cflate.ZlibCodec{Level: cflate.BestSpeed}},
	{"zlib-9", cflate.ZlibCodec{Level: cflate.BestCompression}},
	{"zlib-huffman", cflate.ZlibCodec{Level: cflate.HuffmanOnly}},
	{"gzip", cflate.GzipCodec{}},
	{"deflate", cflate.DeflateCodec{}},
	{"snappy", cflate.SnappyCodec{}},
	{"zstd", cflate.ZstdCodec{}},
	{"zstd-19", cflate.ZstdCodec{Level: 19}},
}

var seen = make(map[uint64]bool)

func genPayload(rnd *mrand.Rand, max int) []byte {
	n := rnd.Intn(max + 1)
	b := make([]byte, n)
	switch rnd.Intn(3) {
	case 0: // incompressible noise
		crand.Read(b)
	case 1: // long runs
		for i := 0; i < n; {
			run := 1 + rnd.Intn(256)
			c := byte(rnd.Intn(256))
			for j := 0; j < run && i < n; j++ {
				b[i] = c
				i++
			}
		}
	case 2: // repetitive text, deep match history
		phrase := []byte("the quick brown fox jumps over the lazy dog ")
		for i := 0; i < n; i += copy(b[i:], phrase) {
		}
	}
	return b
}

func roundtrips(c cflate.Codec, payload []byte) bool {
	enc, err := c.Compress(payload)
	if err != nil {
		return false
	}
	dec, err := c.Decompress(enc)
	if err != nil {
		return false
	}
	return bytes.Equal(dec, payload)
}

func reportFailure(name string, c cflate.Codec, payload []byte) {
	min := ddmin.Minimize(payload, func(d []byte) ddmin.Result {
		if roundtrips(c, d) {
			return ddmin.Pass
		}
		return ddmin.Fail
	})

	sig := siphash.Hash(sipK0, sipK1, min)
	if seen[sig] {
		return
	}
	seen[sig] = true

	detail := ""
	enc, err := c.Compress(min)
	if err != nil {
		detail = "compress: " + err.Error()
	} else if dec, err := c.Decompress(enc); err != nil {
		detail = "decompress: " + err.Error()
	} else {
		detail = cmp.Diff(min, dec)
	}

	fmt.Printf("%s: roundtrip failure, %d bytes minimized to %d, sig %016x\n%s%s\n",
		name, len(payload), len(min), sig, hex.Dump(min), detail)
}

// corrupted flips bits in a gzip stream and checks that damage never
// decodes silently: either the decode errors out or, for a lucky flip in a
// don't-care bit, the payload survives intact.
func corrupted(rnd *mrand.Rand, payload []byte) {
	enc, err := cflate.CompressFormat(payload, cflate.DefaultCompression, cflate.GzipBits(15))
	if err != nil {
		log.Fatalf("compressing corruption probe: %s", err)
	}
	for i := 0; i < 4; i++ {
		pos := rnd.Intn(len(enc))
		bit := byte(1) << rnd.Intn(8)
		enc[pos] ^= bit
		dec, err := cflate.Decompress(enc)
		if err == nil && !bytes.Equal(dec, payload) {
			fmt.Printf("silent corruption: bit %02x at offset %d\n%s",
				bit, pos, hex.Dump(enc))
		}
		enc[pos] ^= bit
	}
}

func main() {

	flag.Parse()

	rnd := mrand.New(mrand.NewSource(*seed))

	for round := 1; ; round++ {
		payload := genPayload(rnd, *maxLen)
		for _, tc := range codecs {
			if !roundtrips(tc.c, payload) {
				reportFailure(tc.name, tc.c, payload)
			}
		}
		corrupted(rnd, payload)
		if round%*report == 0 {
			log.Printf("%d rounds, %d distinct failures", round, len(seen))
		}
	}
}
