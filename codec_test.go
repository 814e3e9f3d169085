package cflate

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundtrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	noise := make([]byte, 4096)
	rnd.Read(noise)

	payloads := map[string][]byte{
		"empty":      nil,
		"text":       plainText,
		"repetitive": bytes.Repeat([]byte("a stream of compressible words "), 320),
		"noise":      noise,
	}
	codecs := map[string]Codec{
		"zlib":         ZlibCodec{},
		"zlib-fast":    ZlibCodec{Level: BestSpeed},
		"zlib-huffman": ZlibCodec{Level: HuffmanOnly},
		"gzip":         GzipCodec{},
		"gzip-best":    GzipCodec{Level: BestCompression},
		"deflate":      DeflateCodec{},
		"snappy":       SnappyCodec{},
		"zstd":         ZstdCodec{},
		"zstd-19":      ZstdCodec{Level: 19},
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			for pname, payload := range payloads {
				comp, err := c.Compress(payload)
				require.NoError(t, err, "compress %s", pname)
				got, err := c.Decompress(comp)
				require.NoError(t, err, "decompress %s", pname)
				// bytes.Equal, not assert.Equal: engines disagree on
				// nil versus empty for a zero-length payload
				assert.True(t, bytes.Equal(payload, got),
					"roundtrip %s: %d bytes in, %d out", pname, len(payload), len(got))
			}
		})
	}
}

func TestCodecFraming(t *testing.T) {
	payload := bytes.Repeat([]byte("framing check "), 64)

	comp, err := ZlibCodec{}.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x78, 0x9c}, comp[:2], "default zlib header")

	comp, err = ZlibCodec{Level: BestSpeed}.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x78, 0x01}, comp[:2], "fast zlib header")

	comp, err = GzipCodec{}.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{gzipID1, gzipID2}, comp[:2], "gzip magic")

	// the deflate codec writes no framing at all, so only a raw window
	// can read it back
	comp, err = DeflateCodec{}.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, FormatRaw, DetectFormat(comp))
	got, err := DecompressWindowBits(comp, RawBits(maxWindowLog))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestCodecBadLevel(t *testing.T) {
	_, err := ZlibCodec{Level: 42}.Compress(plainText)
	assert.Equal(t, StatusStreamError, StatusOf(err))

	_, err = GzipCodec{Level: -7}.Compress(plainText)
	assert.Equal(t, StatusStreamError, StatusOf(err))
}

func TestCodecCorrupt(t *testing.T) {
	garbage := []byte("definitely not a compressed stream")

	_, err := SnappyCodec{}.Decompress(garbage)
	assert.Error(t, err)

	_, err = ZstdCodec{}.Decompress(garbage)
	assert.Error(t, err)

	_, err = ZlibCodec{}.Decompress(garbage)
	assert.Equal(t, StatusDataError, StatusOf(err))
}
