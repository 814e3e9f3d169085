package cflate_test

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/cflate/cflate"
)

var benchPayload = func() []byte {
	words := []string{"stream", "window", "deflate", "huffman", "dictionary", "block", "match", "literal"}
	rnd := rand.New(rand.NewSource(42))
	var buf bytes.Buffer
	for buf.Len() < 64*1024 {
		buf.WriteString(words[rnd.Intn(len(words))])
		buf.WriteByte(' ')
	}
	return buf.Bytes()
}()

func BenchmarkCompress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := cflate.Compress(benchPayload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressBestSpeed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := cflate.CompressLevel(benchPayload, cflate.BestSpeed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	comp, err := cflate.Compress(benchPayload)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cflate.Decompress(comp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriterLarge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		w, err := cflate.NewWriterWindowBits(io.Discard, cflate.DefaultCompression, cflate.GzipBits(15))
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 16; j++ {
			if _, err := w.Write(benchPayload); err != nil {
				b.Fatal(err)
			}
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReaderLarge(b *testing.B) {
	var buf bytes.Buffer
	w, err := cflate.NewWriterWindowBits(&buf, cflate.DefaultCompression, cflate.GzipBits(15))
	if err != nil {
		b.Fatal(err)
	}
	for j := 0; j < 16; j++ {
		if _, err := w.Write(benchPayload); err != nil {
			b.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		b.Fatal(err)
	}
	comp := buf.Bytes()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		z, err := cflate.NewReader(bytes.NewReader(comp))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := io.Copy(io.Discard, z); err != nil {
			b.Fatal(err)
		}
		z.Close()
	}
}

func BenchmarkCompressSnappy(b *testing.B) {
	c := cflate.SnappyCodec{}
	for i := 0; i < b.N; i++ {
		if _, err := c.Compress(benchPayload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompressSnappy(b *testing.B) {
	c := cflate.SnappyCodec{}
	comp, err := c.Compress(benchPayload)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decompress(comp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressZstd(b *testing.B) {
	c := cflate.ZstdCodec{}
	for i := 0; i < b.N; i++ {
		if _, err := c.Compress(benchPayload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompressZstd(b *testing.B) {
	c := cflate.ZstdCodec{}
	comp, err := c.Compress(benchPayload)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decompress(comp); err != nil {
			b.Fatal(err)
		}
	}
}
