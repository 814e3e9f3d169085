package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cflate/cflate"
	"github.com/davecgh/go-spew/spew"
)

var (
	decompress = flag.Bool("d", false, "decompress instead of compress")
	level      = flag.Int("level", cflate.DefaultCompression, "compression level, -2..9")
	format     = flag.String("format", "", "frame: raw, zlib or gzip (empty: zlib, auto-detected when decompressing)")
	window     = flag.Int("w", 15, "window log, 8..15")
	inspect    = flag.Bool("inspect", false, "describe the stream header instead of decoding")
	list       = flag.Bool("list", false, "list gzip members instead of decoding")
	output     = flag.String("o", "", "write output here instead of stdout")
)

var out io.Writer = os.Stdout

func wbits() cflate.WindowBits {
	switch *format {
	case "raw":
		return cflate.RawBits(*window)
	case "gzip":
		return cflate.GzipBits(*window)
	case "zlib":
		return cflate.WindowBits(*window)
	case "", "auto":
		if *decompress {
			return cflate.AutoBits(*window)
		}
		return cflate.WindowBits(*window)
	}
	log.Fatalf("unknown format %q", *format)
	return 0
}

func process(fname string, b []byte) {
	switch {
	case *inspect:
		info, err := cflate.ParseHeader(b)
		if err != nil {
			log.Fatalf("error processing %s: %s", fname, err)
		}
		spew.Dump(info)

	case *list:
		members, err := cflate.Members(bytes.NewReader(b))
		if err != nil {
			log.Fatalf("error processing %s: %s", fname, err)
		}
		fmt.Fprintf(out, "%10s %12s %12s %6s  %s\n",
			"offset", "compressed", "uncompressed", "ratio", "name")
		for _, m := range members {
			ratio := 0.0
			if m.Len > 0 {
				ratio = 100 * (1 - float64(m.CompressedLen)/float64(m.Len))
			}
			fmt.Fprintf(out, "%10d %12d %12d %5.1f%%  %s\n",
				m.Offset, m.CompressedLen, m.Len, ratio, m.Name)
		}

	case *decompress:
		dec, err := cflate.DecompressWindowBits(b, wbits())
		if err != nil {
			log.Fatalf("error processing %s: %s", fname, err)
		}
		if _, err := out.Write(dec); err != nil {
			log.Fatalf("error writing output: %s", err)
		}

	default:
		enc, err := cflate.CompressFormat(b, *level, wbits())
		if err != nil {
			log.Fatalf("error processing %s: %s", fname, err)
		}
		if _, err := out.Write(enc); err != nil {
			log.Fatalf("error writing output: %s", err)
		}
	}
}

func main() {

	flag.Parse()

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("error creating %s: %s", *output, err)
		}
		defer f.Close()
		out = f
	}

	if flag.NArg() == 0 {
		b, _ := io.ReadAll(os.Stdin)
		process("stdin", b)
		return
	}

	for _, arg := range flag.Args() {
		b, _ := os.ReadFile(arg)
		process(arg, b)
	}
}
