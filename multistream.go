package cflate

import (
	"bufio"
	"hash/crc32"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"
)

// Member describes one member of a possibly concatenated gzip stream.
type Member struct {
	Offset        int64     // where the member header starts
	CompressedLen int64     // wire size, header through trailer
	Len           int64     // decompressed payload size
	CRC32         uint32    // payload checksum, recomputed during the scan
	ModTime       time.Time // MTIME field, zero when the header has none
	Name          string    // FNAME field
}

// countReader counts consumed bytes. Exposing ReadByte keeps the flate
// engine reading from it directly instead of wrapping it in another bufio,
// which would read ahead and spoil the count.
type countReader struct {
	br *bufio.Reader
	n  int64
}

func (c *countReader) Read(p []byte) (int, error) {
	n, err := c.br.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countReader) ReadByte() (byte, error) {
	b, err := c.br.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// Members walks a gzip stream and describes every member in it, the
// inventory `gzip -l` prints. Payload bytes are decoded to measure length
// and recompute the checksum, then dropped; memory use stays flat no matter
// how large the stream is. Members found before an error are returned with
// it.
func Members(r io.Reader) ([]Member, error) {
	cr := &countReader{br: bufio.NewReader(r)}
	var (
		members []Member
		gz      gzip.Reader
		crc     = crc32.NewIEEE()
	)
	for {
		if _, err := cr.br.Peek(1); err != nil {
			if err == io.EOF {
				if len(members) == 0 {
					return nil, io.ErrUnexpectedEOF
				}
				return members, nil
			}
			return members, err
		}
		m := Member{Offset: cr.n}
		if err := gz.Reset(cr); err != nil {
			return members, engineError(err, false)
		}
		gz.Multistream(false)
		m.Name = gz.Name
		m.ModTime = gz.ModTime
		crc.Reset()
		n, err := io.Copy(crc, &gz)
		if err != nil {
			return members, engineError(err, false)
		}
		m.Len = n
		m.CRC32 = crc.Sum32()
		m.CompressedLen = cr.n - m.Offset
		members = append(members, m)
	}
}
