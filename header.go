package cflate

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"time"
)

// StreamInfo describes the container header of a compressed stream without
// inflating any of it. Zlib streams fill the window and dictionary fields,
// gzip streams the metadata fields; a raw stream has no header and leaves
// everything zero.
type StreamInfo struct {
	Format    Format
	HeaderLen int // bytes the header occupies

	// zlib
	WindowLog int    // CINFO+8, the window log the deflater declared
	LevelHint int    // FLEVEL, 0 fastest .. 3 maximum
	NeedsDict bool   // FDICT bit set
	DictID    uint32 // Adler-32 of the preset dictionary when NeedsDict

	// gzip
	ModTime   time.Time
	OS        byte
	Text      bool
	Extra     []byte
	Name      string
	Comment   string
	HeaderCRC bool // header carried an FHCRC value and it matched
}

// ParseHeader reads the container header at the start of b. It needs the
// whole header present: a prefix that runs out mid-header fails with
// io.ErrUnexpectedEOF, and a malformed one fails with the data-error status
// and the same message inflate would report. Bytes past the header are not
// touched.
func ParseHeader(b []byte) (*StreamInfo, error) {
	if len(b) < 2 {
		return nil, io.ErrUnexpectedEOF
	}
	switch DetectFormat(b) {
	case FormatGzip:
		return parseGzipHeader(b)
	case FormatZlib:
		return parseZlibHeader(b)
	}
	return &StreamInfo{Format: FormatRaw}, nil
}

func parseZlibHeader(b []byte) (*StreamInfo, error) {
	cmf, flg := b[0], b[1]
	if (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		return nil, statusErr(StatusDataError, "incorrect header check")
	}
	if cmf&0x0f != methodDeflate {
		return nil, statusErr(StatusDataError, "unknown compression method")
	}
	info := &StreamInfo{
		Format:    FormatZlib,
		HeaderLen: 2,
		WindowLog: int(cmf>>4) + minWindowLog,
		LevelHint: int(flg >> 6),
	}
	if info.WindowLog > maxWindowLog {
		return nil, statusErr(StatusDataError, "invalid window size")
	}
	if flg&zlibFlagDict != 0 {
		if len(b) < 6 {
			return nil, io.ErrUnexpectedEOF
		}
		info.NeedsDict = true
		info.DictID = binary.BigEndian.Uint32(b[2:6])
		info.HeaderLen = 6
	}
	return info, nil
}

func parseGzipHeader(b []byte) (*StreamInfo, error) {
	if len(b) < 10 {
		return nil, io.ErrUnexpectedEOF
	}
	if b[2] != methodDeflate {
		return nil, statusErr(StatusDataError, "unknown compression method")
	}
	flg := b[3]
	if flg&0xe0 != 0 {
		return nil, statusErr(StatusDataError, "unknown header flags set")
	}
	info := &StreamInfo{
		Format: FormatGzip,
		OS:     b[9],
		Text:   flg&gzipFlagText != 0,
	}
	if t := int64(binary.LittleEndian.Uint32(b[4:8])); t > 0 {
		info.ModTime = time.Unix(t, 0)
	}
	pos := 10
	if flg&gzipFlagExtra != 0 {
		if len(b) < pos+2 {
			return nil, io.ErrUnexpectedEOF
		}
		n := int(binary.LittleEndian.Uint16(b[pos:]))
		pos += 2
		if len(b) < pos+n {
			return nil, io.ErrUnexpectedEOF
		}
		info.Extra = append([]byte(nil), b[pos:pos+n]...)
		pos += n
	}
	if flg&gzipFlagName != 0 {
		s, next, err := gzipString(b, pos)
		if err != nil {
			return nil, err
		}
		info.Name, pos = s, next
	}
	if flg&gzipFlagComment != 0 {
		s, next, err := gzipString(b, pos)
		if err != nil {
			return nil, err
		}
		info.Comment, pos = s, next
	}
	if flg&gzipFlagHdrCRC != 0 {
		if len(b) < pos+2 {
			return nil, io.ErrUnexpectedEOF
		}
		sum := crc32.ChecksumIEEE(b[:pos])
		if uint16(sum) != binary.LittleEndian.Uint16(b[pos:]) {
			return nil, statusErr(StatusDataError, "header crc mismatch")
		}
		pos += 2
		info.HeaderCRC = true
	}
	info.HeaderLen = pos
	return info, nil
}

// gzipString reads the zero-terminated Latin-1 field starting at b[pos].
func gzipString(b []byte, pos int) (string, int, error) {
	end := pos
	for {
		if end >= len(b) {
			return "", 0, io.ErrUnexpectedEOF
		}
		if b[end] == 0 {
			break
		}
		end++
	}
	return latin1(b[pos:end]), end + 1, nil
}

// latin1 widens ISO 8859-1 bytes into a string. Pure ASCII, the common
// case, converts directly.
func latin1(b []byte) string {
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b)
	}
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}
