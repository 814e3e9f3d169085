package cflate

import (
	"hash/adler32"
	"io"
)

// A Dictionary is a preset dictionary: bytes likely to occur early in the
// uncompressed data, agreed on out of band by compressor and decompressor.
// On the wire zlib names it only by its Adler-32 checksum.
type Dictionary []byte

// ID returns the Adler-32 checksum zlib writes as the DICTID field.
func (d Dictionary) ID() uint32 { return adler32.Checksum(d) }

// A DictionarySet maps DICTID values back to dictionaries, so a Reader can
// answer a need-dictionary stream without the caller tracking checksums.
// The zero value is empty and ready to use.
type DictionarySet struct {
	byID map[uint32]Dictionary
}

// Add registers d under its checksum and returns the checksum. A later Add
// with the same checksum replaces the earlier dictionary.
func (s *DictionarySet) Add(d Dictionary) uint32 {
	id := d.ID()
	if s.byID == nil {
		s.byID = make(map[uint32]Dictionary)
	}
	s.byID[id] = d
	return id
}

// Lookup returns the dictionary registered under id.
func (s *DictionarySet) Lookup(id uint32) (Dictionary, bool) {
	d, ok := s.byID[id]
	return d, ok
}

// Len reports how many dictionaries the set holds.
func (s *DictionarySet) Len() int { return len(s.byID) }

// Reader builds a Reader over r that resolves DICTID requests against the
// set. Each zlib member that asks for a dictionary gets the one registered
// under its checksum; a member whose checksum is unknown fails with the
// need-dictionary status.
func (s *DictionarySet) Reader(r io.Reader, w WindowBits) (*Reader, error) {
	z, err := NewReaderWindowBits(r, w)
	if err != nil {
		return nil, err
	}
	z.dicts = s
	return z, nil
}
