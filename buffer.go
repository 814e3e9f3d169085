package cflate

import "unsafe"

// ByteView reinterprets n bytes of raw memory at p as a []byte without
// copying. The slice aliases the memory, so writes through either are seen
// by both, and it stays valid only as long as the memory at p does. A nil
// pointer or a non-positive count yields nil.
func ByteView(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// slicePtr is the inverse view: the address of the first byte of b, or nil
// when b is empty. Engines take the address paired with len(b), never the
// slice header.
func slicePtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// stringBytes aliases the bytes of s without copying. The result must be
// treated as read-only; writing through it breaks string immutability.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// byteString aliases b as a string without copying. Only safe when b is
// never mutated afterwards, such as a freshly built buffer that does not
// escape.
func byteString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
