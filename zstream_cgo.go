//go:build clibs
// +build clibs

package cflate

/*
#cgo LDFLAGS: -lz

#include <zlib.h>

// inflateInit2 and deflateInit2 are macros, so the Go side calls real
// functions that forward the arguments untouched and hand the return code
// back untouched.
int cflate_inflate_init2(char *strm, int windowBits) {
	((z_stream*)strm)->zalloc = Z_NULL;
	((z_stream*)strm)->zfree = Z_NULL;
	((z_stream*)strm)->opaque = Z_NULL;
	((z_stream*)strm)->avail_in = 0;
	((z_stream*)strm)->next_in = Z_NULL;
	return inflateInit2((z_stream*)strm, windowBits);
}

int cflate_deflate_init2(char *strm, int level, int windowBits, int strategy) {
	((z_stream*)strm)->zalloc = Z_NULL;
	((z_stream*)strm)->zfree = Z_NULL;
	((z_stream*)strm)->opaque = Z_NULL;
	return deflateInit2((z_stream*)strm, level, Z_DEFLATED, windowBits,
	                    8, strategy);
}

int cflate_inflate_reset2(char *strm, int windowBits) {
	return inflateReset2((z_stream*)strm, windowBits);
}

int cflate_deflate_reset(char *strm) {
	return deflateReset((z_stream*)strm);
}

void cflate_set_in(char *strm, void *buf, unsigned int len) {
	((z_stream*)strm)->next_in = (Bytef*)buf;
	((z_stream*)strm)->avail_in = len;
}

void cflate_set_out(char *strm, void *buf, unsigned int len) {
	((z_stream*)strm)->next_out = (Bytef*)buf;
	((z_stream*)strm)->avail_out = len;
}

unsigned int cflate_avail_in(char *strm) {
	return ((z_stream*)strm)->avail_in;
}

unsigned int cflate_avail_out(char *strm) {
	return ((z_stream*)strm)->avail_out;
}

unsigned long cflate_adler(char *strm) {
	return ((z_stream*)strm)->adler;
}

char* cflate_msg(char *strm) {
	return ((z_stream*)strm)->msg;
}

int cflate_inflate(char *strm, int flush) {
	return inflate((z_stream*)strm, flush);
}

int cflate_deflate(char *strm, int flush) {
	return deflate((z_stream*)strm, flush);
}

int cflate_inflate_set_dict(char *strm, void *dict, unsigned int len) {
	return inflateSetDictionary((z_stream*)strm, (Bytef*)dict, len);
}

int cflate_deflate_set_dict(char *strm, void *dict, unsigned int len) {
	return deflateSetDictionary((z_stream*)strm, (Bytef*)dict, len);
}

int cflate_inflate_end(char *strm) {
	return inflateEnd((z_stream*)strm);
}

int cflate_deflate_end(char *strm) {
	return deflateEnd((z_stream*)strm);
}
*/
import "C"

// zstream reserves room for a C.z_stream while staying opaque to the Go
// garbage collector. The C side stores C-owned pointers inside, and the GC
// must not try to follow them, so the Go type is a plain char array sized
// to fit.
type zstream [C.sizeof_z_stream]C.char

func (strm *zstream) inflateInit(w WindowBits) Status {
	return Status(C.cflate_inflate_init2(&strm[0], C.int(w)))
}

func (strm *zstream) deflateInit(level int, w WindowBits, strategy int) Status {
	return Status(C.cflate_deflate_init2(&strm[0], C.int(level), C.int(w), C.int(strategy)))
}

func (strm *zstream) inflateReset(w WindowBits) Status {
	return Status(C.cflate_inflate_reset2(&strm[0], C.int(w)))
}

func (strm *zstream) deflateReset() Status {
	return Status(C.cflate_deflate_reset(&strm[0]))
}

// setInBuf points the engine at b. The engine keeps the pointer until the
// next call, so the caller must hold b alive and unmoved for that long.
func (strm *zstream) setInBuf(b []byte) {
	C.cflate_set_in(&strm[0], slicePtr(b), C.uint(len(b)))
}

func (strm *zstream) setOutBuf(b []byte) {
	C.cflate_set_out(&strm[0], slicePtr(b), C.uint(len(b)))
}

func (strm *zstream) availIn() int {
	return int(C.cflate_avail_in(&strm[0]))
}

func (strm *zstream) availOut() int {
	return int(C.cflate_avail_out(&strm[0]))
}

// adler is the running checksum, or the wanted dictionary id right after
// inflate reports StatusNeedDict.
func (strm *zstream) adler() uint32 {
	return uint32(C.cflate_adler(&strm[0]))
}

func (strm *zstream) msg() string {
	return C.GoString(C.cflate_msg(&strm[0]))
}

// inflate runs the engine and returns its status verbatim, StatusNeedDict
// included. Callers decide what each code means for them.
func (strm *zstream) inflate(flush int) Status {
	return Status(C.cflate_inflate(&strm[0], C.int(flush)))
}

func (strm *zstream) deflate(flush int) Status {
	return Status(C.cflate_deflate(&strm[0], C.int(flush)))
}

func (strm *zstream) inflateSetDictionary(dict []byte) Status {
	return Status(C.cflate_inflate_set_dict(&strm[0], slicePtr(dict), C.uint(len(dict))))
}

func (strm *zstream) deflateSetDictionary(dict []byte) Status {
	return Status(C.cflate_deflate_set_dict(&strm[0], slicePtr(dict), C.uint(len(dict))))
}

func (strm *zstream) inflateEnd() {
	C.cflate_inflate_end(&strm[0])
}

func (strm *zstream) deflateEnd() {
	C.cflate_deflate_end(&strm[0])
}
