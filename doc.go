/*
Package cflate reads and writes the DEFLATE family of formats: raw DEFLATE,
the zlib wrapper and the gzip container, selected by zlib's windowBits
convention.

Two interchangeable engines back the package. The default build runs on
pure Go engines; building with the clibs tag switches to the C zlib library
through cgo. The exported surface, the framing produced and the error
taxonomy are the same either way.

For the formats see RFC 1950 (zlib), RFC 1951 (DEFLATE) and RFC 1952 (gzip).

*/
package cflate
