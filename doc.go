// Package press provides a uniform binary I/O and compression-codec
// abstraction: one consistent API for compressing and decompressing byte
// data across interchangeable codec backends, against in-memory buffers,
// files, or zero-copy views over caller-owned memory.
//
// Example usage:
//
//	compressed, err := gzip.Compress(bytes.NewReader(data))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	original, err := gzip.Decompress(compressed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Sources and destinations are anything satisfying the Stream contract:
// an owned growable Buffer, a filesystem-backed File, or a View aliasing
// memory owned by someone else. The codec backends (gzip, deflate, snappy,
// lz4, brotli, zstd, bzip2, xz, lzo) live in their own sub-packages and
// plug into the shared one-shot engine and streaming protocol defined here.
package press
