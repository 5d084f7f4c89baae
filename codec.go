package press

import "io"

// Codec is the capability set every compression backend implements. The
// shared one-shot engine and streaming protocol are written against this
// interface alone; variants are selected by value, not inheritance.
type Codec interface {
	// Name returns the canonical codec name (e.g. "gzip", "zstd").
	Name() string

	// DefaultLevel returns the compression level used when the caller
	// supplies none. Codecs without levels return 0 and ignore the value.
	DefaultLevel() int

	// NewWriter wraps w to compress data written to it at the given level.
	NewWriter(w io.Writer, level int) (io.WriteCloser, error)

	// NewReader wraps r to decompress data read from it.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Bounded is implemented by codecs that can compute a worst-case
// compressed size from the input length alone, letting callers
// pre-allocate exact-fit destinations without a trial compression.
type Bounded interface {
	MaxCompressedLen(srcLen int) int
}

// Sized is implemented by codecs that can recover the exact decompressed
// length from the encoded data without decoding it.
type Sized interface {
	DecompressedLen(encoded []byte) (int64, error)
}

// Flusher is the optional flush supported by most codec writers. Writers
// lacking it simply have nothing extra to emit mid-stream.
type Flusher interface {
	Flush() error
}
