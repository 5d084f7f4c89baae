// Package gzip provides the gzip codec variant.
package gzip

import (
	"io"

	kgzip "github.com/klauspost/compress/gzip"

	"github.com/bytepress/press"
)

// DefaultLevel is the compression level used when none is supplied.
const DefaultLevel = 6

// Compile-time check that Codec implements press.Codec.
var _ press.Codec = (*Codec)(nil)

// Codec implements gzip compression.
type Codec struct{}

// New returns a new gzip codec.
func New() *Codec { return &Codec{} }

// Name returns "gzip".
func (*Codec) Name() string { return "gzip" }

// DefaultLevel returns the default compression level.
func (*Codec) DefaultLevel() int { return DefaultLevel }

// NewWriter wraps w to compress data with gzip.
func (*Codec) NewWriter(w io.Writer, level int) (io.WriteCloser, error) {
	return kgzip.NewWriterLevel(w, level)
}

// NewReader wraps r to decompress gzip data. Concatenated members are
// decoded back-to-back.
func (*Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return kgzip.NewReader(r)
}

// Compress one-shot compresses src into an owned buffer.
func Compress(src io.Reader, opts ...press.Option) (*press.Buffer, error) {
	return press.Compress(New(), src, opts...)
}

// Decompress one-shot decompresses src into an owned buffer.
func Decompress(src io.Reader, opts ...press.Option) (*press.Buffer, error) {
	return press.Decompress(New(), src, opts...)
}

// CompressInto compresses src into dst, returning the bytes produced.
func CompressInto(src io.Reader, dst press.Stream, opts ...press.Option) (int64, error) {
	return press.CompressInto(New(), src, dst, opts...)
}

// DecompressInto decompresses src into dst, returning the bytes produced.
func DecompressInto(src io.Reader, dst press.Stream, opts ...press.Option) (int64, error) {
	return press.DecompressInto(New(), src, dst, opts...)
}

// NewCompressor returns a streaming gzip compressor.
func NewCompressor(opts ...press.Option) (*press.Compressor, error) {
	return press.NewCompressor(New(), opts...)
}

// NewDecompressor returns a streaming gzip decompressor.
func NewDecompressor(opts ...press.Option) *press.Decompressor {
	return press.NewDecompressor(New(), opts...)
}
