// Package brotli provides the Brotli codec variant.
package brotli

import (
	"io"

	abrotli "github.com/andybalholm/brotli"

	"github.com/bytepress/press"
)

// DefaultLevel is the compression level used when none is supplied.
const DefaultLevel = 11

// Compile-time check that Codec implements press.Codec.
var _ press.Codec = (*Codec)(nil)

// Codec implements Brotli compression.
type Codec struct{}

// New returns a new brotli codec.
func New() *Codec { return &Codec{} }

// Name returns "brotli".
func (*Codec) Name() string { return "brotli" }

// DefaultLevel returns the default compression level.
func (*Codec) DefaultLevel() int { return DefaultLevel }

// NewWriter wraps w to compress data with brotli.
func (*Codec) NewWriter(w io.Writer, level int) (io.WriteCloser, error) {
	return abrotli.NewWriterLevel(w, level), nil
}

// NewReader wraps r to decompress brotli data.
func (*Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(abrotli.NewReader(r)), nil
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

// NewCompressor returns a streaming brotli compressor.
func NewCompressor(opts ...press.Option) (*press.Compressor, error) {
	return press.NewCompressor(New(), opts...)
}

// NewDecompressor returns a streaming brotli decompressor.
func NewDecompressor(opts ...press.Option) *press.Decompressor {
	return press.NewDecompressor(New(), opts...)
}
