// Package xz provides the xz/lzma codec variant. The default codec
// writes the xz container format; NewAlone selects the legacy LZMA
// "alone" format. The backend has fixed presets, so compression levels
// are ignored.
package xz

import (
	"io"

	uxz "github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"github.com/bytepress/press"
)

// Compile-time checks that both formats implement press.Codec.
var (
	_ press.Codec = (*Codec)(nil)
	_ press.Codec = (*AloneCodec)(nil)
)

// Codec implements compression in the xz container format.
type Codec struct{}

// New returns a new xz codec.
func New() *Codec { return &Codec{} }

// Name returns "xz".
func (*Codec) Name() string { return "xz" }

// DefaultLevel returns 0; the backend preset is fixed.
func (*Codec) DefaultLevel() int { return 0 }

// NewWriter wraps w to compress data into an xz container.
func (*Codec) NewWriter(w io.Writer, _ int) (io.WriteCloser, error) {
	return uxz.NewWriter(w)
}

// NewReader wraps r to decompress xz data.
func (*Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := uxz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(dec), nil
}

// AloneCodec implements compression in the legacy LZMA "alone" format.
type AloneCodec struct{}

// NewAlone returns a codec for the LZMA alone format.
func NewAlone() *AloneCodec { return &AloneCodec{} }

// Name returns "lzma".
func (*AloneCodec) Name() string { return "lzma" }

// DefaultLevel returns 0; the backend preset is fixed.
func (*AloneCodec) DefaultLevel() int { return 0 }

// NewWriter wraps w to compress data in the LZMA alone format.
func (*AloneCodec) NewWriter(w io.Writer, _ int) (io.WriteCloser, error) {
	return lzma.NewWriter(w)
}

// NewReader wraps r to decompress LZMA alone data.
func (*AloneCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := lzma.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(dec), nil
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

// NewCompressor returns a streaming xz compressor.
func NewCompressor(opts ...press.Option) (*press.Compressor, error) {
	return press.NewCompressor(New(), opts...)
}

// NewDecompressor returns a streaming xz decompressor.
func NewDecompressor(opts ...press.Option) *press.Decompressor {
	return press.NewDecompressor(New(), opts...)
}
