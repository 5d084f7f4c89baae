// Package lz4 provides the LZ4 codec variant: the frame format through
// the shared engine, and the block format through the *Block functions
// with python-lz4 compatible size prefixing.
package lz4

import (
	"io"

	plz4 "github.com/pierrec/lz4/v4"

	"github.com/bytepress/press"
)

// DefaultLevel is the frame compression level used when none is supplied.
const DefaultLevel = 4

// Compile-time check that Codec implements press.Codec.
var _ press.Codec = (*Codec)(nil)

// Codec implements LZ4 frame compression.
type Codec struct{}

// New returns a new lz4 codec.
func New() *Codec { return &Codec{} }

// Name returns "lz4".
func (*Codec) Name() string { return "lz4" }

// DefaultLevel returns the default compression level.
func (*Codec) DefaultLevel() int { return DefaultLevel }

// NewWriter wraps w to compress data with the LZ4 frame format.
func (*Codec) NewWriter(w io.Writer, level int) (io.WriteCloser, error) {
	enc := plz4.NewWriter(w)
	if err := enc.Apply(plz4.CompressionLevelOption(compressionLevel(level))); err != nil {
		return nil, err
	}
	return enc, nil
}

// NewReader wraps r to decompress LZ4 frame data.
func (*Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(plz4.NewReader(r)), nil
}

// compressionLevel maps 1..9 onto the backend levels; anything else is
// the fast path.
func compressionLevel(level int) plz4.CompressionLevel {
	switch level {
	case 1:
		return plz4.Level1
	case 2:
		return plz4.Level2
	case 3:
		return plz4.Level3
	case 4:
		return plz4.Level4
	case 5:
		return plz4.Level5
	case 6:
		return plz4.Level6
	case 7:
		return plz4.Level7
	case 8:
		return plz4.Level8
	case 9:
		return plz4.Level9
	default:
		return plz4.Fast
	}
}

// Compress one-shot compresses src with the frame format.
func Compress(src io.Reader, opts ...press.Option) (*press.Buffer, error) {
	return press.Compress(New(), src, opts...)
}

// Decompress one-shot decompresses frame format src.
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

// NewCompressor returns a streaming lz4 frame compressor.
func NewCompressor(opts ...press.Option) (*press.Compressor, error) {
	return press.NewCompressor(New(), opts...)
}

// NewDecompressor returns a streaming lz4 frame decompressor.
func NewDecompressor(opts ...press.Option) *press.Decompressor {
	return press.NewDecompressor(New(), opts...)
}
