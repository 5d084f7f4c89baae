// Package snappy provides the snappy codec variant: the framed stream
// format through the shared engine, and the raw block format through the
// *Raw functions with exact size-bound calculators.
package snappy

import (
	"fmt"
	"io"

	gsnappy "github.com/golang/snappy"

	"github.com/bytepress/press"
)

// Compile-time checks against the press capability set.
var (
	_ press.Codec   = (*Codec)(nil)
	_ press.Bounded = (*Codec)(nil)
)

// Codec implements snappy framed compression. Snappy has no levels; the
// level argument is ignored.
type Codec struct{}

// New returns a new snappy codec.
func New() *Codec { return &Codec{} }

// Name returns "snappy".
func (*Codec) Name() string { return "snappy" }

// DefaultLevel returns 0; snappy has no compression levels.
func (*Codec) DefaultLevel() int { return 0 }

// NewWriter wraps w to compress data with the snappy framing format.
func (*Codec) NewWriter(w io.Writer, _ int) (io.WriteCloser, error) {
	return gsnappy.NewBufferedWriter(w), nil
}

// NewReader wraps r to decompress snappy framed data.
func (*Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(gsnappy.NewReader(r)), nil
}

// MaxCompressedLen returns the worst-case raw-format compressed size for
// an input of srcLen bytes, the buffer size to pass ahead of
// CompressRawInto. Negative means the input is too large for snappy.
func (*Codec) MaxCompressedLen(srcLen int) int {
	return gsnappy.MaxEncodedLen(srcLen)
}

// MaxCompressedLen is the package-level form of the codec method.
func MaxCompressedLen(srcLen int) int {
	return gsnappy.MaxEncodedLen(srcLen)
}

// DecompressedLen returns the exact decompressed size recorded in raw
// encoded data, the buffer size to pass ahead of DecompressRawInto.
func DecompressedLen(encoded []byte) (int, error) {
	return gsnappy.DecodedLen(encoded)
}

// CompressRaw compresses src with the raw block format (no framing).
func CompressRaw(src []byte) []byte {
	return gsnappy.Encode(nil, src)
}

// DecompressRaw decompresses raw block format data.
func DecompressRaw(src []byte) ([]byte, error) {
	return gsnappy.Decode(nil, src)
}

// CompressRawInto compresses src in raw format into dst. Fixed-capacity
// destinations are validated up front against the worst-case size and
// fail fast with the required and available sizes.
func CompressRawInto(src []byte, dst press.Stream) (int, error) {
	bound := gsnappy.MaxEncodedLen(len(src))
	if bound < 0 {
		return 0, &press.CompressionError{Codec: "snappy",
			Err: fmt.Errorf("input of %d bytes too large for snappy", len(src))}
	}
	if err := ensureCapacity(dst, int64(bound)); err != nil {
		return 0, err
	}
	return dst.Write(gsnappy.Encode(nil, src))
}

// DecompressRawInto decompresses raw format src into dst, validating
// fixed-capacity destinations against the exact recorded size up front.
func DecompressRawInto(src []byte, dst press.Stream) (int, error) {
	required, err := gsnappy.DecodedLen(src)
	if err != nil {
		return 0, &press.DecompressionError{Codec: "snappy", Err: err}
	}
	if err := ensureCapacity(dst, int64(required)); err != nil {
		return 0, err
	}
	decoded, err := gsnappy.Decode(nil, src)
	if err != nil {
		return 0, &press.DecompressionError{Codec: "snappy", Err: err}
	}
	return dst.Write(decoded)
}

// ensureCapacity fails fast when a fixed-capacity destination cannot
// hold required bytes. Growable destinations always pass.
func ensureCapacity(dst press.Stream, required int64) error {
	if dst.Growable() {
		return nil
	}
	avail, err := press.Available(dst)
	if err != nil {
		return err
	}
	if required > avail {
		return fmt.Errorf("press: need %d bytes but destination has %d available: %w",
			required, avail, press.ErrDestTooSmall)
	}
	return nil
}

// Compress one-shot compresses src with the framing format.
func Compress(src io.Reader, opts ...press.Option) (*press.Buffer, error) {
	return press.Compress(New(), src, opts...)
}

// Decompress one-shot decompresses framed src.
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

// NewCompressor returns a streaming snappy compressor.
func NewCompressor(opts ...press.Option) (*press.Compressor, error) {
	return press.NewCompressor(New(), opts...)
}

// NewDecompressor returns a streaming snappy decompressor.
func NewDecompressor(opts ...press.Option) *press.Decompressor {
	return press.NewDecompressor(New(), opts...)
}
