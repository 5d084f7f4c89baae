// Package zstd provides the Zstandard codec variant.
package zstd

import (
	"errors"
	"io"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	kzstd "github.com/klauspost/compress/zstd"

	"github.com/bytepress/press"
)

// DefaultLevel is the zstd default (maps to SpeedDefault).
const DefaultLevel = 3

// Compile-time checks against the press capability set.
var (
	_ press.Codec = (*Codec)(nil)
	_ press.Sized = (*Codec)(nil)
)

// Codec implements zstd compression.
type Codec struct{}

// New returns a new zstd codec.
func New() *Codec { return &Codec{} }

// Name returns "zstd".
func (*Codec) Name() string { return "zstd" }

// DefaultLevel returns the default compression level.
func (*Codec) DefaultLevel() int { return DefaultLevel }

// NewWriter wraps w to compress data with zstd.
func (*Codec) NewWriter(w io.Writer, level int) (io.WriteCloser, error) {
	return kzstd.NewWriter(w, encoderLevel(level))
}

// NewReader wraps r to decompress zstd data. Concatenated frames are
// decoded back-to-back.
func (*Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := kzstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

// DecompressedLen reads the frame header and returns the content size
// recorded there. Frames written without a content size fail.
func (*Codec) DecompressedLen(encoded []byte) (int64, error) {
	var h kzstd.Header
	if err := h.Decode(encoded); err != nil {
		return 0, err
	}
	if !h.HasFCS {
		return 0, errors.New("zstd: frame header has no content size")
	}
	return int64(h.FrameContentSize), nil
}

func encoderLevel(level int) kzstd.EOption {
	return kzstd.WithEncoderLevel(kzstd.EncoderLevelFromZstd(level))
}

// Encoders are expensive to construct, so the []byte fast path keeps one
// per level. EncodeAll on a writer-less encoder is concurrency-safe.
var (
	encMu    sync.Mutex
	encoders *lru.Cache[int, *kzstd.Encoder]

	decOnce sync.Once
	decoder *kzstd.Decoder
	decErr  error
)

func encoderFor(level int) (*kzstd.Encoder, error) {
	encMu.Lock()
	defer encMu.Unlock()

	if encoders == nil {
		cache, err := lru.NewWithEvict(4, func(_ int, e *kzstd.Encoder) { e.Close() })
		if err != nil {
			return nil, err
		}
		encoders = cache
	}
	if enc, ok := encoders.Get(level); ok {
		return enc, nil
	}
	enc, err := kzstd.NewWriter(nil, encoderLevel(level))
	if err != nil {
		return nil, err
	}
	encoders.Add(level, enc)
	return enc, nil
}

func sharedDecoder() (*kzstd.Decoder, error) {
	decOnce.Do(func() {
		decoder, decErr = kzstd.NewReader(nil, kzstd.WithDecoderConcurrency(0))
	})
	return decoder, decErr
}

// CompressBytes compresses p in one call, reusing a cached per-level
// encoder. Faster than Compress for sources already in memory.
func CompressBytes(p []byte, opts ...press.Option) ([]byte, error) {
	enc, err := encoderFor(press.ResolveLevel(New(), opts...))
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(p, nil), nil
}

// DecompressBytes decompresses p in one call using a shared decoder.
func DecompressBytes(p []byte) ([]byte, error) {
	dec, err := sharedDecoder()
	if err != nil {
		return nil, err
	}
	return dec.DecodeAll(p, nil)
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

// NewCompressor returns a streaming zstd compressor.
func NewCompressor(opts ...press.Option) (*press.Compressor, error) {
	return press.NewCompressor(New(), opts...)
}

// NewDecompressor returns a streaming zstd decompressor.
func NewDecompressor(opts ...press.Option) *press.Decompressor {
	return press.NewDecompressor(New(), opts...)
}
