// Package lzo provides the LZO1X codec variant. LZO is a block format
// with no streaming encoder, so only the block operation set is exposed,
// with the same little-endian size prefix convention as the lz4 block
// functions.
package lzo

import (
	"encoding/binary"
	"fmt"
	"math"

	wlzo "github.com/woozymasta/lzo"

	"github.com/bytepress/press"
)

// DefaultLevel selects the fast LZO1X-1 encoder; levels 2-9 select
// LZO1X-999 at increasing effort.
const DefaultLevel = 1

const storeSizeLen = 4

// BlockOption configures the block functions.
type BlockOption interface {
	applyBlock(*blockOptions)
}

type blockOptions struct {
	level      int
	storeSize  bool
	decodedLen int
}

type blockOptionFunc func(*blockOptions)

// Compile-time check that blockOptionFunc implements BlockOption.
var _ BlockOption = blockOptionFunc(nil)

func (f blockOptionFunc) applyBlock(o *blockOptions) { f(o) }

// WithLevel sets the compression effort: 1 is the fast LZO1X-1 encoder,
// 2-9 the LZO1X-999 encoder at increasing effort.
func WithLevel(level int) BlockOption {
	return blockOptionFunc(func(o *blockOptions) { o.level = level })
}

// WithStoreSize controls the 4-byte little-endian decompressed-size
// prefix. Enabled by default.
func WithStoreSize(store bool) BlockOption {
	return blockOptionFunc(func(o *blockOptions) { o.storeSize = store })
}

// WithDecodedLen states the decompressed size explicitly, for data
// compressed without a stored size.
func WithDecodedLen(n int) BlockOption {
	return blockOptionFunc(func(o *blockOptions) { o.decodedLen = n })
}

func buildBlockOptions(opts []BlockOption) blockOptions {
	cfg := blockOptions{level: DefaultLevel, storeSize: true, decodedLen: -1}
	for _, opt := range opts {
		opt.applyBlock(&cfg)
	}
	return cfg
}

// Compress compresses src as a single LZO1X block, prefixed with the
// decompressed size unless WithStoreSize(false) is given.
func Compress(src []byte, opts ...BlockOption) ([]byte, error) {
	cfg := buildBlockOptions(opts)

	var prefix uint32
	if cfg.storeSize {
		var err error
		if prefix, err = storedSize(len(src)); err != nil {
			return nil, &press.CompressionError{Codec: "lzo", Err: err}
		}
	}
	payload, err := wlzo.Compress(src, &wlzo.CompressOptions{Level: cfg.level})
	if err != nil {
		return nil, &press.CompressionError{Codec: "lzo", Err: err}
	}
	if !cfg.storeSize {
		return payload, nil
	}
	out := make([]byte, storeSizeLen, storeSizeLen+len(payload))
	binary.LittleEndian.PutUint32(out, prefix)
	return append(out, payload...), nil
}

// storedSize validates that n fits the 4-byte size prefix.
func storedSize(n int) (uint32, error) {
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("input of %d bytes exceeds the 4-byte stored-size limit", n)
	}
	return uint32(n), nil
}

// Decompress decompresses a single LZO1X block. Without an explicit
// WithDecodedLen the input is assumed to carry a stored-size prefix.
func Decompress(src []byte, opts ...BlockOption) ([]byte, error) {
	cfg := buildBlockOptions(opts)

	payload, decodedLen, err := blockLayout(src, cfg)
	if err != nil {
		return nil, err
	}
	out, err := wlzo.Decompress(payload, wlzo.DefaultDecompressOptions(decodedLen))
	if err != nil {
		return nil, &press.DecompressionError{Codec: "lzo", Err: err}
	}
	return out, nil
}

// DecompressInto decompresses a single LZO1X block into dst, validating
// fixed-capacity destinations against the known decompressed size up
// front.
func DecompressInto(src []byte, dst press.Stream, opts ...BlockOption) (int, error) {
	cfg := buildBlockOptions(opts)

	payload, decodedLen, err := blockLayout(src, cfg)
	if err != nil {
		return 0, err
	}
	if !dst.Growable() {
		avail, err := press.Available(dst)
		if err != nil {
			return 0, err
		}
		if int64(decodedLen) > avail {
			return 0, fmt.Errorf("press: need %d bytes but destination has %d available: %w",
				decodedLen, avail, press.ErrDestTooSmall)
		}
	}
	out, err := wlzo.Decompress(payload, wlzo.DefaultDecompressOptions(decodedLen))
	if err != nil {
		return 0, &press.DecompressionError{Codec: "lzo", Err: err}
	}
	return dst.Write(out)
}

func blockLayout(src []byte, cfg blockOptions) ([]byte, int, error) {
	if cfg.decodedLen >= 0 {
		return src, cfg.decodedLen, nil
	}
	if len(src) < storeSizeLen {
		return nil, 0, &press.DecompressionError{Codec: "lzo",
			Err: fmt.Errorf("input of %d bytes too short for a stored-size prefix", len(src))}
	}
	return src[storeSizeLen:], int(binary.LittleEndian.Uint32(src)), nil
}
