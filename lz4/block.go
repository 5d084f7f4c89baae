package lz4

import (
	"encoding/binary"
	"fmt"
	"math"

	plz4 "github.com/pierrec/lz4/v4"

	"github.com/bytepress/press"
)

// storeSizeLen is the little-endian uint32 prefix recording the
// decompressed size, python-lz4 block compatible.
const storeSizeLen = 4

// BlockOption configures the block-format functions.
type BlockOption interface {
	applyBlock(*blockOptions)
}

type blockOptions struct {
	storeSize  bool
	hcLevel    int
	decodedLen int
}

func defaultBlockOptions() blockOptions {
	return blockOptions{storeSize: true, decodedLen: -1}
}

type blockOptionFunc func(*blockOptions)

// Compile-time check that blockOptionFunc implements BlockOption.
var _ BlockOption = blockOptionFunc(nil)

func (f blockOptionFunc) applyBlock(o *blockOptions) { f(o) }

// WithStoreSize controls the size prefix. Enabled by default: the
// decompressed length is prepended as 4 little-endian bytes so
// DecompressBlock needs no explicit output length.
func WithStoreSize(store bool) BlockOption {
	return blockOptionFunc(func(o *blockOptions) { o.storeSize = store })
}

// WithHighCompression selects the high-compression block encoder at the
// given level (1..9 meaningful).
func WithHighCompression(level int) BlockOption {
	return blockOptionFunc(func(o *blockOptions) { o.hcLevel = level })
}

// WithDecodedLen states the decompressed size of a block explicitly, for
// data compressed without a stored size.
func WithDecodedLen(n int) BlockOption {
	return blockOptionFunc(func(o *blockOptions) { o.decodedLen = n })
}

func buildBlockOptions(opts []BlockOption) blockOptions {
	cfg := defaultBlockOptions()
	for _, opt := range opts {
		opt.applyBlock(&cfg)
	}
	return cfg
}

// CompressBlockBound returns a buffer size guaranteed to hold any block
// compression of srcLen input bytes, size prefix included.
func CompressBlockBound(srcLen int) int {
	return plz4.CompressBlockBound(srcLen) + storeSizeLen
}

// CompressBlock compresses src as a single LZ4 block. With the default
// stored size, output is a 4-byte little-endian length prefix followed by
// the encoded payload; WithStoreSize(false) drops the prefix.
func CompressBlock(src []byte, opts ...BlockOption) ([]byte, error) {
	cfg := buildBlockOptions(opts)

	var prefix uint32
	if cfg.storeSize {
		var err error
		if prefix, err = storedSize(len(src)); err != nil {
			return nil, &press.CompressionError{Codec: "lz4", Err: err}
		}
	}
	payload, err := compressBlockPayload(src, cfg)
	if err != nil {
		return nil, err
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

func compressBlockPayload(src []byte, cfg blockOptions) ([]byte, error) {
	buf := make([]byte, plz4.CompressBlockBound(len(src)))

	var (
		n   int
		err error
	)
	if cfg.hcLevel > 0 {
		c := plz4.CompressorHC{Level: compressionLevel(cfg.hcLevel)}
		n, err = c.CompressBlock(src, buf)
	} else {
		var c plz4.Compressor
		n, err = c.CompressBlock(src, buf)
	}
	if err != nil {
		return nil, &press.CompressionError{Codec: "lz4", Err: err}
	}
	if n == 0 {
		// Incompressible input: the backend gives up rather than expand.
		// A literal-only block is always a valid encoding.
		return literalBlock(src), nil
	}
	return buf[:n], nil
}

// literalBlock encodes src as one LZ4 sequence of pure literals.
func literalBlock(src []byte) []byte {
	n := len(src)
	out := make([]byte, 0, n+n/255+2)
	if n < 15 {
		out = append(out, byte(n)<<4)
	} else {
		out = append(out, 0xF0)
		for rest := n - 15; ; rest -= 255 {
			if rest < 255 {
				out = append(out, byte(rest))
				break
			}
			out = append(out, 255)
		}
	}
	return append(out, src...)
}

// DecompressBlock decompresses a single LZ4 block. Without an explicit
// WithDecodedLen the input is assumed to carry a stored-size prefix.
func DecompressBlock(src []byte, opts ...BlockOption) ([]byte, error) {
	cfg := buildBlockOptions(opts)

	payload, decodedLen, err := blockLayout(src, cfg)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, decodedLen)
	n, err := plz4.UncompressBlock(payload, buf)
	if err != nil {
		return nil, &press.DecompressionError{Codec: "lz4", Err: err}
	}
	return buf[:n], nil
}

// DecompressBlockInto decompresses a single LZ4 block into dst,
// validating fixed-capacity destinations against the known decompressed
// size up front. When the assumed size-prefix layout fails to decode,
// the opposite assumption is tried before reporting the original error.
func DecompressBlockInto(src []byte, dst press.Stream, opts ...BlockOption) (int, error) {
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

	buf := make([]byte, decodedLen)
	n, err := plz4.UncompressBlock(payload, buf)
	if err != nil {
		// The caller may have the stored-size assumption backwards; try
		// the inverse layout, keeping the original error if it fails too.
		inv := cfg
		if cfg.decodedLen >= 0 {
			inv.decodedLen = -1
		} else {
			inv.decodedLen = decodedLen
		}
		if p2, l2, err2 := blockLayout(src, inv); err2 == nil {
			b2 := make([]byte, l2)
			if n2, err2 := plz4.UncompressBlock(p2, b2); err2 == nil {
				return dst.Write(b2[:n2])
			}
		}
		return 0, &press.DecompressionError{Codec: "lz4", Err: err}
	}
	return dst.Write(buf[:n])
}

// blockLayout resolves the payload slice and decompressed length from
// either the explicit decoded length or the stored-size prefix.
func blockLayout(src []byte, cfg blockOptions) ([]byte, int, error) {
	if cfg.decodedLen >= 0 {
		return src, cfg.decodedLen, nil
	}
	if len(src) < storeSizeLen {
		return nil, 0, &press.DecompressionError{Codec: "lz4",
			Err: fmt.Errorf("input of %d bytes too short for a stored-size prefix", len(src))}
	}
	return src[storeSizeLen:], int(binary.LittleEndian.Uint32(src)), nil
}
