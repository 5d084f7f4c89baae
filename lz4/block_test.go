package lz4

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/bytepress/press"
)

func TestCompressBlock_StoredSizePrefix(t *testing.T) {
	src := []byte("howdy neighbor")

	compressed, err := CompressBlock(src)
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}
	if len(compressed) < 4 {
		t.Fatalf("CompressBlock() = %d bytes, too short for a prefix", len(compressed))
	}
	if got := binary.LittleEndian.Uint32(compressed); got != uint32(len(src)) {
		t.Errorf("stored size = %d, want %d", got, len(src))
	}

	decompressed, err := DecompressBlock(compressed)
	if err != nil {
		t.Fatalf("DecompressBlock() error = %v", err)
	}
	if !bytes.Equal(decompressed, src) {
		t.Errorf("round trip = %q, want %q", decompressed, src)
	}
}

func TestCompressBlock_NoPrefix(t *testing.T) {
	src := bytes.Repeat([]byte("no prefix here "), 50)

	withPrefix, err := CompressBlock(src)
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}
	bare, err := CompressBlock(src, WithStoreSize(false))
	if err != nil {
		t.Fatalf("CompressBlock(WithStoreSize(false)) error = %v", err)
	}
	if len(bare) != len(withPrefix)-4 {
		t.Errorf("bare block = %d bytes, want %d", len(bare), len(withPrefix)-4)
	}

	// Without a prefix the decompressed size must be stated explicitly.
	decompressed, err := DecompressBlock(bare, WithDecodedLen(len(src)))
	if err != nil {
		t.Fatalf("DecompressBlock(WithDecodedLen) error = %v", err)
	}
	if !bytes.Equal(decompressed, src) {
		t.Error("round trip mismatch")
	}
}

func TestCompressBlock_HighCompression(t *testing.T) {
	src := bytes.Repeat([]byte("high compression mode "), 200)

	compressed, err := CompressBlock(src, WithHighCompression(9))
	if err != nil {
		t.Fatalf("CompressBlock(HC) error = %v", err)
	}
	decompressed, err := DecompressBlock(compressed)
	if err != nil {
		t.Fatalf("DecompressBlock() error = %v", err)
	}
	if !bytes.Equal(decompressed, src) {
		t.Error("HC round trip mismatch")
	}
}

func TestCompressBlock_Incompressible(t *testing.T) {
	// Short unique input defeats matching; the literal fallback must
	// still produce a decodable block.
	src := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	compressed, err := CompressBlock(src)
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}
	decompressed, err := DecompressBlock(compressed)
	if err != nil {
		t.Fatalf("DecompressBlock() error = %v", err)
	}
	if !bytes.Equal(decompressed, src) {
		t.Errorf("round trip = %v, want %v", decompressed, src)
	}
}

func TestCompressBlockBound(t *testing.T) {
	src := bytes.Repeat([]byte{0xff}, 1000)
	compressed, err := CompressBlock(src)
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}
	if bound := CompressBlockBound(len(src)); bound < len(compressed) {
		t.Errorf("CompressBlockBound(%d) = %d, below actual %d", len(src), bound, len(compressed))
	}
}

func TestDecompressBlockInto(t *testing.T) {
	src := bytes.Repeat([]byte("into fixed room "), 30)
	compressed, err := CompressBlock(src)
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}

	room := make([]byte, len(src))
	dst := press.NewViewBytes(room)
	defer dst.Close()

	n, err := DecompressBlockInto(compressed, dst)
	if err != nil {
		t.Fatalf("DecompressBlockInto() error = %v", err)
	}
	if n != len(src) {
		t.Errorf("DecompressBlockInto() = %d, want %d", n, len(src))
	}
	if !bytes.Equal(room, src) {
		t.Error("destination mismatch")
	}
}

func TestDecompressBlockInto_TooSmall(t *testing.T) {
	src := bytes.Repeat([]byte("too big for this "), 30)
	compressed, err := CompressBlock(src)
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}

	dst := press.NewViewBytes(make([]byte, 8))
	defer dst.Close()

	if _, err := DecompressBlockInto(compressed, dst); !errors.Is(err, press.ErrDestTooSmall) {
		t.Errorf("DecompressBlockInto() error = %v, want ErrDestTooSmall", err)
	}
}

func TestStoredSize_Limit(t *testing.T) {
	n, err := storedSize(14)
	if err != nil {
		t.Fatalf("storedSize(14) error = %v", err)
	}
	if n != 14 {
		t.Errorf("storedSize(14) = %d, want 14", n)
	}

	// The prefix format caps at uint32; larger inputs are rejected
	// rather than silently truncated.
	if _, err := storedSize(math.MaxUint32 + 1); err == nil {
		t.Error("storedSize(MaxUint32+1) expected error, got nil")
	}
}

func TestDecompressBlock_TruncatedPrefix(t *testing.T) {
	if _, err := DecompressBlock([]byte{0x01, 0x02}); err == nil {
		t.Error("DecompressBlock() of 2 bytes expected error, got nil")
	}
}
