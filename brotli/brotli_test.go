package brotli

import (
	"bytes"
	"testing"

	"github.com/bytepress/press"
)

func TestCodec_Name(t *testing.T) {
	c := New()
	if got := c.Name(); got != "brotli" {
		t.Errorf("Name() = %q, want %q", got, "brotli")
	}
	if got := c.DefaultLevel(); got != 11 {
		t.Errorf("DefaultLevel() = %d, want 11", got)
	}
}

func TestRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("brotli round trip data. "), 200)

	compressed, err := Compress(bytes.NewReader(original))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if len(compressed.Bytes()) >= len(original) {
		t.Errorf("expected compression, got %d bytes from %d", len(compressed.Bytes()), len(original))
	}

	decompressed, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), original) {
		t.Error("round trip mismatch")
	}
}

func TestRoundTrip_FastLevel(t *testing.T) {
	original := bytes.Repeat([]byte("speed over ratio "), 100)

	compressed, err := Compress(bytes.NewReader(original), press.WithLevel(1))
	if err != nil {
		t.Fatalf("Compress(level 1) error = %v", err)
	}
	decompressed, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), original) {
		t.Error("round trip mismatch")
	}
}
