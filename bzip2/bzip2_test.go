package bzip2

import (
	"bytes"
	"testing"

	"github.com/bytepress/press"
)

func TestCodec_Name(t *testing.T) {
	c := New()
	if got := c.Name(); got != "bzip2" {
		t.Errorf("Name() = %q, want %q", got, "bzip2")
	}
	if got := c.DefaultLevel(); got != 6 {
		t.Errorf("DefaultLevel() = %d, want 6", got)
	}
}

func TestRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("burrows wheeler transform. "), 200)

	compressed, err := Compress(bytes.NewReader(original))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	decompressed, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), original) {
		t.Error("round trip mismatch")
	}
}

func TestRoundTrip_Levels(t *testing.T) {
	original := bytes.Repeat([]byte("block size sweep "), 200)
	for _, level := range []int{1, 6, 9} {
		compressed, err := Compress(bytes.NewReader(original), press.WithLevel(level))
		if err != nil {
			t.Fatalf("Compress(level %d) error = %v", level, err)
		}
		decompressed, err := Decompress(compressed)
		if err != nil {
			t.Fatalf("Decompress(level %d) error = %v", level, err)
		}
		if !bytes.Equal(decompressed.Bytes(), original) {
			t.Errorf("round trip mismatch at level %d", level)
		}
	}
}
