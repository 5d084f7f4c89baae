package lz4

import (
	"bytes"
	"testing"

	"github.com/bytepress/press"
)

func TestCodec_Name(t *testing.T) {
	c := New()
	if got := c.Name(); got != "lz4" {
		t.Errorf("Name() = %q, want %q", got, "lz4")
	}
	if got := c.DefaultLevel(); got != 4 {
		t.Errorf("DefaultLevel() = %d, want 4", got)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("lz4 frame format. "), 200)

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

func TestFrameRoundTrip_Levels(t *testing.T) {
	original := bytes.Repeat([]byte("level sweep for lz4 "), 200)
	for _, level := range []int{1, 4, 9, 12} {
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
