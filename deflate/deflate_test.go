package deflate

import (
	"bytes"
	"compress/flate"
	"io"
	"testing"
)

func TestCodec_Name(t *testing.T) {
	c := New()
	if got := c.Name(); got != "deflate" {
		t.Errorf("Name() = %q, want %q", got, "deflate")
	}
}

func TestRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("raw deflate, no container. "), 150)

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

// The output must be raw DEFLATE, readable without any zlib or gzip
// container handling.
func TestOutputIsRawDeflate(t *testing.T) {
	original := []byte("interoperable raw stream")
	compressed, err := Compress(bytes.NewReader(original))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	r := flate.NewReader(bytes.NewReader(compressed.Bytes()))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	r.Close()
	if !bytes.Equal(got, original) {
		t.Errorf("raw flate decode = %q, want %q", got, original)
	}
}
