package press

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestView_Read(t *testing.T) {
	b := NewBuffer([]byte("hello world"))
	v := NewView(b)
	defer v.Close()

	got, err := io.ReadAll(v)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("ReadAll() = %q, want %q", got, "hello world")
	}
}

func TestView_WriteInPlace(t *testing.T) {
	b := NewBuffer([]byte("hello world"))
	v := NewView(b)
	defer v.Close()

	if _, err := v.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if _, err := v.Write([]byte("earth")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if string(b.Bytes()) != "hello earth" {
		t.Errorf("backing = %q, want %q", b.Bytes(), "hello earth")
	}
}

func TestView_WriteOverflowRejectedAtomically(t *testing.T) {
	b := NewBuffer([]byte("hello"))
	v := NewView(b)
	defer v.Close()

	if _, err := v.Seek(3, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	n, err := v.Write([]byte("abcdef"))
	if !errors.Is(err, ErrViewWrite) {
		t.Fatalf("Write() error = %v, want ErrViewWrite", err)
	}
	if n != 0 {
		t.Errorf("Write() n = %d, want 0", n)
	}
	// Nothing committed, not even the part that would have fit.
	if string(b.Bytes()) != "hello" {
		t.Errorf("backing = %q, want %q untouched", b.Bytes(), "hello")
	}
}

func TestView_WriteExactFit(t *testing.T) {
	b := NewBuffer([]byte("hello"))
	v := NewView(b)
	defer v.Close()

	if _, err := v.Write([]byte("world")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if string(b.Bytes()) != "world" {
		t.Errorf("backing = %q, want %q", b.Bytes(), "world")
	}
}

func TestView_TracksBackingLength(t *testing.T) {
	b := NewBuffer(nil)
	v := NewView(b)
	defer v.Close()

	if _, err := b.Write([]byte("grown")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	n, err := v.Len()
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if n != 5 {
		t.Errorf("Len() = %d, want 5", n)
	}
}

func TestView_CursorClampsOnShrink(t *testing.T) {
	b := NewBuffer([]byte("hello world"))
	v := NewView(b)
	defer v.Close()

	if _, err := v.Seek(0, io.SeekEnd); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if err := b.SetLen(5); err != nil {
		t.Fatalf("SetLen() error = %v", err)
	}
	if got := v.Tell(); got != 5 {
		t.Errorf("Tell() after backing shrink = %d, want 5", got)
	}
}

func TestView_SeekBounds(t *testing.T) {
	v := NewViewBytes([]byte("hello"))
	defer v.Close()

	if _, err := v.Seek(6, io.SeekStart); !errors.Is(err, ErrSeekOutOfBounds) {
		t.Errorf("Seek(6, Start) error = %v, want ErrSeekOutOfBounds", err)
	}
	pos, err := v.Seek(5, io.SeekStart)
	if err != nil {
		t.Fatalf("Seek(5, Start) error = %v", err)
	}
	if pos != 5 {
		t.Errorf("Seek(5, Start) = %d, want 5", pos)
	}
}

func TestView_ResizeDenied(t *testing.T) {
	v := NewViewBytes([]byte("hello"))
	defer v.Close()

	if err := v.SetLen(2); !errors.Is(err, ErrViewResize) {
		t.Errorf("SetLen() error = %v, want ErrViewResize", err)
	}
	if err := v.Truncate(); !errors.Is(err, ErrViewResize) {
		t.Errorf("Truncate() error = %v, want ErrViewResize", err)
	}
}

func TestView_Refs(t *testing.T) {
	b := NewBuffer([]byte("data"))
	if b.Refs() != 0 {
		t.Fatalf("Refs() = %d, want 0", b.Refs())
	}

	v1 := NewView(b)
	v2 := NewView(b)
	if b.Refs() != 2 {
		t.Errorf("Refs() with two views = %d, want 2", b.Refs())
	}

	if err := v1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := v1.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if b.Refs() != 1 {
		t.Errorf("Refs() after idempotent close = %d, want 1", b.Refs())
	}
	v2.Close()
}

func TestView_ClosedUseFails(t *testing.T) {
	v := NewView(NewBuffer([]byte("data")))
	v.Close()

	if _, err := v.Read(make([]byte, 1)); !errors.Is(err, ErrViewClosed) {
		t.Errorf("Read() after Close error = %v, want ErrViewClosed", err)
	}
	if _, err := v.Write([]byte("x")); !errors.Is(err, ErrViewClosed) {
		t.Errorf("Write() after Close error = %v, want ErrViewClosed", err)
	}
}

func TestViewOf(t *testing.T) {
	// Copying view over a string is legal and owns its memory.
	v, err := ViewOf("hello", true)
	if err != nil {
		t.Fatalf("ViewOf(string, copy) error = %v", err)
	}
	if !v.Growable() {
		t.Error("copying view Growable() = false, want true")
	}
	got, err := io.ReadAll(v)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadAll() = %q, want %q", got, "hello")
	}

	// Zero-copy over a string is unsound.
	if _, err := ViewOf("hello", false); !errors.Is(err, ErrZeroCopyUnsupported) {
		t.Errorf("ViewOf(string, zero-copy) error = %v, want ErrZeroCopyUnsupported", err)
	}

	// Zero-copy over a slice aliases it.
	p := []byte("hello")
	v2, err := ViewOf(p, false)
	if err != nil {
		t.Fatalf("ViewOf([]byte, zero-copy) error = %v", err)
	}
	if _, err := v2.Write([]byte("HELLO")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !bytes.Equal(p, []byte("HELLO")) {
		t.Errorf("aliased slice = %q, want %q", p, "HELLO")
	}
}

func TestViewOf_CopyDoesNotAlias(t *testing.T) {
	p := []byte("hello")
	v, err := ViewOf(p, true)
	if err != nil {
		t.Fatalf("ViewOf() error = %v", err)
	}
	if _, err := v.Write([]byte("xxxxx")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if string(p) != "hello" {
		t.Errorf("source slice = %q, want %q untouched", p, "hello")
	}
}
