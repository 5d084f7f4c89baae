package press

import (
	"fmt"
	"io"
)

// Compile-time check that View implements Stream.
var _ Stream = (*View)(nil)

// View is a window onto byte memory owned by someone else. In its
// zero-copy mode it aliases the backing memory directly and keeps its own
// cursor: its length is re-derived from the backing memory on every
// operation, writes may never extend the backing memory, and resizing is
// the owner's privilege alone. Constructed with copying enabled it owns a
// private duplicate and behaves exactly like a Buffer.
//
// The Go runtime keeps the backing array alive while any View references
// it; the alias count recorded on a backing Buffer exists so owners can
// observe outstanding shares, not to arbitrate concurrent writers.
type View struct {
	owned   *Buffer // non-nil in copying mode; delegate everything
	backing *Buffer // aliased Buffer; length tracked live
	raw     []byte  // aliased foreign slice; fixed extent
	pos     int64
	closed  bool
}

// NewView returns a zero-copy View aliasing b. The View observes length
// changes made through b in real time. Release the alias with Close.
func NewView(b *Buffer) *View {
	b.views.Add(1)
	return &View{backing: b}
}

// NewViewBytes returns a zero-copy View aliasing the caller-owned slice p.
// The extent is fixed: the View cannot observe growth of the caller's
// slice, and writes past len(p) fail.
func NewViewBytes(p []byte) *View {
	return &View{raw: p}
}

// ViewOf constructs a View over src, which may be a *Buffer, []byte or
// string. With copy=true the bytes are duplicated and the View owns them.
// With copy=false the View aliases src directly; a string source fails
// with ErrZeroCopyUnsupported since strings are immutable and zero-copy
// mutation over immutable memory is unsound.
func ViewOf(src any, copy bool) (*View, error) {
	switch s := src.(type) {
	case *Buffer:
		if copy {
			return &View{owned: NewBuffer(s.data)}, nil
		}
		return NewView(s), nil
	case []byte:
		if copy {
			return &View{owned: NewBuffer(s)}, nil
		}
		return NewViewBytes(s), nil
	case string:
		if copy {
			return &View{owned: NewBuffer([]byte(s))}, nil
		}
		return nil, fmt.Errorf("string source is immutable: %w", ErrZeroCopyUnsupported)
	default:
		return nil, fmt.Errorf("cannot view %T: %w", src, ErrZeroCopyUnsupported)
	}
}

// Close releases the View's alias on its backing memory. Further use of
// the View fails. Close is idempotent.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	if v.backing != nil {
		v.backing.views.Add(-1)
	}
	return nil
}

// Refs reports the number of live aliases on the backing memory, the View
// itself included. A copying View owns its memory and reports 0.
func (v *View) Refs() int {
	if v.backing != nil {
		return v.backing.Refs()
	}
	if v.owned != nil {
		return 0
	}
	return 1
}

// bytes re-derives the current backing region. Never cached.
func (v *View) bytes() []byte {
	if v.backing != nil {
		return v.backing.data
	}
	return v.raw
}

// clamp pulls the cursor back inside a backing region that shrank since
// the last operation.
func (v *View) clamp() {
	if n := int64(len(v.bytes())); v.pos > n {
		v.pos = n
	}
}

// Read copies up to len(p) bytes from the cursor; reading past the end
// truncates silently to the available bytes, matching Buffer and File.
func (v *View) Read(p []byte) (int, error) {
	if v.owned != nil {
		return v.owned.Read(p)
	}
	if v.closed {
		return 0, ErrViewClosed
	}
	v.clamp()
	data := v.bytes()
	if v.pos >= int64(len(data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, data[v.pos:])
	v.pos += int64(n)
	return n, nil
}

// Write copies p into the backing memory at the cursor. A write that
// would extend past the current backing length is rejected atomically:
// nothing is committed and the backing memory is left exactly as before.
func (v *View) Write(p []byte) (int, error) {
	if v.owned != nil {
		return v.owned.Write(p)
	}
	if v.closed {
		return 0, ErrViewClosed
	}
	v.clamp()
	data := v.bytes()
	if int64(len(p)) > int64(len(data))-v.pos {
		return 0, fmt.Errorf("%d bytes into %d available: %w",
			len(p), int64(len(data))-v.pos, ErrViewWrite)
	}
	copy(data[v.pos:], p)
	v.pos += int64(len(p))
	return len(p), nil
}

// Seek moves the cursor. A non-owning View may seek anywhere within
// [0, Len()] regardless of pending writes, and nowhere outside it.
func (v *View) Seek(offset int64, whence int) (int64, error) {
	if v.owned != nil {
		return v.owned.Seek(offset, whence)
	}
	if v.closed {
		return 0, ErrViewClosed
	}
	v.clamp()
	length := int64(len(v.bytes()))
	pos, err := resolveSeek(offset, whence, v.pos, length)
	if err != nil {
		return 0, err
	}
	if pos > length {
		return 0, fmt.Errorf("position %d beyond length %d: %w", pos, length, ErrSeekOutOfBounds)
	}
	v.pos = pos
	return pos, nil
}

// Tell reports the current cursor position, clamped to the live backing
// length.
func (v *View) Tell() int64 {
	if v.owned != nil {
		return v.owned.Tell()
	}
	v.clamp()
	return v.pos
}

// Len reports the current length of the backing memory, re-derived on
// every call.
func (v *View) Len() (int64, error) {
	if v.owned != nil {
		return v.owned.Len()
	}
	if v.closed {
		return 0, ErrViewClosed
	}
	return int64(len(v.bytes())), nil
}

// SetLen fails on a non-owning View: only the owner may resize.
func (v *View) SetLen(n int64) error {
	if v.owned != nil {
		return v.owned.SetLen(n)
	}
	return ErrViewResize
}

// Truncate fails on a non-owning View: only the owner may resize.
func (v *View) Truncate() error {
	if v.owned != nil {
		return v.owned.Truncate()
	}
	return ErrViewResize
}

// Growable reports whether writes may extend the region; true only in
// copying mode.
func (v *View) Growable() bool { return v.owned != nil }
