package press

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Compile-time check that Buffer implements Stream.
var _ Stream = (*Buffer)(nil)

// Buffer is an owned, growable, in-memory byte store with a cursor.
// Writing past the current length grows the region; seeking past the end
// is legal and reads there simply return nothing. A Buffer is exclusively
// owned: no external aliasing is possible except through a View, which
// keeps the live alias count.
type Buffer struct {
	data  []byte
	pos   int64
	views atomic.Int32
}

// NewBuffer returns a Buffer pre-filled with a copy of data. A nil data
// yields an empty Buffer.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

// NewBufferLen returns a zero-filled Buffer of length n with the cursor at
// the start, for callers that know the output size and want a single
// allocation.
func NewBufferLen(n int) *Buffer {
	return &Buffer{data: make([]byte, n)}
}

// Bytes returns the underlying byte region. The slice is valid until the
// next mutating operation on the Buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// Read copies up to len(p) bytes from the cursor, advancing it by the
// count actually read. At end of data it returns io.EOF.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

// Write copies p into the buffer at the cursor, growing the region as
// needed, and advances the cursor. A cursor previously seeked past the
// end zero-fills the gap first.
func (b *Buffer) Write(p []byte) (int, error) {
	if gap := b.pos - int64(len(b.data)); gap > 0 {
		b.data = append(b.data, make([]byte, gap)...)
	}
	n := copy(b.data[b.pos:], p)
	if n < len(p) {
		b.data = append(b.data, p[n:]...)
	}
	b.pos += int64(len(p))
	return len(p), nil
}

// Seek moves the cursor. Any non-negative position is legal, including
// past the end of data.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	pos, err := resolveSeek(offset, whence, b.pos, int64(len(b.data)))
	if err != nil {
		return 0, err
	}
	b.pos = pos
	return pos, nil
}

// Tell reports the current cursor position.
func (b *Buffer) Tell() int64 { return b.pos }

// Len reports the current length of the byte region.
func (b *Buffer) Len() (int64, error) { return int64(len(b.data)), nil }

// SetLen resizes the region: growth zero-fills, shrink truncates silently
// and clamps the cursor to the new length.
func (b *Buffer) SetLen(n int64) error {
	if n < 0 {
		return fmt.Errorf("press: negative length %d", n)
	}
	cur := int64(len(b.data))
	switch {
	case n > cur:
		b.data = append(b.data, make([]byte, n-cur)...)
	case n < cur:
		b.data = b.data[:n]
		if b.pos > n {
			b.pos = n
		}
	}
	return nil
}

// Truncate discards everything past the cursor.
func (b *Buffer) Truncate() error { return b.SetLen(b.pos) }

// Growable reports true: a Buffer always grows on write.
func (b *Buffer) Growable() bool { return true }

// Refs reports the number of live Views aliasing this Buffer.
func (b *Buffer) Refs() int { return int(b.views.Load()) }

// resolveSeek computes the new cursor for an owning stream. Seeking past
// the end is legal; a negative result or unknown whence is not.
func resolveSeek(offset int64, whence int, cur, length int64) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = cur
	case io.SeekEnd:
		base = length
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWhence, whence)
	}
	pos := base + offset
	if pos < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSeek, pos)
	}
	return pos, nil
}
