package press

import "io"

// Stream is the seekable read/write contract shared by Buffer, File and
// View. Reads return up to the requested count from the cursor and clamp
// silently at the end of data (io.EOF, never a failure). Writes start at
// the cursor; owning streams grow as needed, non-owning streams reject
// writes past the current backing length.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker

	// Tell reports the current cursor position.
	Tell() int64

	// Len reports the total length of the underlying data. It is derived
	// live on every call; it is never cached.
	Len() (int64, error)

	// SetLen resizes the underlying data, zero-filling on growth and
	// clamping the cursor on shrink. Fails on non-owning streams.
	SetLen(n int64) error

	// Truncate is shorthand for SetLen(Tell()).
	Truncate() error

	// Growable reports whether writes may extend the underlying data.
	// The output negotiator uses this to pick between dynamic growth and
	// fixed-capacity validation.
	Growable() bool
}

// Available reports how many bytes may be written to s from its current
// cursor before hitting the end of its underlying data.
func Available(s Stream) (int64, error) {
	n, err := s.Len()
	if err != nil {
		return 0, err
	}
	avail := n - s.Tell()
	if avail < 0 {
		avail = 0
	}
	return avail, nil
}
