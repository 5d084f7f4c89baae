package press

import (
	"errors"
	"fmt"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrInvalidWhence indicates a seek whence outside io.SeekStart,
	// io.SeekCurrent and io.SeekEnd.
	ErrInvalidWhence = errors.New("press: whence must be io.SeekStart, io.SeekCurrent or io.SeekEnd")

	// ErrNegativeSeek indicates a seek that would place the cursor before
	// the start of the stream.
	ErrNegativeSeek = errors.New("press: seek to negative position")

	// ErrSeekOutOfBounds indicates a seek outside the bounds of a
	// non-owning view.
	ErrSeekOutOfBounds = errors.New("press: seek out of bounds of unowned view")

	// ErrViewWrite indicates a write that would extend past the backing
	// memory of a non-owning view.
	ErrViewWrite = errors.New("press: too much to write on unowned view")

	// ErrViewResize indicates a SetLen or Truncate on a non-owning view;
	// only the owner of the backing memory may resize it.
	ErrViewResize = errors.New("press: cannot resize unowned view")

	// ErrViewClosed indicates use of a view after Close released its alias.
	ErrViewClosed = errors.New("press: view closed")

	// ErrFinished indicates use of a Compressor or Decompressor after
	// Finish sealed the stream.
	ErrFinished = errors.New("press: stream already finished")

	// ErrDestTooSmall indicates a fixed-capacity destination without room
	// for the produced output. The wrapping error states the required and
	// available sizes.
	ErrDestTooSmall = errors.New("press: destination too small")

	// ErrZeroCopyUnsupported indicates a zero-copy view requested over a
	// source whose aliasing safety cannot be guaranteed.
	ErrZeroCopyUnsupported = errors.New("press: zero-copy view not supported for this source")
)

// CompressionError reports a failure in a codec's encode path, including
// use of a Compressor after Finish.
type CompressionError struct {
	Codec string
	Err   error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("press: %s compression: %v", e.Codec, e.Err)
}

func (e *CompressionError) Unwrap() error { return e.Err }

// DecompressionError reports a failure in a codec's decode path: malformed
// input, an undiscoverable output length, or use of a Decompressor after
// Finish. Malformed input is permanent; nothing is retried.
type DecompressionError struct {
	Codec string
	Err   error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("press: %s decompression: %v", e.Codec, e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }
