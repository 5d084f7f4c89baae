package press

import (
	"bytes"
	"errors"
	"io"

	"github.com/bytepress/press/internal/stats"
)

// streamState tracks the lifecycle of a streaming session:
// idle until the first chunk, streaming until Finish seals it.
type streamState int

const (
	stateIdle streamState = iota
	stateStreaming
	stateFinished
)

// Compressor incrementally compresses chunks fed to it. Output
// accumulates internally and is handed back by Flush and Finish. A
// Compressor is a single-caller session: it must not be shared across
// concurrent goroutines.
type Compressor struct {
	codec Codec
	sink  *Buffer
	w     io.WriteCloser
	state streamState
	stats stats.Collector
}

// NewCompressor returns a streaming Compressor for the given codec.
func NewCompressor(c Codec, opts ...Option) (*Compressor, error) {
	cfg := buildOptions(opts)
	sink := NewBuffer(nil)
	w, err := c.NewWriter(sink, cfg.levelFor(c))
	if err != nil {
		return nil, &CompressionError{Codec: c.Name(), Err: err}
	}
	return &Compressor{codec: c, sink: sink, w: w, stats: cfg.stats}, nil
}

// Compress feeds a chunk into the session and returns the number of
// bytes consumed. Fails once the session is finished.
func (c *Compressor) Compress(p []byte) (int, error) {
	if c.state == stateFinished {
		return 0, &CompressionError{Codec: c.codec.Name(), Err: ErrFinished}
	}
	c.state = stateStreaming
	n, err := c.w.Write(p)
	if err != nil {
		return n, &CompressionError{Codec: c.codec.Name(), Err: err}
	}
	c.stats.IncCounter(stats.MetricBytesIn, int64(n))
	return n, nil
}

// Flush forces the codec to emit buffered output without closing the
// stream; further chunks may follow. The returned Buffer may be empty.
// Flush after Finish returns an empty Buffer.
func (c *Compressor) Flush() (*Buffer, error) {
	if c.state == stateFinished {
		return NewBuffer(nil), nil
	}
	if f, ok := c.w.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return nil, &CompressionError{Codec: c.codec.Name(), Err: err}
		}
	}
	return c.drain(), nil
}

// Finish seals the stream and returns any final output. Calling Finish
// again returns an empty Buffer, never an error.
func (c *Compressor) Finish() (*Buffer, error) {
	if c.state == stateFinished {
		return NewBuffer(nil), nil
	}
	c.state = stateFinished
	if err := c.w.Close(); err != nil {
		return nil, &CompressionError{Codec: c.codec.Name(), Err: err}
	}
	c.stats.IncCounter(stats.MetricCompressions, 1)
	return c.drain(), nil
}

// drain hands the accumulated output to the caller and resets the sink
// so the codec writer keeps appending from a clean slate.
func (c *Compressor) drain() *Buffer {
	out := &Buffer{data: c.sink.data}
	c.stats.IncCounter(stats.MetricBytesOut, int64(len(out.data)))
	c.sink.data = nil
	c.sink.pos = 0
	return out
}

// Decompressor incrementally decompresses chunks fed to it. Input
// accumulates until Flush or Finish decodes it. A Decompressor is a
// single-caller session: it must not be shared across concurrent
// goroutines.
type Decompressor struct {
	codec Codec
	in    *Buffer
	state streamState
	stats stats.Collector
}

// NewDecompressor returns a streaming Decompressor for the given codec.
func NewDecompressor(c Codec, opts ...Option) *Decompressor {
	cfg := buildOptions(opts)
	return &Decompressor{codec: c, in: NewBuffer(nil), stats: cfg.stats}
}

// Decompress feeds a chunk of compressed input into the session and
// returns the number of bytes consumed. Fails once the session is
// finished.
func (d *Decompressor) Decompress(p []byte) (int, error) {
	if d.state == stateFinished {
		return 0, &DecompressionError{Codec: d.codec.Name(), Err: ErrFinished}
	}
	d.state = stateStreaming
	n, err := d.in.Write(p)
	if err != nil {
		return n, &DecompressionError{Codec: d.codec.Name(), Err: err}
	}
	d.stats.IncCounter(stats.MetricBytesIn, int64(n))
	return n, nil
}

// Flush decodes the input accumulated so far and returns the plaintext.
// If the buffered input ends mid-frame, Flush returns an empty Buffer
// and retains the input for a later call; truncation only becomes an
// error at Finish.
func (d *Decompressor) Flush() (*Buffer, error) {
	if d.state == stateFinished {
		return nil, &DecompressionError{Codec: d.codec.Name(), Err: ErrFinished}
	}
	return d.decodeBuffered(false)
}

// Finish seals the stream, decoding and returning any remaining output.
// A second Finish fails: a decompressor signals exhaustion rather than
// quietly repeating it.
func (d *Decompressor) Finish() (*Buffer, error) {
	if d.state == stateFinished {
		return nil, &DecompressionError{Codec: d.codec.Name(), Err: ErrFinished}
	}
	d.state = stateFinished
	out, err := d.decodeBuffered(true)
	if err != nil {
		return nil, err
	}
	d.stats.IncCounter(stats.MetricDecompressions, 1)
	return out, nil
}

func (d *Decompressor) decodeBuffered(final bool) (*Buffer, error) {
	data := d.in.Bytes()
	if len(data) == 0 {
		return NewBuffer(nil), nil
	}

	out := NewBuffer(nil)
	dec, err := d.codec.NewReader(bytes.NewReader(data))
	if err != nil {
		if !final && truncated(err) {
			return NewBuffer(nil), nil
		}
		return nil, &DecompressionError{Codec: d.codec.Name(), Err: err}
	}
	if _, err := io.Copy(out, dec); err != nil {
		dec.Close()
		if !final && truncated(err) {
			return NewBuffer(nil), nil
		}
		return nil, &DecompressionError{Codec: d.codec.Name(), Err: err}
	}
	if err := dec.Close(); err != nil {
		return nil, &DecompressionError{Codec: d.codec.Name(), Err: err}
	}

	d.in = NewBuffer(nil)
	d.stats.IncCounter(stats.MetricBytesOut, int64(len(out.data)))
	out.pos = 0
	return out, nil
}

// truncated reports whether err looks like input cut off mid-frame, as
// opposed to malformed data.
func truncated(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
