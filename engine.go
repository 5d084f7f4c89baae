package press

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bytepress/press/internal/stats"
)

// Compress one-shot compresses everything readable from src and returns
// an owned Buffer holding the result, cursor at the start. WithOutputLen
// pre-sizes the buffer for a single allocation.
func Compress(c Codec, src io.Reader, opts ...Option) (*Buffer, error) {
	cfg := buildOptions(opts)
	dst := cfg.newOneShotBuffer()
	if _, err := compressInto(c, src, dst, cfg); err != nil {
		return nil, err
	}
	dst.pos = 0
	return dst, nil
}

// Decompress one-shot decompresses everything readable from src and
// returns an owned Buffer holding the result, cursor at the start. If
// WithOutputLen is supplied the destination is pre-sized exactly;
// otherwise it grows as needed.
func Decompress(c Codec, src io.Reader, opts ...Option) (*Buffer, error) {
	cfg := buildOptions(opts)
	dst := cfg.newOneShotBuffer()
	if _, err := decompressInto(c, src, dst, cfg); err != nil {
		return nil, err
	}
	dst.pos = 0
	return dst, nil
}

// CompressInto compresses src into the caller-supplied destination and
// returns the number of bytes produced. A growable destination is
// extended as output arrives; a fixed-capacity one is validated and
// written atomically, failing with the required and available sizes if
// it cannot hold the result.
func CompressInto(c Codec, src io.Reader, dst Stream, opts ...Option) (int64, error) {
	return compressInto(c, src, dst, buildOptions(opts))
}

// DecompressInto decompresses src into the caller-supplied destination
// and returns the number of bytes produced, with the same capacity
// negotiation as CompressInto.
func DecompressInto(c Codec, src io.Reader, dst Stream, opts ...Option) (int64, error) {
	return decompressInto(c, src, dst, buildOptions(opts))
}

// newOneShotBuffer allocates the destination for a one-shot call.
func (o options) newOneShotBuffer() *Buffer {
	if o.hasOutput {
		return NewBufferLen(int(o.outputLen))
	}
	return NewBuffer(nil)
}

func compressInto(c Codec, src io.Reader, dst Stream, cfg options) (int64, error) {
	produce := func(w io.Writer) (int64, int64, error) {
		return encode(c, w, src, cfg.levelFor(c))
	}
	in, out, err := negotiate(dst, produce)
	if err != nil {
		return 0, err
	}

	cfg.stats.IncCounter(stats.MetricCompressions, 1)
	cfg.stats.IncCounter(stats.MetricBytesIn, in)
	cfg.stats.IncCounter(stats.MetricBytesOut, out)
	if in > 0 {
		cfg.stats.ObserveHistogram(stats.MetricRatio, float64(out)/float64(in))
	}
	cfg.logger.Debug("compressed",
		zap.String("codec", c.Name()),
		zap.Int64("bytesIn", in),
		zap.Int64("bytesOut", out),
	)
	return out, nil
}

func decompressInto(c Codec, src io.Reader, dst Stream, cfg options) (int64, error) {
	produce := func(w io.Writer) (int64, int64, error) {
		return decode(c, w, src)
	}
	in, out, err := negotiate(dst, produce)
	if err != nil {
		return 0, err
	}

	cfg.stats.IncCounter(stats.MetricDecompressions, 1)
	cfg.stats.IncCounter(stats.MetricBytesIn, in)
	cfg.stats.IncCounter(stats.MetricBytesOut, out)
	cfg.logger.Debug("decompressed",
		zap.String("codec", c.Name()),
		zap.Int64("bytesIn", in),
		zap.Int64("bytesOut", out),
	)
	return out, nil
}

// negotiate runs produce against dst, honoring its capacity capability.
// A growable destination receives output directly. A fixed-capacity one
// is never partially written: output lands in a scratch buffer first,
// the required size is validated against the available capacity, and the
// result is committed in one write or rejected with both sizes stated.
func negotiate(dst Stream, produce func(io.Writer) (int64, int64, error)) (in, out int64, err error) {
	if dst.Growable() {
		return produce(dst)
	}

	scratch := NewBuffer(nil)
	in, out, err = produce(scratch)
	if err != nil {
		return 0, 0, err
	}

	avail, err := Available(dst)
	if err != nil {
		return 0, 0, err
	}
	if out > avail {
		return 0, 0, fmt.Errorf("press: need %d bytes but destination has %d available: %w",
			out, avail, ErrDestTooSmall)
	}
	if _, err := dst.Write(scratch.Bytes()); err != nil {
		return 0, 0, err
	}
	return in, out, nil
}

// encode streams src through c's writer into w. Returns bytes consumed
// and bytes produced.
func encode(c Codec, w io.Writer, src io.Reader, level int) (int64, int64, error) {
	cw := &countingWriter{w: w}
	enc, err := c.NewWriter(cw, level)
	if err != nil {
		return 0, 0, &CompressionError{Codec: c.Name(), Err: err}
	}
	in, err := io.Copy(enc, src)
	if err != nil {
		enc.Close()
		return 0, 0, &CompressionError{Codec: c.Name(), Err: err}
	}
	if err := enc.Close(); err != nil {
		return 0, 0, &CompressionError{Codec: c.Name(), Err: err}
	}
	return in, cw.n, nil
}

// decode streams src through c's reader into w. Returns bytes produced
// on both counters' behalf: consumed input is whatever the codec read.
func decode(c Codec, w io.Writer, src io.Reader) (int64, int64, error) {
	cr := &countingReader{r: src}
	dec, err := c.NewReader(cr)
	if err != nil {
		return 0, 0, &DecompressionError{Codec: c.Name(), Err: err}
	}
	out, err := io.Copy(w, dec)
	if err != nil {
		dec.Close()
		return 0, 0, &DecompressionError{Codec: c.Name(), Err: err}
	}
	if err := dec.Close(); err != nil {
		return 0, 0, &DecompressionError{Codec: c.Name(), Err: err}
	}
	return cr.n, out, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
