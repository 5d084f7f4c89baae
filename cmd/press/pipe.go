package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bytepress/press/internal/gcsio"
)

// openInput resolves the --input flag. An empty path means stdin, and
// gs:// paths are read from Cloud Storage.
func openInput(ctx context.Context, path string) (io.ReadCloser, error) {
	switch {
	case path == "":
		return io.NopCloser(os.Stdin), nil
	case gcsio.IsGCSPath(path):
		return gcsio.Open(ctx, path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	}
}

// openOutput resolves the --output flag. An empty path means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// countWriter tracks how many bytes pass through to the wrapped writer.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
