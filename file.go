package press

import (
	"fmt"
	"io"
	"os"
)

// Compile-time check that File implements Stream.
var _ Stream = (*File)(nil)

// File is a filesystem-backed Stream. Its length reflects the underlying
// file size and is re-queried on every Len call, since external processes
// may resize the file. The handle is released by Close.
type File struct {
	path   string
	f      *os.File
	pos    int64
	append bool
}

// FileOption configures how OpenFile opens the underlying file.
type FileOption interface {
	applyFile(*fileOptions)
}

type fileOptions struct {
	readOnly bool
	truncate bool
	append   bool
}

type fileOptionFunc func(*fileOptions)

// Compile-time check that fileOptionFunc implements FileOption.
var _ FileOption = fileOptionFunc(nil)

func (f fileOptionFunc) applyFile(o *fileOptions) { f(o) }

// WithReadOnly opens the file for reading only; it must already exist.
func WithReadOnly() FileOption {
	return fileOptionFunc(func(o *fileOptions) { o.readOnly = true })
}

// WithTruncate discards existing contents on open.
func WithTruncate() FileOption {
	return fileOptionFunc(func(o *fileOptions) { o.truncate = true })
}

// WithAppend positions every write at the end of the file.
func WithAppend() FileOption {
	return fileOptionFunc(func(o *fileOptions) { o.append = true })
}

// OpenFile opens path as a Stream, creating the file if it does not exist.
// The default mode is read-write without truncation.
func OpenFile(path string, opts ...FileOption) (*File, error) {
	var cfg fileOptions
	for _, opt := range opts {
		opt.applyFile(&cfg)
	}

	flag := os.O_RDWR | os.O_CREATE
	if cfg.readOnly {
		flag = os.O_RDONLY
	}
	if cfg.truncate {
		flag |= os.O_TRUNC
	}
	if cfg.append {
		flag |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &File{path: path, f: f, append: cfg.append}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string { return f.path }

// Read reads from the current position, advancing the cursor.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.f.Read(p)
	f.pos += int64(n)
	return n, err
}

// Write writes at the current position, advancing the cursor. The file
// grows as needed. In append mode the OS writes at end-of-file, so the
// cursor is resynced from the handle rather than accumulated.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.f.Write(p)
	if f.append {
		if pos, serr := f.f.Seek(0, io.SeekCurrent); serr == nil {
			f.pos = pos
		}
	} else {
		f.pos += int64(n)
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", f.path, err)
	}
	return n, nil
}

// Seek moves the cursor. As with Buffer, seeking past the end is legal.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	length, err := f.Len()
	if err != nil {
		return 0, err
	}
	if _, err := resolveSeek(offset, whence, f.pos, length); err != nil {
		return 0, err
	}
	pos, err := f.f.Seek(offset, whence)
	if err != nil {
		return 0, fmt.Errorf("seeking %s: %w", f.path, err)
	}
	f.pos = pos
	return pos, nil
}

// Tell reports the current cursor position.
func (f *File) Tell() int64 { return f.pos }

// Len reports the file size, queried from the filesystem on every call.
func (f *File) Len() (int64, error) {
	info, err := f.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", f.path, err)
	}
	return info.Size(), nil
}

// SetLen truncates or extends the file to n bytes; extension zero-fills.
func (f *File) SetLen(n int64) error {
	if err := f.f.Truncate(n); err != nil {
		return fmt.Errorf("resizing %s: %w", f.path, err)
	}
	return nil
}

// Truncate discards everything past the cursor.
func (f *File) Truncate() error { return f.SetLen(f.pos) }

// Growable reports true: a File always grows on write.
func (f *File) Growable() bool { return true }

// Sync flushes file contents to stable storage.
func (f *File) Sync() error { return f.f.Sync() }

// Close releases the file handle. After Close, the File should not be used.
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.path, err)
	}
	return nil
}
