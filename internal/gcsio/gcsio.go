// Package gcsio opens gs:// object paths for reading, so the CLI can
// pull input straight from a Cloud Storage bucket.
package gcsio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

const scheme = "gs://"

// IsGCSPath reports whether path names a Cloud Storage object.
func IsGCSPath(path string) bool {
	return strings.HasPrefix(path, scheme)
}

// parsePath splits gs://bucket/object into its bucket and object parts.
func parsePath(path string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(path, scheme)
	if !ok {
		return "", "", fmt.Errorf("gcsio: %q is not a gs:// path", path)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("gcsio: %q must name a bucket and an object", path)
	}
	return bucket, object, nil
}

// Open returns a reader over the object at a gs://bucket/object path.
// The caller owns the returned reader and must close it.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, object, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcsio: creating storage client: %w", err)
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("gcsio: opening %s: %w", path, err)
	}
	return &objectReader{ReadCloser: r, client: client}, nil
}

// objectReader closes the storage client together with the object reader.
type objectReader struct {
	io.ReadCloser
	client *storage.Client
}

func (o *objectReader) Close() error {
	err := o.ReadCloser.Close()
	if cerr := o.client.Close(); err == nil {
		err = cerr
	}
	return err
}
