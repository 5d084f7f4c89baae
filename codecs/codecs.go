// Package codecs enumerates the built-in codec variants by name, for
// callers that select a codec at runtime (the CLI, dependency wiring).
package codecs

import (
	"github.com/bytepress/press"
	"github.com/bytepress/press/brotli"
	"github.com/bytepress/press/bzip2"
	"github.com/bytepress/press/deflate"
	"github.com/bytepress/press/gzip"
	"github.com/bytepress/press/lz4"
	"github.com/bytepress/press/snappy"
	"github.com/bytepress/press/xz"
	"github.com/bytepress/press/zstd"
)

// Lookup returns the codec registered under name.
func Lookup(name string) (press.Codec, bool) {
	switch name {
	case "gzip":
		return gzip.New(), true
	case "deflate":
		return deflate.New(), true
	case "zstd":
		return zstd.New(), true
	case "snappy":
		return snappy.New(), true
	case "lz4":
		return lz4.New(), true
	case "brotli":
		return brotli.New(), true
	case "bzip2":
		return bzip2.New(), true
	case "xz":
		return xz.New(), true
	case "lzma":
		return xz.NewAlone(), true
	default:
		return nil, false
	}
}

// All returns every stream-capable codec variant.
func All() []press.Codec {
	return []press.Codec{
		gzip.New(),
		deflate.New(),
		zstd.New(),
		snappy.New(),
		lz4.New(),
		brotli.New(),
		bzip2.New(),
		xz.New(),
		xz.NewAlone(),
	}
}

// Names returns the names accepted by Lookup, in registration order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name()
	}
	return names
}
