// Package pressfx provides an fx module that wires a named codec and
// its options into an application graph.
package pressfx

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bytepress/press"
	"github.com/bytepress/press/codecs"
	"github.com/bytepress/press/internal/stats"
	"github.com/bytepress/press/internal/stats/logger"
)

// Config selects the codec the module provides.
type Config struct {
	// Codec names one of the registered variants, e.g. "zstd".
	Codec string

	// Level is the compression level. Values below zero mean the
	// codec's default.
	Level int
}

// Module provides a press.Codec and its option set.
// Requires a Config and a *zap.Logger to be provided.
var Module = fx.Module("press",
	fx.Provide(
		newStatsCollector,
		newCodec,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("press.stats"))
}

// Params holds dependencies for resolving the codec.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided codec and the options callers pass to the
// package-level compress and decompress functions.
type Result struct {
	fx.Out

	Codec   press.Codec
	Options []press.Option `name:"pressOptions"`
}

func newCodec(p Params) (Result, error) {
	codec, ok := codecs.Lookup(p.Config.Codec)
	if !ok {
		return Result{}, fmt.Errorf("pressfx: unknown codec %q", p.Config.Codec)
	}

	opts := []press.Option{
		press.WithLogger(p.Logger.Named("press")),
		press.WithStats(p.Collector),
	}
	if p.Config.Level >= 0 {
		opts = append(opts, press.WithLevel(p.Config.Level))
	}

	return Result{Codec: codec, Options: opts}, nil
}
