package press

import (
	"go.uber.org/zap"

	"github.com/bytepress/press/internal/stats"
)

// Option configures a one-shot operation, Compressor or Decompressor.
type Option interface {
	apply(*options)
}

// options holds the resolved configuration.
type options struct {
	level     int
	levelSet  bool
	outputLen int64
	hasOutput bool
	logger    *zap.Logger
	stats     stats.Collector
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		stats:  stats.NewNoop(),
	}
}

func buildOptions(opts []Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return cfg
}

// levelFor resolves the effective compression level for c.
func (o options) levelFor(c Codec) int {
	if o.levelSet {
		return o.level
	}
	return c.DefaultLevel()
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithLevel sets the compression level. Each codec defines its own range
// and default; codecs without levels ignore it.
func WithLevel(level int) Option {
	return optionFunc(func(o *options) {
		o.level = level
		o.levelSet = true
	})
}

// WithOutputLen pre-sizes the one-shot destination buffer to exactly n
// bytes, enabling a single allocation. For block-format decompressors
// with no stored length it is the only way to state the output size.
func WithOutputLen(n int) Option {
	return optionFunc(func(o *options) {
		o.outputLen = int64(n)
		o.hasOutput = true
	})
}

// WithLogger sets the logger used for debug output.
// If not set, logging is disabled.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	})
}

// WithStats sets the stats collector for operation and byte counters.
// If not set, stats collection is disabled.
func WithStats(collector stats.Collector) Option {
	return optionFunc(func(o *options) {
		if collector != nil {
			o.stats = collector
		}
	})
}

// ResolveLevel reports the compression level the given options select for
// c, falling back to the codec default. Variant packages use it for
// []byte fast paths that bypass the stream engine.
func ResolveLevel(c Codec, opts ...Option) int {
	return buildOptions(opts).levelFor(c)
}

// ResolveOutputLen reports the explicit output length selected by the
// given options, or -1 when none was supplied.
func ResolveOutputLen(opts ...Option) int64 {
	cfg := buildOptions(opts)
	if !cfg.hasOutput {
		return -1
	}
	return cfg.outputLen
}
