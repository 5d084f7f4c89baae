// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// One-shot and streaming operation counters.
	MetricCompressions   = "press_compress_ops_total"
	MetricDecompressions = "press_decompress_ops_total"

	// Byte counters: bytes consumed from sources and produced into
	// destinations, across both directions.
	MetricBytesIn  = "press_bytes_in_total"
	MetricBytesOut = "press_bytes_out_total"

	// Compression ratio (output bytes / input bytes) per one-shot
	// compress operation.
	MetricRatio = "press_compress_ratio"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
