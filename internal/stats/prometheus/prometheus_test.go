package prometheus

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bytepress/press"
	"github.com/bytepress/press/gzip"
	"github.com/bytepress/press/internal/stats"
)

func TestNew_DefaultRegistry(t *testing.T) {
	c := New(nil)
	if c == nil {
		t.Fatal("New(nil) returned nil")
	}
	if c.registry == nil {
		t.Error("registry should not be nil")
	}
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter("test_counter", 5)
	c.IncCounter("test_counter", 3)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := false
	for _, m := range metrics {
		if m.GetName() == "test_counter" {
			found = true
			val := m.GetMetric()[0].GetCounter().GetValue()
			if val != 8 {
				t.Errorf("counter value = %v, want 8", val)
			}
		}
	}
	if !found {
		t.Error("counter test_counter not found in registry")
	}
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram("test_histogram", 0.5)
	c.ObserveHistogram("test_histogram", 1.5)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := false
	for _, m := range metrics {
		if m.GetName() == "test_histogram" {
			found = true
			count := m.GetMetric()[0].GetHistogram().GetSampleCount()
			if count != 2 {
				t.Errorf("histogram count = %v, want 2", count)
			}
		}
	}
	if !found {
		t.Error("histogram test_histogram not found in registry")
	}
}

func TestCollector_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	existing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "preexisting_counter",
		Help: "preexisting_counter",
	})
	reg.MustRegister(existing)
	existing.Add(100)

	c := New(reg)
	c.IncCounter("preexisting_counter", 5)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, m := range metrics {
		if m.GetName() == "preexisting_counter" {
			val := m.GetMetric()[0].GetCounter().GetValue()
			if val != 105 {
				t.Errorf("counter value = %v, want 105", val)
			}
		}
	}
}

func TestCollector_CountsCompressions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	original := bytes.Repeat([]byte("measured "), 50)
	if _, err := press.Compress(gzip.New(), bytes.NewReader(original), press.WithStats(c)); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	var ops, bytesIn float64
	for _, m := range metrics {
		switch m.GetName() {
		case stats.MetricCompressions:
			ops = m.GetMetric()[0].GetCounter().GetValue()
		case stats.MetricBytesIn:
			bytesIn = m.GetMetric()[0].GetCounter().GetValue()
		}
	}
	if ops != 1 {
		t.Errorf("%s = %v, want 1", stats.MetricCompressions, ops)
	}
	if bytesIn != float64(len(original)) {
		t.Errorf("%s = %v, want %d", stats.MetricBytesIn, bytesIn, len(original))
	}
}
