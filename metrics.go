package posterize

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    posterizeCounter   prometheus.Counter
//	    posterizeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordPosterize(pixels, iterations int, duration time.Duration, err error) {
//	    p.posterizeCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordPosterize is called after each buffer posterize run.
	// pixels and iterations describe the completed run, duration is the
	// total time taken, err is nil if successful.
	RecordPosterize(pixels, iterations int, duration time.Duration, err error)

	// RecordImage is called after each image posterize run.
	// duration is the total time taken including pixel flattening,
	// err is nil if successful.
	RecordImage(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPosterize(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordImage(time.Duration, error)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PosterizeCount      atomic.Int64
	PosterizeErrors     atomic.Int64
	PosterizePixels     atomic.Int64
	PosterizeIterations atomic.Int64
	PosterizeTotalNanos atomic.Int64
	ImageCount          atomic.Int64
	ImageErrors         atomic.Int64
	ImageTotalNanos     atomic.Int64
}

// RecordPosterize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPosterize(pixels, iterations int, duration time.Duration, err error) {
	b.PosterizeCount.Add(1)
	b.PosterizePixels.Add(int64(pixels))
	b.PosterizeIterations.Add(int64(iterations))
	b.PosterizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PosterizeErrors.Add(1)
	}
}

// RecordImage implements MetricsCollector.
func (b *BasicMetricsCollector) RecordImage(duration time.Duration, err error) {
	b.ImageCount.Add(1)
	b.ImageTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ImageErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PosterizeCount:      b.PosterizeCount.Load(),
		PosterizeErrors:     b.PosterizeErrors.Load(),
		PosterizePixels:     b.PosterizePixels.Load(),
		PosterizeIterations: b.PosterizeIterations.Load(),
		PosterizeAvgNanos:   b.getAvgPosterizeNanos(),
		ImageCount:          b.ImageCount.Load(),
		ImageErrors:         b.ImageErrors.Load(),
		ImageAvgNanos:       b.getAvgImageNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgPosterizeNanos() int64 {
	count := b.PosterizeCount.Load()
	if count == 0 {
		return 0
	}
	return b.PosterizeTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgImageNanos() int64 {
	count := b.ImageCount.Load()
	if count == 0 {
		return 0
	}
	return b.ImageTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PosterizeCount      int64
	PosterizeErrors     int64
	PosterizePixels     int64
	PosterizeIterations int64
	PosterizeAvgNanos   int64
	ImageCount          int64
	ImageErrors         int64
	ImageAvgNanos       int64
}
