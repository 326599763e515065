// Package metric provides Prometheus metrics for memod.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry and HTTP handler
//   - collector.go: Custom collector reading the live memo count
//
// Metrics include:
//
//   - HTTP request counters and latency histograms
//   - Memo operation counters labelled by outcome
//   - Current memo count gauge
//   - Go runtime and process statistics
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
