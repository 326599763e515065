package metric

import "github.com/prometheus/client_golang/prometheus"

// Counter reports the number of memos currently held.
type Counter interface {
	Count() int
}

// MemoCollector exports the live memo count as a gauge at scrape time.
type MemoCollector struct {
	source Counter
	desc   *prometheus.Desc
}

// NewMemoCollector creates a collector reading from source.
func NewMemoCollector(source Counter) *MemoCollector {
	return &MemoCollector{
		source: source,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "memos"),
			"Number of memos currently stored.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *MemoCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *MemoCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.source.Count()))
}
