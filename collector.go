package arena

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var _ prometheus.Collector = (*Collector)(nil)

// Collector exposes arena statistics as Prometheus metrics.
//
// The arena is single-owner while Prometheus scrapes run on their own
// goroutines, so the collector never reads an Arena directly. The owner
// publishes snapshots at phase boundaries (typically right before Reset):
//
//	c := arena.NewCollector("myapp")
//	prometheus.MustRegister(c)
//	...
//	c.Observe(a.Stats())
//	a.Reset()
//
// Scrapes report the last published snapshot; until the first Observe the
// collector reports no metrics.
type Collector struct {
	stats atomic.Pointer[Stats]

	capacityDesc    *prometheus.Desc
	usedDesc        *prometheus.Desc
	remainingDesc   *prometheus.Desc
	utilizationDesc *prometheus.Desc
	resetsDesc      *prometheus.Desc
}

// NewCollector creates a Collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		capacityDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "capacity_bytes"),
			"Total capacity of the arena in bytes.",
			nil, nil,
		),
		usedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "used_bytes"),
			"Bytes allocated from the arena at the last snapshot.",
			nil, nil,
		),
		remainingDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "remaining_bytes"),
			"Bytes still available in the arena at the last snapshot.",
			nil, nil,
		),
		utilizationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "utilization_ratio"),
			"Ratio of used to total arena capacity at the last snapshot.",
			nil, nil,
		),
		resetsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "resets_total"),
			"Number of times the arena has been reset.",
			nil, nil,
		),
	}
}

// Observe publishes a snapshot for subsequent scrapes to report.
// Safe to call concurrently with scrapes.
func (c *Collector) Observe(s Stats) {
	c.stats.Store(&s)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.capacityDesc
	descs <- c.usedDesc
	descs <- c.remainingDesc
	descs <- c.utilizationDesc
	descs <- c.resetsDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.stats.Load()
	if s == nil {
		return
	}
	metrics <- prometheus.MustNewConstMetric(c.capacityDesc, prometheus.GaugeValue, float64(s.Capacity))
	metrics <- prometheus.MustNewConstMetric(c.usedDesc, prometheus.GaugeValue, float64(s.Used))
	metrics <- prometheus.MustNewConstMetric(c.remainingDesc, prometheus.GaugeValue, float64(s.Remaining))
	metrics <- prometheus.MustNewConstMetric(c.utilizationDesc, prometheus.GaugeValue, s.Utilization)
	metrics <- prometheus.MustNewConstMetric(c.resetsDesc, prometheus.CounterValue, float64(s.Resets))
}
