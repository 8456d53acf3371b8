package handler

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

var (
	writtenDesc = prometheus.NewDesc(
		"log_lines_written_total",
		"Number of log lines written, by level.",
		[]string{"handler", "level"}, nil,
	)
	filteredDesc = prometheus.NewDesc(
		"log_lines_filtered_total",
		"Number of log records dropped by the level filter, by level.",
		[]string{"handler", "level"}, nil,
	)
	failedDesc = prometheus.NewDesc(
		"log_write_errors_total",
		"Number of log lines whose write failed.",
		[]string{"handler"}, nil,
	)
)

// StatsCollector exposes a handler's Stats as Prometheus counters
type StatsCollector struct {
	name  string
	stats *Stats
}

// NewStatsCollector creates a collector reporting stats under the
// "handler" label name.
func NewStatsCollector(name string, stats *Stats) *StatsCollector {
	return &StatsCollector{name: name, stats: stats}
}

// Describe implements prometheus.Collector
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- writtenDesc
	ch <- filteredDesc
	ch <- failedDesc
}

// Collect implements prometheus.Collector
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	for l := core.TraceLevel; l <= core.ErrorLevel; l++ {
		level := strings.ToLower(l.String())
		ch <- prometheus.MustNewConstMetric(writtenDesc, prometheus.CounterValue,
			float64(c.stats.GetWritten(l)), c.name, level)
		ch <- prometheus.MustNewConstMetric(filteredDesc, prometheus.CounterValue,
			float64(c.stats.GetFiltered(l)), c.name, level)
	}
	ch <- prometheus.MustNewConstMetric(failedDesc, prometheus.CounterValue,
		float64(c.stats.GetFailed()), c.name)
}
