package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/cribcrack/internal/infra/buildinfo"
)

// BuildInfoCollector exports cribcrack_build_info with the version labels
// of the running binary.
type BuildInfoCollector struct {
	desc *prometheus.Desc
	info buildinfo.Info
}

// NewBuildInfoCollector creates a collector for the current build.
func NewBuildInfoCollector() *BuildInfoCollector {
	return &BuildInfoCollector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "build_info"),
			"Build information of the cribcrack binary.",
			[]string{"version", "commit", "go_version"},
			nil,
		),
		info: buildinfo.Get(),
	}
}

// Describe implements prometheus.Collector.
func (c *BuildInfoCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *BuildInfoCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1,
		c.info.Version, c.info.Commit, c.info.GoVersion)
}
