// Package metric provides Prometheus metrics for cribcrack.
//
//   - prometheus.go: the Registry of search metrics and textfile export
//   - collector.go: a constant build-info collector
//
// A one-shot CLI has no scrape endpoint, so metrics are written in the
// node_exporter textfile format when the run finishes.
package metric
