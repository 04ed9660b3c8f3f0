// Package output renders cribcrack results.
//
//   - formatter.go: Formatter interface and factory
//   - report.go: Report, the rendered form of a recovery
//   - table.go: key/value table rendering
//   - json.go, yaml.go: machine-readable output
//   - progress.go: candidate progress bar for interactive terminals
package output
