// Package command provides the cribcrack command-line interface.
//
// Commands are defined with urfave/cli/v2:
//
//   - root.go: App, global flags, configuration and service wiring
//   - shift.go: shift cipher recovery
//   - vigenere.go: repeating-key recovery
//   - encode.go: enciphering helpers
//   - config.go: configuration inspection
//   - version.go: build information
//
// Recovery commands load the configuration (flags over CRIBCRACK_*
// environment variables over the config file over defaults), run the
// recovery service and render a report with the selected formatter.
// A finished search that found no key returns ErrNotFound, which
// ExitCode maps to exit status 2.
package command
