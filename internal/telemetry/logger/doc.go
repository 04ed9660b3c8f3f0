// Package logger provides structured logging for cribcrack.
//
//   - logger.go: slog-backed Logger, level control and the package default
//   - zap.go: zap backend selected with Config.Backend = "zap"
//   - context.go: context propagation of the logger and run ID
//   - redact.go: masking of recovered keys and plaintext
//
// Recovered keys and plaintext are masked in log output unless
// Config.Reveal is set. Results printed by the CLI are never masked.
package logger
