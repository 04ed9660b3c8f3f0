// Package service orchestrates key recoveries.
//
// RecoveryService wraps the pure searches in internal/core/crack with the
// operational concerns a caller needs: run IDs, logging, metrics, a
// candidate budget, cancellation, parallel evaluation and duplicate-key
// skipping. None of these change which key is found: a parallel search
// returns the same key, plaintext and position as a sequential one.
package service
