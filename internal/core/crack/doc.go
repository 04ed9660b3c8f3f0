// Package crack implements the known-plaintext key searches.
//
// Every function here is pure: inputs are fully materialized strings,
// nothing is shared between calls and each candidate is tried
// independently, in a fixed ascending order, returning on the first match.
//
//   - shift.go: exhaustive mono-alphabetic shift search (0..25)
//   - repeating.go: sliding-window repeating-key recovery
//   - candidate.go: deterministic (offset, sub-window) candidate enumeration
//
// The service package layers logging, metrics, budgets and parallel
// evaluation on top of the Problem types defined here without changing
// which candidate wins.
package crack
