// Package benchmark holds benchmarks for the key recovery search.
//
// Run with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/
package benchmark
