// Package cmap provides a concurrent map keyed by strings.
//
// Keys are spread over a power-of-two number of shards by their murmur3
// hash, and every shard is guarded by its own RWMutex, so goroutines that
// touch different keys rarely contend.
//
// Usage:
//
//	m := cmap.New[int]()
//	m.Set("cork", 12)
//	idx := m.Upsert("cork", 7, func(old int, exists bool) int { return min(old, 7) })
//
// All operations are safe for concurrent use.
package cmap
