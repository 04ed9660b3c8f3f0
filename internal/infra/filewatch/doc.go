// Package filewatch notifies callers when watched files change.
//
// The parent directory of each file is watched rather than the file
// itself, so editors that save by renaming a temporary file over the
// original are still seen. Bursts of events for the same file are
// coalesced by a debounce delay.
package filewatch
