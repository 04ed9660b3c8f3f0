package service

import (
	"runtime"
	"time"
)

// Config tunes how a RecoveryService evaluates candidates.
type Config struct {
	// Workers is the number of goroutines evaluating candidates. 1 runs
	// the search sequentially.
	Workers int
	// BatchSize is the number of candidates handed to the workers at once.
	BatchSize int
	// MaxCandidates stops the search with ErrSearchBudgetExhausted once
	// this many candidates have been enumerated. 0 means no limit.
	MaxCandidates int
	// SkipDuplicates skips a candidate key already claimed by an earlier
	// candidate.
	SkipDuplicates bool
	// ProgressInterval is the minimum time between progress log lines.
	ProgressInterval time.Duration
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() *Config {
	return &Config{
		Workers:          runtime.GOMAXPROCS(0),
		BatchSize:        256,
		MaxCandidates:    0,
		SkipDuplicates:   true,
		ProgressInterval: 2 * time.Second,
	}
}

func (c *Config) normalized() Config {
	out := *c
	if out.Workers < 1 {
		out.Workers = 1
	}
	if out.BatchSize < out.Workers {
		out.BatchSize = out.Workers
	}
	if out.MaxCandidates < 0 {
		out.MaxCandidates = 0
	}
	return out
}
