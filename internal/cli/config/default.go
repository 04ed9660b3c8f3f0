package config

import (
	"runtime"
	"time"
)

// Default configuration values.
const (
	DefaultBatchSize        = 256
	DefaultProgressInterval = 2 * time.Second

	// DefaultShiftCrib and the vigenere defaults reproduce the bundled
	// reference puzzles.
	DefaultShiftCrib    = "pumpkin"
	DefaultVigenereCrib = "gingerbread"
	DefaultKeyLength    = 4
	DefaultPolicy       = "strict"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
	DefaultLogBackend   = "slog"
	DefaultOutputFormat = "table"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Search: SearchSection{
			Workers:          runtime.GOMAXPROCS(0),
			BatchSize:        DefaultBatchSize,
			SkipDuplicates:   true,
			ProgressInterval: DefaultProgressInterval,
		},
		Shift: ShiftSection{
			Crib: DefaultShiftCrib,
		},
		Vigenere: VigenereSection{
			Crib:      DefaultVigenereCrib,
			KeyLength: DefaultKeyLength,
			Policy:    DefaultPolicy,
		},
		Log: LogSection{
			Level:   DefaultLogLevel,
			Format:  DefaultLogFormat,
			Backend: DefaultLogBackend,
		},
		Output: OutputSection{
			Format: DefaultOutputFormat,
		},
	}
}
