package config

import "time"

// Config is the root configuration of cribcrack.
type Config struct {
	Search   SearchSection   `koanf:"search" json:"search" yaml:"search"`
	Shift    ShiftSection    `koanf:"shift" json:"shift" yaml:"shift"`
	Vigenere VigenereSection `koanf:"vigenere" json:"vigenere" yaml:"vigenere"`
	Log      LogSection      `koanf:"log" json:"log" yaml:"log"`
	Output   OutputSection   `koanf:"output" json:"output" yaml:"output"`
	Metrics  MetricsSection  `koanf:"metrics" json:"metrics" yaml:"metrics"`
}

// SearchSection configures candidate evaluation.
type SearchSection struct {
	// Workers is the number of goroutines evaluating candidates.
	Workers int `koanf:"workers" json:"workers" yaml:"workers"`
	// BatchSize is the number of candidates evaluated per round.
	BatchSize int `koanf:"batch_size" json:"batch_size" yaml:"batch_size"`
	// Budget caps the number of candidates enumerated. 0 means no limit.
	Budget int `koanf:"budget" json:"budget" yaml:"budget"`
	// SkipDuplicates skips candidate keys that were already tried.
	SkipDuplicates bool `koanf:"skip_duplicates" json:"skip_duplicates" yaml:"skip_duplicates"`
	// Timeout bounds a single recovery. 0 means no limit.
	Timeout time.Duration `koanf:"timeout" json:"timeout" yaml:"timeout"`
	// ProgressInterval is the minimum time between progress log lines.
	ProgressInterval time.Duration `koanf:"progress_interval" json:"progress_interval" yaml:"progress_interval"`
}

// ShiftSection configures the shift command.
type ShiftSection struct {
	Crib string `koanf:"crib" json:"crib" yaml:"crib"`
}

// VigenereSection configures the vigenere command.
type VigenereSection struct {
	Crib      string `koanf:"crib" json:"crib" yaml:"crib"`
	KeyLength int    `koanf:"key_length" json:"key_length" yaml:"key_length"`
	Policy    string `koanf:"policy" json:"policy" yaml:"policy"` // strict, passthrough
}

// LogSection configures logging.
type LogSection struct {
	Level   string `koanf:"level" json:"level" yaml:"level"`
	Format  string `koanf:"format" json:"format" yaml:"format"`    // json, text
	Backend string `koanf:"backend" json:"backend" yaml:"backend"` // slog, zap
	// Reveal logs recovered keys and plaintext unmasked.
	Reveal bool `koanf:"reveal" json:"reveal" yaml:"reveal"`
}

// OutputSection configures result rendering.
type OutputSection struct {
	Format string `koanf:"format" json:"format" yaml:"format"` // table, json, yaml
}

// MetricsSection configures metrics export.
type MetricsSection struct {
	// Textfile is where metrics are written after each run. Empty disables.
	Textfile string `koanf:"textfile" json:"textfile" yaml:"textfile"`
}
