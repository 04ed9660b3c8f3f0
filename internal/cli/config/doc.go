// Package config defines the cribcrack configuration.
//
//   - spec.go: Config and its sections (koanf tags)
//   - default.go: default values
//   - verify.go: validation
//   - loader.go: merging file, environment and flags via confloader
//
// A config file is optional. When --config is not given,
// ~/.cribcrack/config.yaml is read if it exists.
package config
