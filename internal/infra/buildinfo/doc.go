// Package buildinfo provides build information for cribcrack.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/cribcrack/internal/infra/buildinfo.Version=v0.3.0"
package buildinfo
