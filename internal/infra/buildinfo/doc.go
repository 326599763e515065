// Package buildinfo provides build information for memod.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/memod/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/memod/internal/infra/buildinfo.Commit=abc123"
//
// When ldflags are absent, Commit and GoVersion fall back to the module
// build information embedded by the Go toolchain.
package buildinfo
