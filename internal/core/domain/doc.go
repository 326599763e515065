// Package domain defines the core domain models for memod.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling. This package contains:
//
//   - Memo: the single managed resource (id, title, contents)
//   - MemoDraft: decoded request fields with presence tracking
//   - Errors: domain-specific error definitions
package domain
