// Package service provides domain services for memod.
//
// Domain services orchestrate operations on domain models. They define
// interfaces for storage dependencies, allowing for dependency injection
// and testability.
//
// This package contains:
//
//   - MemoService: memo CRUD operations over a MemoRepository
//
// Services are stateless apart from their injected collaborators and
// safe for concurrent use when the repository is.
package service
