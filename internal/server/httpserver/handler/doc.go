// Package handler provides HTTP request handlers for memod.
//
// This package contains handlers for all HTTP endpoints:
//
//   - memo.go: Memo CRUD operations on /memos and /memos/{id}
//   - health.go: Health, readiness and version
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate the path id and body
//   - Call the memo service
//   - Write the bare memo representation, or an error body
//   - Map domain error codes to HTTP status codes
package handler
