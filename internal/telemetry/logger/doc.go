// Package logger provides structured logging for memod.
//
//   - logger.go: slog handler configuration and the global logger
//   - context.go: context-aware logging with request IDs
//   - redact.go: masking of memo contents and credentials
//
// Features:
//
//   - JSON and text output formats
//   - Runtime log level changes (used by config hot reload)
//   - Memo contents never reach the log output verbatim
package logger
