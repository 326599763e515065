// Package httpserver provides the HTTP/HTTPS server for memod.
//
// This package implements the external API using stdlib net/http:
//
//   - Memo endpoints: /memos, /memos/{id}
//   - Operational endpoints: /health, /ready, /version, /metrics
//
// Features:
//
//   - Optional TLS from a certificate and key file
//   - Middleware chain: Recover, RequestID, CORS, RateLimit, Metrics, Audit
//   - Graceful shutdown with configurable timeout
//   - Prometheus metrics integration
package httpserver
