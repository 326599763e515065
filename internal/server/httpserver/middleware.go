package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/memod/internal/core/domain"
	"github.com/yndnr/memod/internal/server/httpserver/handler"
	"github.com/yndnr/memod/internal/telemetry/logger"
)

// Context keys for request-scoped values.
type contextKey string

// ContextKeyStartTime is the context key for request start time.
const ContextKeyStartTime contextKey = "start_time"

// Middleware wraps an http.Handler with additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain chains multiple middlewares together. The first middleware is the
// outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RequestObserver records completed requests. *metric.Registry satisfies it.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RequestID adds a unique request ID to each request. An inbound
// X-Request-ID is kept; otherwise a ULID-based ID is generated.
func RequestID(base logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = newRequestID()
			}

			w.Header().Set("X-Request-ID", requestID)

			ctx := logger.WithRequestID(r.Context(), requestID)
			if base != nil {
				ctx = logger.WithLogger(ctx, base)
			}
			ctx = context.WithValue(ctx, ContextKeyStartTime, time.Now())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newRequestID() string {
	return "req-" + strings.ToLower(ulid.Make().String())
}

// DefaultLimiterIdleTTL is how long a client's limiter is kept after its
// last request.
const DefaultLimiterIdleTTL = 3 * time.Minute

const clientIPKey contextKey = "client_ip"

// ClientIP resolves the address each request is attributed to and stores it
// in the context for RateLimit and Audit. X-Forwarded-For and X-Real-IP are
// honoured only when trustProxy is set.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), clientIPKey, resolveClientIP(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientIP returns the address set by ClientIP, or the peer address.
func clientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey).(string); ok {
		return ip
	}
	return resolveClientIP(r, false)
}

// RateLimitOption configures RateLimit.
type RateLimitOption func(*limiterRegistry)

// WithLimiterIdleTTL sets how long an idle client's limiter is retained.
func WithLimiterIdleTTL(d time.Duration) RateLimitOption {
	return func(r *limiterRegistry) {
		r.idleTTL = d
	}
}

// RateLimit applies per-client-IP rate limiting with a token bucket of
// requestsPerSecond tokens refilled at the same rate.
func RateLimit(requestsPerSecond int, opts ...RateLimitOption) Middleware {
	limiters := newLimiterRegistry(requestsPerSecond)
	for _, opt := range opts {
		opt(limiters)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiters.get(clientIP(r), time.Now()).Allow() {
				w.Header().Set("Retry-After", "1")
				writeMiddlewareError(w, r, http.StatusTooManyRequests, domain.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterRegistry holds one limiter per client IP. Limiters idle for longer
// than idleTTL are dropped, at most once per idleTTL.
type limiterRegistry struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

func newLimiterRegistry(requestsPerSecond int) *limiterRegistry {
	return &limiterRegistry{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    requestsPerSecond,
		idleTTL:  DefaultLimiterIdleTTL,
	}
}

func (r *limiterRegistry) get(ip string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastSweep.IsZero() {
		r.lastSweep = now
	}
	if r.idleTTL > 0 && now.Sub(r.lastSweep) >= r.idleTTL {
		for key, cl := range r.limiters {
			if now.Sub(cl.lastSeen) >= r.idleTTL {
				delete(r.limiters, key)
			}
		}
		r.lastSweep = now
	}

	cl, ok := r.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

func (r *limiterRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}

// Metrics records request counts and latency labelled by the matched route
// pattern. It must sit outside the ServeMux and pass r through unchanged,
// since the mux stores the pattern on the request it receives.
func Metrics(obs RequestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveRequest(r.Method, route, wrapped.statusCode, time.Since(start))
		})
	}
}

// Audit logs one access entry per request.
func Audit(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			startTime, ok := r.Context().Value(ContextKeyStartTime).(time.Time)
			if !ok {
				startTime = time.Now()
			}

			attrs := []any{
				"request_id", logger.RequestIDFromContext(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration_ms", time.Since(startTime).Milliseconds(),
				"client_ip", clientIP(r),
			}

			if wrapped.statusCode >= 500 {
				log.Error("request completed with error", attrs...)
			} else if wrapped.statusCode >= 400 {
				log.Warn("request completed with client error", attrs...)
			} else {
				log.Info("request completed", attrs...)
			}
		})
	}
}

// Recover recovers from panics and returns 500 error.
func Recover(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					log.Error("panic recovered",
						"request_id", logger.RequestIDFromContext(r.Context()),
						"error", err,
						"path", r.URL.Path,
					)
					writeMiddlewareError(w, r, http.StatusInternalServerError, domain.ErrInternalServer)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// CORS adds Cross-Origin Resource Sharing headers for allowed origins.
// "*" in allowedOrigins allows any origin.
func CORS(allowedOrigins []string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := false
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					allowed = true
					break
				}
			}

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Error-Code")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.Header().Add("Vary", "Origin")
			}

			// Preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// writeMiddlewareError writes an error body in the same shape as handler errors.
func writeMiddlewareError(w http.ResponseWriter, r *http.Request, status int, de *domain.DomainError) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", de.Code)
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(handler.ErrorResponse{
		Code:      de.Code,
		Message:   de.Text(),
		RequestID: logger.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		logger.L(r.Context()).Error("failed to encode error response", "error", err)
	}
}

// resolveClientIP returns the peer address of r. With trustProxy the first
// X-Forwarded-For entry or X-Real-IP wins when present.
func resolveClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	// Use net.SplitHostPort to correctly handle IPv6 addresses like [::1]:8080
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
