package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yndnr/memod/internal/core/domain"
	"github.com/yndnr/memod/internal/core/service"
	"github.com/yndnr/memod/internal/telemetry/logger"
)

// maxBodyBytes caps request bodies on memo writes.
const maxBodyBytes = 1 << 20

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	memoSvc *service.MemoService
	logger  *slog.Logger
	metrics http.Handler
	mux     *http.ServeMux
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetricsHandler serves h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(hd *Handler) {
		hd.metrics = h
	}
}

// New creates a new Handler with the given service.
func New(memoSvc *service.MemoService, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		memoSvc: memoSvc,
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)
	h.mux.HandleFunc("GET /version", h.handleVersion)

	h.mux.HandleFunc("POST /memos", h.handleCreateMemo)
	h.mux.HandleFunc("GET /memos", h.handleListMemos)
	h.mux.HandleFunc("GET /memos/{id}", h.handleGetMemo)
	h.mux.HandleFunc("PUT /memos/{id}", h.handleReplaceMemo)
	h.mux.HandleFunc("PATCH /memos/{id}", h.handleRenameMemo)
	h.mux.HandleFunc("DELETE /memos/{id}", h.handleDeleteMemo)

	if h.metrics != nil {
		h.mux.Handle("GET /metrics", h.metrics)
	}
}

// writeJSON writes data as the JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	setRequestID(w, r)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with the error code in X-Error-Code.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	setRequestID(w, r)
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: getRequestID(r),
	})
	if err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}

// getRequestID returns the request ID set by the RequestID middleware,
// falling back to the inbound header.
func getRequestID(r *http.Request) string {
	if reqID := logger.RequestIDFromContext(r.Context()); reqID != "" {
		return reqID
	}
	return r.Header.Get("X-Request-ID")
}

func setRequestID(w http.ResponseWriter, r *http.Request) {
	if w.Header().Get("X-Request-ID") != "" {
		return
	}
	if reqID := getRequestID(r); reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		de = domain.ErrInternalServer
	}

	status := statusFor(de.Kind())
	if status == http.StatusInternalServerError {
		logger.L(r.Context()).Error("request failed", "error", err)
		de = domain.ErrInternalServer
	}
	h.writeError(w, r, status, de.Code, de.Text())
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalid:
		return http.StatusBadRequest
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
