package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Keys whose string values are free-text memo bodies. They are replaced
// by a length summary.
var contentKeys = []string{
	"contents",
	"body",
}

// Key patterns that carry credentials. Non-empty values are fully redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"authorization",
	"cookie",
}

const redactedValue = "***REDACTED***"

func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	keyLower := strings.ToLower(a.Key)
	if IsContentKey(keyLower) {
		return slog.String(a.Key, SummarizeContents(a.Value.String()))
	}
	if IsSensitiveKey(keyLower) && a.Value.String() != "" {
		return slog.String(a.Key, redactedValue)
	}
	return a
}

// SummarizeContents replaces a memo body with its length.
func SummarizeContents(s string) string {
	return fmt.Sprintf("<%d bytes>", len(s))
}

// IsContentKey reports whether key holds memo contents.
func IsContentKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, k := range contentKeys {
		if keyLower == k {
			return true
		}
	}
	return false
}

// IsSensitiveKey checks if a key name suggests credential content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
