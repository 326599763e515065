package config

import "time"

// ServerConfig is the root configuration for memod-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the HTTP endpoint and its middleware.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`

	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit int `koanf:"rate_limit"`

	// CORSAllowedOrigins lists origins allowed for cross-origin requests.
	// Empty disables CORS headers; "*" allows any origin.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// TrustProxyHeaders takes the client IP from X-Forwarded-For or
	// X-Real-IP instead of the peer address.
	TrustProxyHeaders bool `koanf:"trust_proxy_headers"`

	// EnableAudit enables the per-request access log.
	EnableAudit bool `koanf:"enable_audit"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr         string        `koanf:"addr"`
	TLSCertFile  string        `koanf:"tls_cert_file"`
	TLSKeyFile   string        `koanf:"tls_key_file"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// TLSEnabled reports whether both TLS files are configured.
func (c HTTPConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	Enabled bool `koanf:"enabled"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
