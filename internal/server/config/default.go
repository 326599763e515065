package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr     = "127.0.0.1:8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second

	DefaultRateLimit       = 1000
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:         DefaultHTTPAddr,
				ReadTimeout:  DefaultReadTimeout,
				WriteTimeout: DefaultWriteTimeout,
			},
			RateLimit:       DefaultRateLimit,
			EnableAudit:     true,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Metrics: MetricsSection{
			Enabled: true,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
