package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.Server.HTTP.Addr, DefaultHTTPAddr)
	}
	if cfg.Server.HTTP.ReadTimeout != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", cfg.Server.HTTP.ReadTimeout, DefaultReadTimeout)
	}
	if cfg.Server.HTTP.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("WriteTimeout = %v, want %v", cfg.Server.HTTP.WriteTimeout, DefaultWriteTimeout)
	}
	if cfg.Server.HTTP.TLSEnabled() {
		t.Error("TLS should be disabled by default")
	}
	if cfg.Server.RateLimit != DefaultRateLimit {
		t.Errorf("RateLimit = %d, want %d", cfg.Server.RateLimit, DefaultRateLimit)
	}
	if !cfg.Server.EnableAudit {
		t.Error("audit should be enabled by default")
	}
	if cfg.Server.TrustProxyHeaders {
		t.Error("proxy headers should not be trusted by default")
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should be enabled by default")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
}

func TestVerify_Default(t *testing.T) {
	if err := Verify(Default()); err != nil {
		t.Errorf("Verify(Default()) error = %v", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr string
	}{
		{
			name:    "empty addr",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.Addr = "" },
			wantErr: "server.http.addr is required",
		},
		{
			name:    "addr without port",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.Addr = "localhost" },
			wantErr: "server.http.addr",
		},
		{
			name:    "cert without key",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.TLSCertFile = "/etc/memod/cert.pem" },
			wantErr: "must be set together",
		},
		{
			name:    "key without cert",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.TLSKeyFile = "/etc/memod/key.pem" },
			wantErr: "must be set together",
		},
		{
			name:    "zero read timeout",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.ReadTimeout = 0 },
			wantErr: "read_timeout",
		},
		{
			name:    "negative write timeout",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.WriteTimeout = -time.Second },
			wantErr: "write_timeout",
		},
		{
			name:    "zero shutdown timeout",
			mutate:  func(c *ServerConfig) { c.Server.ShutdownTimeout = 0 },
			wantErr: "shutdown_timeout",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *ServerConfig) { c.Server.RateLimit = -1 },
			wantErr: "rate_limit",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *ServerConfig) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *ServerConfig) { c.Log.Format = "xml" },
			wantErr: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Verify(cfg)
			if err == nil {
				t.Fatalf("Verify() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Verify() error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestVerify_Accepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServerConfig)
	}{
		{"tls pair", func(c *ServerConfig) {
			c.Server.HTTP.TLSCertFile = "/etc/memod/cert.pem"
			c.Server.HTTP.TLSKeyFile = "/etc/memod/key.pem"
		}},
		{"rate limit disabled", func(c *ServerConfig) { c.Server.RateLimit = 0 }},
		{"text format", func(c *ServerConfig) { c.Log.Format = "text" }},
		{"upper case level", func(c *ServerConfig) { c.Log.Level = "DEBUG" }},
		{"all interfaces", func(c *ServerConfig) { c.Server.HTTP.Addr = ":8080" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := Verify(cfg); err != nil {
				t.Errorf("Verify() error = %v", err)
			}
		})
	}
}
