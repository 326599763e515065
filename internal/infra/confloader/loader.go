package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "MEMOD_"

// envLevelSeparator separates nesting levels in environment variable names,
// leaving single underscores for key names such as tls_cert_file.
const envLevelSeparator = "__"

// Loader layers a YAML file, environment variables and explicit overrides
// onto a config struct.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
	overrides map[string]any
	sources   []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the YAML file to read. An empty path skips the file layer.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithOverrides adds values keyed by dotted path ("server.http.addr") that
// win over every other layer. Command-line flags use this.
func WithOverrides(values map[string]any) Option {
	return func(l *Loader) {
		if l.overrides == nil {
			l.overrides = make(map[string]any, len(values))
		}
		for k, v := range values {
			l.overrides[k] = v
		}
	}
}

// NewLoader creates a configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load applies the file, the environment and the overrides in that order
// and unmarshals the result into target. Fields no layer sets keep the
// value they had, so target is normally pre-filled with defaults.
func (l *Loader) Load(target any) error {
	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return fmt.Errorf("load config file %s: %w", l.filePath, err)
		}
		l.sources = append(l.sources, "file:"+l.filePath)
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", l.envKey), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	l.sources = append(l.sources, "env:"+l.envPrefix)

	if len(l.overrides) > 0 {
		if err := l.k.Load(mapProvider(maps.Unflatten(l.overrides, ".")), nil); err != nil {
			return fmt.Errorf("load overrides: %w", err)
		}
		l.sources = append(l.sources, "overrides")
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// envKey maps MEMOD_SERVER__HTTP__TLS_CERT_FILE to server.http.tls_cert_file.
func (l *Loader) envKey(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, l.envPrefix))
	return strings.ReplaceAll(name, envLevelSeparator, ".")
}

// Sources lists the layers applied by the last Load, lowest priority first.
func (l *Loader) Sources() []string {
	return append([]string(nil), l.sources...)
}

// String returns a loaded value by dotted key.
func (l *Loader) String(key string) string {
	return l.k.String(key)
}
