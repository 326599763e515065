package config

import "time"

// CLIConfig is the configuration for memod-cli.
type CLIConfig struct {
	DefaultServer string        `yaml:"default_server"`
	DefaultOutput string        `yaml:"default_output"` // table, json, yaml
	Timeout       time.Duration `yaml:"timeout"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		DefaultServer: "localhost:8080",
		DefaultOutput: "table",
		Timeout:       30 * time.Second,
	}
}
