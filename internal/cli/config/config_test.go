package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultServer != "localhost:8080" {
		t.Errorf("DefaultServer = %q, want %q", cfg.DefaultServer, "localhost:8080")
	}
	if cfg.DefaultOutput != "table" {
		t.Errorf("DefaultOutput = %q, want %q", cfg.DefaultOutput, "table")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join(".memod", "cli.yaml")) {
		t.Errorf("Path = %q, should end with .memod/cli.yaml", path)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load should not error for nonexistent file: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte("default_server: memo.internal:9000\ntimeout: 5s\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultServer != "memo.internal:9000" {
		t.Errorf("DefaultServer = %q", cfg.DefaultServer)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.DefaultOutput != "table" {
		t.Errorf("DefaultOutput = %q, want default table", cfg.DefaultOutput)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "default_server: [", "parse"},
		{"bad output", "default_output: xml\n", "default_output"},
		{"bad timeout", "timeout: -1s\n", "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cli.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "cli.yaml")

	cfg := &CLIConfig{DefaultServer: "https://memo.example.com", DefaultOutput: "json", Timeout: 10 * time.Second}
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := Save(&CLIConfig{}, path); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}
