package command

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/memod/internal/cli/connection"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "memod-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "memod-cli")
	}
	if app.Version == "" {
		t.Error("Version should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"memo", "system", "config"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}

	flagNames := make(map[string]bool)
	for _, flag := range app.Flags {
		flagNames[flag.Names()[0]] = true
	}
	for _, name := range []string{"config", "server", "output", "wide", "timeout", "verbose"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestGlobalFlags_ConfigFileDefaults(t *testing.T) {
	srv := newMockServer(t)
	srv.handle("/memos", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, []memo{{ID: 1, Title: "from file"}})
	})

	cfgPath := filepath.Join(t.TempDir(), "cli.yaml")
	content := "default_server: " + srv.URL + "\ndefault_output: json\ntimeout: 2s\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	res := runCLIWith(t, "", cfgPath, "", "memo", "list")
	if res.err != nil {
		t.Fatalf("list: %v", res.err)
	}
	if list := decodeJSON[[]memo](t, res.stdout); len(list) != 1 || list[0].Title != "from file" {
		t.Errorf("list = %+v", list)
	}

	res = runCLIWith(t, "", cfgPath, "", "-o", "table", "memo", "list")
	if res.err != nil {
		t.Fatalf("list: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "ID") {
		t.Errorf("flag should override default_output, got %q", res.stdout)
	}
}

func TestGlobalFlags_InvalidConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(cfgPath, []byte("default_output: xml\n"), 0600); err != nil {
		t.Fatal(err)
	}

	res := runCLIWith(t, "", cfgPath, "localhost:1", "memo", "list")
	if res.err == nil || !strings.Contains(res.err.Error(), "default_output") {
		t.Errorf("error = %v, want config validation error", res.err)
	}
}

func TestVerbose(t *testing.T) {
	srv := newMemodServer(t)

	res := runCLI(t, srv.URL, "-V", "memo", "list")
	if res.err != nil {
		t.Fatalf("list: %v", res.err)
	}
	if !strings.Contains(res.stderr, "server: "+srv.URL) {
		t.Errorf("stderr = %q, want server line", res.stderr)
	}
}

func TestConfiguredTimeout(t *testing.T) {
	srv := newMockServer(t)
	srv.handle("/health", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		jsonResponse(w, http.StatusOK, statusResponse{Status: "healthy"})
	})

	res := runCLI(t, srv.URL, "--timeout", "20ms", "system", "health")
	if res.err == nil {
		t.Error("expected timeout error")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, &connection.APIError{Status: 404, Code: "MD-MEMO-4040", Message: "memo not found", RequestID: "req-1"})
	want := "error: [MD-MEMO-4040] memo not found\nrequest id: req-1\n"
	if buf.String() != want {
		t.Errorf("PrintError = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	PrintError(&buf, errors.New("boom"))
	if buf.String() != "error: boom\n" {
		t.Errorf("PrintError = %q", buf.String())
	}
}
