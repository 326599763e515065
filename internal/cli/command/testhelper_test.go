package command

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memod/internal/core/service"
	"github.com/yndnr/memod/internal/server/httpserver"
	"github.com/yndnr/memod/internal/storage/memory"
)

// mockServer creates a test HTTP server with custom handlers.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
}

// newMockServer creates a new mock server.
func newMockServer(t *testing.T) *mockServer {
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := m.handlers[r.URL.Path]; ok {
			handler(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// handle registers a handler for an exact path.
func (m *mockServer) handle(path string, handler http.HandlerFunc) {
	m.handlers[path] = handler
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorResponse writes an error response the way memod-server does.
func errorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("X-Error-Code", code)
	jsonResponse(w, status, map[string]string{
		"code":       code,
		"message":    message,
		"request_id": "req-test",
	})
}

// newMemodServer serves the real router over an in-memory store.
func newMemodServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := service.NewMemoService(memory.New())
	srv := httptest.NewServer(httpserver.NewRouter(&httpserver.RouterConfig{MemoService: svc}))
	t.Cleanup(srv.Close)
	return srv
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI runs the app against server with an isolated config file.
func runCLI(t *testing.T, server string, args ...string) runResult {
	t.Helper()
	return runCLIWith(t, "", filepath.Join(t.TempDir(), "cli.yaml"), server, args...)
}

func runCLIWith(t *testing.T, stdin, configPath, server string, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}

	full := []string{"memod-cli", "--config", configPath}
	if server != "" {
		full = append(full, "--server", server)
	}
	full = append(full, args...)

	err := app.Run(full)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func decodeJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return v
}
