package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhook/fixhook/internal/adapters/inbound/cli"
)

// isolate keeps the user's own config and FIXHOOK_* variables out of tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("FIXHOOK_CONFIG_DIR", t.TempDir())
	for _, name := range []string{"FIXHOOK_ENDPOINT", "FIXHOOK_TIMEOUT_MS", "FIXHOOK_VERBOSE", "FIXHOOK_DIFF_PREVIEW"} {
		t.Setenv(name, "")
	}
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// fakeService is a fix webhook that records requests and answers with a
// fixed body.
type fakeService struct {
	mu       sync.Mutex
	requests []map[string]any
	status   int
	body     string
	srv      *httptest.Server
}

func newFakeService(t *testing.T, body string) *fakeService {
	t.Helper()
	f := &fakeService{status: http.StatusOK, body: body}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeService) URL() string { return f.srv.URL }

func (f *fakeService) Requests() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.requests...)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
