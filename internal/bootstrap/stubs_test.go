package bootstrap

import (
	"context"
	"testing"

	"tgsetup/internal/config"
)

// Helpers to swap the fn* indirections for a single test.

func stubLookPath(t *testing.T, f func(string) (string, error)) {
	t.Helper()
	old := fnLookPath
	fnLookPath = f
	t.Cleanup(func() { fnLookPath = old })
}

func stubRun(t *testing.T, f func(context.Context, string, ...string) error) {
	t.Helper()
	old := fnRun
	fnRun = f
	t.Cleanup(func() { fnRun = old })
}

func stubCapture(t *testing.T, f func(context.Context, string, ...string) (string, error)) {
	t.Helper()
	old := fnCapture
	fnCapture = f
	t.Cleanup(func() { fnCapture = old })
}

func stubStartServer(t *testing.T, f func() error) {
	t.Helper()
	old := fnStartServer
	fnStartServer = f
	t.Cleanup(func() { fnStartServer = old })
}

func stubPromptModel(t *testing.T, f func(config.Config) (string, error)) {
	t.Helper()
	old := fnPromptModel
	fnPromptModel = f
	t.Cleanup(func() { fnPromptModel = old })
}

func stubSaveModel(t *testing.T, f func(string) error) {
	t.Helper()
	old := fnSaveModel
	fnSaveModel = f
	t.Cleanup(func() { fnSaveModel = old })
}

func stubInteractive(t *testing.T, f func(context.Context, string, map[string]string, string, ...string) error) {
	t.Helper()
	old := fnInteractive
	fnInteractive = f
	t.Cleanup(func() { fnInteractive = old })
}

// newTestBootstrap builds a Bootstrap rooted in a temp dir against the given
// Ollama host.
func newTestBootstrap(t *testing.T, host string) *Bootstrap {
	t.Helper()
	b, err := New(config.Default(), Options{Dir: t.TempDir(), Host: host, Yes: true})
	if err != nil {
		t.Fatalf("new bootstrap: %v", err)
	}
	return b
}
