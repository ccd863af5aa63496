package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tgsetup/internal/config"
)

func TestRunSetupSkipFlag(t *testing.T) {
	b := newTestBootstrap(t, "")
	b.opts.SkipSetup = true
	stubInteractive(t, func(ctx context.Context, dir string, env map[string]string, name string, args ...string) error {
		t.Fatalf("wizard must not run with --skip-setup")
		return nil
	})
	if err := b.runSetup(context.Background()); !errors.Is(err, ErrSkipped) {
		t.Fatalf("expected skip, got %v", err)
	}
}

func TestRunSetupMissingScript(t *testing.T) {
	b := newTestBootstrap(t, "")
	err := b.runSetup(context.Background())
	if err == nil || !strings.Contains(err.Error(), "setup.py") {
		t.Fatalf("expected missing-script error, got %v", err)
	}
}

func TestRunSetupInvokesWizard(t *testing.T) {
	b := newTestBootstrap(t, "")
	b.model = "qwen2.5:7b"
	if err := os.WriteFile(filepath.Join(b.Dir(), "setup.py"), []byte("print('hi')\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var gotName string
	var gotArgs []string
	var gotEnv map[string]string
	stubInteractive(t, func(ctx context.Context, dir string, env map[string]string, name string, args ...string) error {
		gotName, gotArgs, gotEnv = name, args, env
		return nil
	})
	if err := b.runSetup(context.Background()); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !strings.HasSuffix(gotName, filepath.Join("venv", "bin", "python")) {
		t.Fatalf("wizard must run under the venv interpreter, got %q", gotName)
	}
	if len(gotArgs) != 1 || !strings.HasSuffix(gotArgs[0], "setup.py") {
		t.Fatalf("unexpected args: %v", gotArgs)
	}
	if gotEnv[config.ModelKey] != "qwen2.5:7b" {
		t.Fatalf("model not exported to wizard: %v", gotEnv)
	}
}

func TestRunSetupPropagatesExitStatus(t *testing.T) {
	b := newTestBootstrap(t, "")
	if err := os.WriteFile(filepath.Join(b.Dir(), "setup.py"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	stubInteractive(t, func(ctx context.Context, dir string, env map[string]string, name string, args ...string) error {
		return errors.New("exit status 1")
	})
	if err := b.runSetup(context.Background()); err == nil {
		t.Fatalf("wizard failure must fail the step")
	}
}
