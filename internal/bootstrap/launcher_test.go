package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLauncherScriptEmbedsAbsolutePaths(t *testing.T) {
	s := launcherScript("/opt/tg-summarizer", "venv", "summarize.py")
	if !strings.HasPrefix(s, "#!/usr/bin/env bash\n") {
		t.Fatalf("missing shebang: %q", s)
	}
	if !strings.Contains(s, `"/opt/tg-summarizer/venv/bin/python"`) {
		t.Fatalf("venv python not embedded: %q", s)
	}
	if !strings.Contains(s, `"/opt/tg-summarizer/summarize.py"`) {
		t.Fatalf("entry script not embedded: %q", s)
	}
	if !strings.Contains(s, `"$@"`) {
		t.Fatalf("arguments not forwarded: %q", s)
	}
}

func TestWriteLauncher(t *testing.T) {
	b := newTestBootstrap(t, "")
	if err := b.writeLauncher(context.Background()); err != nil {
		t.Fatalf("write: %v", err)
	}
	path := filepath.Join(b.Dir(), "summarize")
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if runtime.GOOS != "windows" && fi.Mode()&0o111 == 0 {
		t.Fatalf("launcher not executable: %v", fi.Mode())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// the embedded interpreter path must be under the resolved install dir,
	// so invoking the launcher from anywhere re-enters the same venv
	if !strings.Contains(string(content), filepath.Join(b.Dir(), "venv", "bin", "python")) {
		t.Fatalf("launcher does not pin the install dir: %s", content)
	}

	// rewriting is idempotent
	if err := b.writeLauncher(context.Background()); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
}
