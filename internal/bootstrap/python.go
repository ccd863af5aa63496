package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"tgsetup/internal/common/fsutil"
)

// parseVersionPair parses "3.10" into (3, 10).
func parseVersionPair(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid version %q, want major.minor", s)
	}
	maj, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid major in %q", s)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minor in %q", s)
	}
	return maj, min, nil
}

// parsePythonVersion extracts (major, minor) from `python3 --version` output,
// e.g. "Python 3.12.4".
func parsePythonVersion(out string) (int, int, error) {
	fields := strings.Fields(out)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "python") {
		return 0, 0, fmt.Errorf("unexpected version output %q", out)
	}
	return parseVersionPair(fields[1])
}

// checkPython locates a Python 3 interpreter and verifies it meets the
// configured minimum. Nothing else runs if this fails.
func (b *Bootstrap) checkPython(ctx context.Context) error {
	wantMaj, wantMin, err := parseVersionPair(b.cfg.PythonMin)
	if err != nil {
		return fmt.Errorf("config python_min: %w", err)
	}

	exe, err := fnLookPath("python3")
	if err != nil {
		if exe, err = fnLookPath("python"); err != nil {
			return fmt.Errorf("python3 not found in PATH; install Python %s or newer from https://www.python.org/downloads/ and re-run", b.cfg.PythonMin)
		}
	}

	out, err := fnCapture(ctx, exe, "--version")
	if err != nil {
		return fmt.Errorf("%s --version: %w", exe, err)
	}
	maj, min, err := parsePythonVersion(out)
	if err != nil {
		return err
	}
	if maj < wantMaj || (maj == wantMaj && min < wantMin) {
		return fmt.Errorf("Python %s+ required, found %d.%d at %s; upgrade and re-run", b.cfg.PythonMin, maj, min, exe)
	}
	debug("using %s (%s)", exe, out)
	b.python = exe
	return nil
}

// installVenv creates the project venv iff it does not exist yet, then
// installs the dependency manifest into it. pip itself is idempotent.
func (b *Bootstrap) installVenv(ctx context.Context) error {
	venv := filepath.Join(b.dir, b.cfg.VenvDir)
	if fsutil.PathExists(venv) {
		info("Reusing existing venv at %s", venv)
	} else {
		info("Creating venv at %s", venv)
		if err := fnRun(ctx, b.pythonExe(), "-m", "venv", venv); err != nil {
			return fmt.Errorf("create venv: %w", err)
		}
	}

	req := filepath.Join(b.dir, b.cfg.Requirements)
	if !fsutil.PathExists(req) {
		return fmt.Errorf("%s not found; run tgsetup from the TG Summarizer checkout", req)
	}
	pip := filepath.Join(venv, "bin", "pip")
	info("Installing Python dependencies...")
	if err := fnRun(ctx, pip, "install", "-r", req); err != nil {
		return fmt.Errorf("pip install: %w", err)
	}
	return nil
}

// pythonExe falls back to python3 when the check step did not run (e.g. a
// subcommand invoking a single step).
func (b *Bootstrap) pythonExe() string {
	if b.python != "" {
		return b.python
	}
	return "python3"
}
