package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"tgsetup/internal/common/fsutil"
)

// launcherScript builds the wrapper that re-enters the project venv. The
// paths are absolute so the launcher works from any working directory.
func launcherScript(dir, venvDir, entry string) string {
	python := filepath.Join(dir, venvDir, "bin", "python")
	script := filepath.Join(dir, entry)
	return fmt.Sprintf(`#!/usr/bin/env bash
# Generated by tgsetup. Safe to delete; re-run tgsetup to regenerate.
exec %q %q "$@"
`, python, script)
}

// writeLauncher (re)writes the executable wrapper next to the entry script.
func (b *Bootstrap) writeLauncher(ctx context.Context) error {
	path := filepath.Join(b.dir, b.cfg.LauncherName)
	content := launcherScript(b.dir, b.cfg.VenvDir, b.cfg.EntryScript)
	if err := fsutil.WriteExecutable(path, content); err != nil {
		return fmt.Errorf("write launcher: %w", err)
	}
	info("Launcher written to %s", path)
	return nil
}
