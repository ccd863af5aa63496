package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"tgsetup/internal/common/fsutil"
	"tgsetup/internal/config"
)

// runSetup hands off to the external credential wizard (setup.py). It owns
// the Telegram API prompts and the first login; we only propagate its exit
// status and make the selected model visible to it.
func (b *Bootstrap) runSetup(ctx context.Context) error {
	if b.opts.SkipSetup {
		info("Skipping credential setup (--skip-setup); run it later via the setup script")
		return ErrSkipped
	}
	script := filepath.Join(b.dir, b.cfg.SetupScript)
	if !fsutil.PathExists(script) {
		return fmt.Errorf("%s not found; run tgsetup from the TG Summarizer checkout", script)
	}
	env := map[string]string{}
	if b.model != "" {
		env[config.ModelKey] = b.model
	}
	info("Launching credential setup...")
	if err := fnInteractive(ctx, b.dir, env, b.venvPython(), script); err != nil {
		return fmt.Errorf("credential setup: %w", err)
	}
	return nil
}
