package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"tgsetup/internal/common/fsutil"
	"tgsetup/internal/config"
)

// Doctor runs the pre-flight checks the summarizer itself performs on start,
// without changing anything: credentials, session, venv, server, model. All
// checks run even after a failure so the report is complete.
func (b *Bootstrap) Doctor(ctx context.Context) error {
	failures := 0
	check := func(name string, err error) {
		if err != nil {
			failures++
			fmt.Printf("  %-12s %s  %v\n", name, failMark, err)
			return
		}
		fmt.Printf("  %-12s %s\n", name, okMark)
	}

	check("credentials", b.checkCredentials())
	check("session", b.checkSession())
	check("venv", b.checkVenv())
	check("ollama", b.client.Health(ctx))
	check("model", b.checkModel(ctx))

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed; run tgsetup to repair", failures)
	}
	info("Everything looks good.")
	return nil
}

func (b *Bootstrap) checkCredentials() error {
	ok, err := config.HasCredentials()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("telegram API credentials not configured")
	}
	return nil
}

func (b *Bootstrap) checkSession() error {
	path, err := config.SessionFile()
	if err != nil {
		return err
	}
	if !fsutil.PathExists(path) {
		return fmt.Errorf("telegram session not found at %s", path)
	}
	return nil
}

func (b *Bootstrap) checkVenv() error {
	venv := filepath.Join(b.dir, b.cfg.VenvDir)
	if !fsutil.PathExists(venv) {
		return fmt.Errorf("venv missing at %s", venv)
	}
	return nil
}

// checkModel verifies the persisted model (or the default) is present locally.
func (b *Bootstrap) checkModel(ctx context.Context) error {
	model := b.cfg.DefaultModel
	if vals, err := config.ReadEnvFile(); err == nil {
		if m := vals[config.ModelKey]; m != "" {
			model = m
		}
	}
	has, err := b.client.Has(ctx, model)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("model %s not downloaded", model)
	}
	return nil
}
