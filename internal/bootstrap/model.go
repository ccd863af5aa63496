package bootstrap

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"tgsetup/internal/config"
	"tgsetup/internal/ollama"
)

// ensureModel resolves the model tag, exports and persists it, and pulls it
// unless the host already has it.
func (b *Bootstrap) ensureModel(ctx context.Context) error {
	model, err := resolveModel(b.opts.Model, b.opts.Yes, b.cfg, fnPromptModel)
	if err != nil {
		return err
	}
	info("Selected model: %s", model)
	b.exportModel(model)

	has, err := b.client.Has(ctx, model)
	if err != nil {
		return fmt.Errorf("list local models: %w", err)
	}
	if has {
		info("Model %s already downloaded", model)
		return nil
	}

	info("Pulling %s (this can take several minutes)...", model)
	if err := b.client.Pull(ctx, model, pullProgressPrinter()); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// resolveModel picks the model tag: an explicit flag wins, non-interactive
// runs take the default, otherwise the user is prompted. An empty answer
// resolves to the default.
func resolveModel(flag string, yes bool, cfg config.Config, prompt func(config.Config) (string, error)) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if yes {
		return cfg.DefaultModel, nil
	}
	m, err := prompt(cfg)
	if err != nil {
		return "", err
	}
	if m == "" {
		return cfg.DefaultModel, nil
	}
	return m, nil
}

// customSentinel marks the "type a name" menu entry.
const customSentinel = "\x00custom"

// promptModel shows the preset menu plus a free-form entry.
func promptModel(cfg config.Config) (string, error) {
	opts := make([]huh.Option[string], 0, len(cfg.Presets)+1)
	for _, p := range cfg.Presets {
		label := p
		if p == cfg.DefaultModel {
			label = p + " (default)"
		}
		opts = append(opts, huh.NewOption(label, p))
	}
	opts = append(opts, huh.NewOption("Other (type a name)", customSentinel))

	choice := cfg.DefaultModel
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which model should summarize your messages?").
			Options(opts...).
			Value(&choice),
	)).Run(); err != nil {
		return "", err
	}
	if choice != customSentinel {
		return choice, nil
	}

	var custom string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Model name").
			Placeholder(cfg.DefaultModel).
			Value(&custom),
	)).Run(); err != nil {
		return "", err
	}
	return custom, nil
}

// pullProgressPrinter renders the streamed pull status on a single line.
func pullProgressPrinter() func(ollama.PullProgress) {
	var lastStatus string
	return func(p ollama.PullProgress) {
		if p.Total > 0 {
			pct := p.Completed * 100 / p.Total
			fmt.Printf("\r  %s %3d%% (%s / %s)   ", p.Status, pct, humanMB(p.Completed), humanMB(p.Total))
			lastStatus = p.Status
			return
		}
		if p.Status != lastStatus {
			fmt.Printf("\r  %s                                        \n", p.Status)
			lastStatus = p.Status
		}
	}
}

func humanMB(b int64) string {
	return fmt.Sprintf("%.1f MB", float64(b)/1e6)
}
