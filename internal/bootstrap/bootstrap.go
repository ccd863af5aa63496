// Package bootstrap provisions a machine for the TG Summarizer CLI: it checks
// the Python runtime, installs and starts Ollama, pulls the chosen model,
// builds the project venv, writes the launcher, and hands off to the external
// credential wizard. The sequence is an explicit pipeline of typed steps run
// fail-fast; re-running after a failure is safe because every step checks for
// work already done.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tgsetup/internal/config"
	"tgsetup/internal/ollama"
)

// Options are the command-line knobs of a bootstrap run.
type Options struct {
	Dir       string // install directory (the summarizer checkout); default "."
	Model     string // model tag; skips the interactive menu when set
	Yes       bool   // non-interactive: accept defaults everywhere
	SkipSetup bool   // do not run the credential wizard
	Host      string // Ollama base URL override
}

// Bootstrap carries the state shared between steps: the resolved install
// directory is fixed at construction, the python interpreter and the selected
// model are filled in by the steps that determine them.
type Bootstrap struct {
	cfg    config.Config
	opts   Options
	dir    string
	client *ollama.Client

	python string // interpreter path, set by the python step
	model  string // selected tag, set by the model step
}

// New resolves the install directory and builds the step context.
func New(cfg config.Config, opts Options) (*Bootstrap, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve install dir: %w", err)
	}
	host := cfg.OllamaHost
	if opts.Host != "" {
		host = opts.Host
	}
	return &Bootstrap{
		cfg:    cfg,
		opts:   opts,
		dir:    abs,
		client: ollama.New(host),
	}, nil
}

// Dir returns the resolved install directory.
func (b *Bootstrap) Dir() string { return b.dir }

// Model returns the selected model tag (empty before the model step ran).
func (b *Bootstrap) Model() string { return b.model }

// Steps is the fixed bootstrap sequence. Order matters: nothing may run
// before the runtime check, and the credential wizard needs the venv.
func (b *Bootstrap) Steps() []Step {
	return []Step{
		{Name: "python", Run: b.checkPython},
		{Name: "ollama-install", Run: b.installOllama},
		{Name: "ollama-serve", Run: b.ensureServing},
		{Name: "model", Run: b.ensureModel},
		{Name: "venv", Run: b.installVenv},
		{Name: "launcher", Run: b.writeLauncher},
		{Name: "setup", Run: b.runSetup},
	}
}

// Run executes the whole pipeline and prints a per-step summary. On failure
// the returned error names the failing step.
func (b *Bootstrap) Run(ctx context.Context) error {
	info("Bootstrapping TG Summarizer in %s", b.dir)
	results, err := NewRunner(b.Steps()...).Run(ctx)
	fmt.Println()
	for _, r := range results {
		switch {
		case r.Failed():
			fmt.Printf("  %-15s %s  %v\n", r.Name, failMark, r.Err)
		case r.Skipped:
			fmt.Printf("  %-15s %s\n", r.Name, skipMark)
		default:
			fmt.Printf("  %-15s %s  (%s)\n", r.Name, okMark, r.Duration.Round(timeUnit))
		}
	}
	fmt.Println()
	if err != nil {
		errl("Bootstrap failed: %v", err)
		return err
	}
	launcher := filepath.Join(b.dir, b.cfg.LauncherName)
	info("Done. Summarize your unread messages with: %s --unread", launcher)
	return nil
}

// venvPython is the interpreter inside the project venv.
func (b *Bootstrap) venvPython() string {
	return filepath.Join(b.dir, b.cfg.VenvDir, "bin", "python")
}

// exportModel makes the selection visible to child processes and persists it
// for the summarizer.
func (b *Bootstrap) exportModel(model string) {
	b.model = model
	if err := os.Setenv(config.ModelKey, model); err != nil {
		warn("could not export %s: %v", config.ModelKey, err)
	}
	if err := fnSaveModel(model); err != nil {
		// the wizard writes the dotenv file too, so this is not fatal
		warn("could not persist model selection: %v", err)
	}
}
