package bootstrap

import (
	"context"
	"fmt"
	"runtime"
)

// installOllama makes sure the ollama binary is on PATH. One install attempt
// per platform, no retry: Homebrew on macOS, the official install script on
// Linux. Anything else gets manual instructions.
func (b *Bootstrap) installOllama(ctx context.Context) error {
	if _, err := fnLookPath("ollama"); err == nil {
		info("ollama already installed")
		return ErrSkipped
	}

	switch runtime.GOOS {
	case "darwin":
		if _, err := fnLookPath("brew"); err != nil {
			return fmt.Errorf("Homebrew not found; install Ollama manually from https://ollama.com/download and re-run")
		}
		info("Installing Ollama via Homebrew...")
		if err := fnRun(ctx, "brew", "install", "ollama"); err != nil {
			return fmt.Errorf("brew install ollama: %w", err)
		}
	case "linux":
		info("Installing Ollama via the official install script...")
		if err := fnRun(ctx, "sh", "-c", "curl -fsSL https://ollama.com/install.sh | sh"); err != nil {
			return fmt.Errorf("ollama install script: %w", err)
		}
	default:
		return fmt.Errorf("automatic install not supported on %s; install Ollama manually from https://ollama.com/download and re-run", runtime.GOOS)
	}

	if _, err := fnLookPath("ollama"); err != nil {
		return fmt.Errorf("ollama still not in PATH after install; open a new shell or install manually")
	}
	return nil
}
