package bootstrap

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// serveStartupWait is the fixed delay between spawning `ollama serve` and the
// single follow-up probe. Fire, wait, check — no retry loop.
var serveStartupWait = 3 * time.Second

// ensureServing probes the Ollama health endpoint and, if it is down, spawns
// the server in the background and probes once more. The spawned server is
// deliberately left running when tgsetup exits.
func (b *Bootstrap) ensureServing(ctx context.Context) error {
	if err := b.client.Health(ctx); err == nil {
		info("Ollama server already running at %s", b.client.Host())
		return ErrSkipped
	}

	info("Starting ollama serve in the background...")
	if err := fnStartServer(); err != nil {
		return fmt.Errorf("start ollama serve: %w", err)
	}
	time.Sleep(serveStartupWait)

	if err := b.client.Health(ctx); err != nil {
		return fmt.Errorf("ollama did not come up within %s (%v); start it manually with 'ollama serve' and re-run", serveStartupWait, err)
	}
	info("Ollama server is up at %s", b.client.Host())
	return nil
}

// startServer launches `ollama serve` detached from tgsetup's lifetime.
func startServer() error {
	cmd := exec.Command("ollama", "serve")
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	// Drop our handle so the server outlives this process.
	if cmd.Process != nil {
		if err := cmd.Process.Release(); err != nil {
			warn("release ollama serve handle: %v", err)
		}
	}
	return nil
}
