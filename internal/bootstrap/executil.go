package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Unified command runner
type Cmd struct {
	Path        string
	Args        []string
	Env         map[string]string // additional env vars
	Dir         string            // working directory
	Interactive bool              // wire the caller's stdin through (prompting children)
}

func RunCmd(ctx context.Context, c Cmd) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	// inherit environment
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if c.Interactive {
		cmd.Stdin = os.Stdin
	}
	return cmd.Run()
}

// Helpers built on RunCmd
func runCmd(ctx context.Context, name string, args ...string) error {
	return RunCmd(ctx, Cmd{Path: name, Args: args})
}

func runInteractive(ctx context.Context, dir string, env map[string]string, name string, args ...string) error {
	return RunCmd(ctx, Cmd{Path: name, Args: args, Dir: dir, Env: env, Interactive: true})
}

// captureOutput runs a command and returns its combined output, trimmed.
func captureOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
