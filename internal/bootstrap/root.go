package bootstrap

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tgsetup/internal/config"
	"tgsetup/internal/ollama"
)

// buildRootCmd constructs the command tree. The bare command runs the whole
// pipeline; subcommands run individual pieces for repair work.
func buildRootCmd() *cobra.Command {
	var (
		opts       Options
		configPath string
		logLvl     string
	)

	newBootstrap := func() (*Bootstrap, error) {
		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
			cfg = loaded.WithDefaults()
		}
		cfg = config.ApplyEnv(cfg)
		return New(cfg, opts)
	}

	root := &cobra.Command{
		Use:           "tgsetup",
		Short:         "One-time environment bootstrap for the TG Summarizer CLI",
		Long:          "tgsetup provisions everything the TG Summarizer needs:\nPython runtime check, Ollama install and startup, model download,\nproject venv, the summarize launcher, and the credential wizard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SetLogLevel(logLvl)
			if logLvl == "debug" {
				l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
				ollama.SetLogger(l)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBootstrap()
			if err != nil {
				return err
			}
			return b.Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&logLvl, "log-level", envStr("TGSUM_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Optional config file (.yaml|.json|.toml)")
	root.PersistentFlags().StringVar(&opts.Dir, "dir", ".", "TG Summarizer checkout directory")
	root.PersistentFlags().StringVar(&opts.Host, "host", "", "Ollama base URL (default "+ollama.DefaultHost+")")
	root.Flags().StringVar(&opts.Model, "model", "", "Model tag to use; skips the interactive menu")
	root.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Non-interactive: accept defaults")
	root.Flags().BoolVar(&opts.SkipSetup, "skip-setup", false, "Do not run the credential wizard")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the environment without changing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBootstrap()
			if err != nil {
				return err
			}
			return b.Doctor(cmd.Context())
		},
	}

	modelCmd := &cobra.Command{
		Use:   "model",
		Short: "Select and download a model (requires a running server)",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBootstrap()
			if err != nil {
				return err
			}
			if err := b.client.Health(cmd.Context()); err != nil {
				return fmt.Errorf("%w; start it with 'ollama serve' first", err)
			}
			return b.ensureModel(cmd.Context())
		},
	}
	modelCmd.Flags().StringVar(&opts.Model, "model", "", "Model tag to use; skips the interactive menu")
	modelCmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Non-interactive: accept the default")

	launcherCmd := &cobra.Command{
		Use:   "launcher",
		Short: "(Re)write the summarize launcher script",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBootstrap()
			if err != nil {
				return err
			}
			return b.writeLauncher(cmd.Context())
		},
	}

	root.AddCommand(checkCmd, modelCmd, launcherCmd)
	return root
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	if err := buildRootCmd().Execute(); err != nil {
		errl("%v", err)
		return 1
	}
	return 0
}
