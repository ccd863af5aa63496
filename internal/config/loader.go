package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the bootstrap parameters.
// Zero values mean "unspecified" and are replaced by Default() via WithDefaults.
type Config struct {
	OllamaHost   string   `json:"ollama_host" yaml:"ollama_host" toml:"ollama_host"`
	DefaultModel string   `json:"default_model" yaml:"default_model" toml:"default_model"`
	Presets      []string `json:"presets" yaml:"presets" toml:"presets"`
	VenvDir      string   `json:"venv_dir" yaml:"venv_dir" toml:"venv_dir"`
	Requirements string   `json:"requirements" yaml:"requirements" toml:"requirements"`
	EntryScript  string   `json:"entry_script" yaml:"entry_script" toml:"entry_script"`
	SetupScript  string   `json:"setup_script" yaml:"setup_script" toml:"setup_script"`
	LauncherName string   `json:"launcher_name" yaml:"launcher_name" toml:"launcher_name"`
	PythonMin    string   `json:"python_min" yaml:"python_min" toml:"python_min"`
}

// Default returns the built-in bootstrap parameters. The model presets and the
// default tag mirror what the downstream summarizer documents.
func Default() Config {
	return Config{
		OllamaHost:   "http://127.0.0.1:11434",
		DefaultModel: "llama3.2",
		Presets:      []string{"llama3.2", "qwen2.5:7b", "mistral"},
		VenvDir:      "venv",
		Requirements: "requirements.txt",
		EntryScript:  "summarize.py",
		SetupScript:  "setup.py",
		LauncherName: "summarize",
		PythonMin:    "3.10",
	}
}

// WithDefaults fills unspecified fields from Default().
func (c Config) WithDefaults() Config {
	d := Default()
	if c.OllamaHost == "" {
		c.OllamaHost = d.OllamaHost
	}
	if c.DefaultModel == "" {
		c.DefaultModel = d.DefaultModel
	}
	if len(c.Presets) == 0 {
		c.Presets = d.Presets
	}
	if c.VenvDir == "" {
		c.VenvDir = d.VenvDir
	}
	if c.Requirements == "" {
		c.Requirements = d.Requirements
	}
	if c.EntryScript == "" {
		c.EntryScript = d.EntryScript
	}
	if c.SetupScript == "" {
		c.SetupScript = d.SetupScript
	}
	if c.LauncherName == "" {
		c.LauncherName = d.LauncherName
	}
	if c.PythonMin == "" {
		c.PythonMin = d.PythonMin
	}
	return c
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides onto cfg. OLLAMA_MODEL matches what
// the downstream summarizer reads; TGSUM_* are bootstrap-only knobs.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("TGSUM_OLLAMA_HOST"); v != "" {
		cfg.OllamaHost = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv("TGSUM_VENV_DIR"); v != "" {
		cfg.VenvDir = v
	}
	return cfg
}
