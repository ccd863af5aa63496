package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Credentials and the selected model live outside the project directory so a
// reinstall does not wipe them. The layout matches what the summarizer and its
// setup wizard expect:
//
//	~/.config/tg-summarizer/.env         API_ID, API_HASH, OLLAMA_MODEL
//	~/.config/tg-summarizer/tg_agent.session
const (
	configDirName = "tg-summarizer"
	envFileName   = ".env"

	// SessionName is the Telegram session file basename (without extension).
	SessionName = "tg_agent"

	// ModelKey is the dotenv key the summarizer reads the model tag from.
	ModelKey = "OLLAMA_MODEL"
)

// placeholder left behind by the sample .env; treated as unset.
const placeholderAPIID = "your_api_id_here"

// ConfigDir returns ~/.config/tg-summarizer, honoring XDG_CONFIG_HOME.
func ConfigDir() (string, error) {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, configDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".config", configDirName), nil
}

// EnvFile returns the path of the persisted dotenv file.
func EnvFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, envFileName), nil
}

// SessionFile returns the path of the Telegram session database.
func SessionFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionName+".session"), nil
}

// ReadEnvFile loads the dotenv file as a key/value map. A missing file is not
// an error; it yields an empty map.
func ReadEnvFile() (map[string]string, error) {
	path, err := EnvFile()
	if err != nil {
		return nil, err
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vals, nil
}

// SaveModel persists the selected model tag into the dotenv file, preserving
// every other key (notably the Telegram credentials).
func SaveModel(model string) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	vals, err := ReadEnvFile()
	if err != nil {
		return err
	}
	vals[ModelKey] = model
	path := filepath.Join(dir, envFileName)
	if err := godotenv.Write(vals, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// HasCredentials reports whether the dotenv file carries real Telegram API
// credentials (the setup wizard's placeholder does not count).
func HasCredentials() (bool, error) {
	vals, err := ReadEnvFile()
	if err != nil {
		return false, err
	}
	id, hash := vals["API_ID"], vals["API_HASH"]
	return id != "" && hash != "" && id != placeholderAPIID, nil
}
