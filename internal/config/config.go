// Package config resolves lipredict settings from defaults, an optional
// YAML file, and LIPREDICT_* environment variables. Command-line flags are
// applied on top by cmd.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/lipredict/internal/llm"
)

// Default artifact names, resolved against the working directory.
const (
	DefaultModelPath   = "user_prediction_model.json"
	DefaultDatasetPath = "ss_cleaned.csv"
)

// Config holds all lipredict configuration.
type Config struct {
	ModelPath   string     `yaml:"model_path"`
	DatasetPath string     `yaml:"dataset_path"`
	DBPath      string     `yaml:"db_path"` // empty = XDG default
	Log         LogConfig  `yaml:"log"`
	LLM         llm.Config `yaml:"llm"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = stderr for CLI, state dir for the TUI
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		ModelPath:   DefaultModelPath,
		DatasetPath: DefaultDatasetPath,
		Log:         LogConfig{Level: "info"},
		LLM:         llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lipredict/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "lipredict", "config.yaml"), nil
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. A missing file is only an error when required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LIPREDICT_MODEL"); v != "" {
		c.ModelPath = v
	}
	if v := os.Getenv("LIPREDICT_DATASET"); v != "" {
		c.DatasetPath = v
	}
	if v := os.Getenv("LIPREDICT_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LIPREDICT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LIPREDICT_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	c.LLM.ApplyEnv()
}

// Validate reports settings that would make every command fail.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ModelPath) == "" {
		errs = append(errs, errors.New("model_path is required"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// Write saves c as YAML to path, creating parent directories.
func Write(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
