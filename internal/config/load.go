package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "OBJTOOL_CONFIG"

// Load loads configuration with priority: defaults < file < flags.
func Load(ov Overrides) (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(ov.ConfigPath); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyOverrides(cfg, ov)

	return cfg, nil
}

// resolveConfigPath picks the config file: the --config flag, then
// $OBJTOOL_CONFIG, then the first file found in the search locations.
// Explicit paths are returned even if they do not exist so that Load reports
// them.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return findConfigFile()
}

// findConfigFile returns the first existing file among the working
// directory's objtool.yaml and .objtool.yaml and the user config directory.
func findConfigFile() string {
	candidates := []string{
		"objtool.yaml",
		".objtool.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns objtool's directory under the user config directory.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "objtool")
}

// loadFromFile merges a YAML file into cfg. Unknown keys are rejected and an
// empty file leaves cfg unchanged.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
