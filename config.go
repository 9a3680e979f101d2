package khat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configEnv = "KHAT_CONFIG"

// Config holds the defaults read from the user's config file. Command-line
// flags take precedence over every field.
type Config struct {
	Mode  string `toml:"mode"`
	Pager bool   `toml:"pager"`
	Copy  bool   `toml:"copy"`
	Color bool   `toml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:  Plain.String(),
		Color: true,
	}
}

// ConfigPath picks the config file: explicit path, then $KHAT_CONFIG, then
// the per-user config directory.
func ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "khat", "config.toml")
}

// LoadConfig decodes the TOML file at path. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errInvalidConfig(fmt.Errorf("read config: %w", err))
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, errInvalidConfig(fmt.Errorf("decode TOML: %w", err))
	}

	if _, err := cfg.DefaultMode(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) DefaultMode() (Mode, error) {
	return ParseMode(c.Mode)
}
