package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds CLI configuration. Values come from
// ~/.lazybear/config.yaml when present, overridden by LAZYBEAR_* env
// vars; everything has a default.
type Config struct {
	DBPath       string        `mapstructure:"db_path"`
	Model        string        `mapstructure:"model"`
	Language     string        `mapstructure:"language"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

func Default() *Config {
	return &Config{
		Model:        "gemini-3-flash-preview",
		Language:     "English",
		PollInterval: 5 * time.Second,
	}
}

// Load reads the config file and environment. A missing file is fine;
// an unreadable one is not.
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("model", cfg.Model)
	v.SetDefault("language", cfg.Language)
	v.SetDefault("poll_interval", cfg.PollInterval)

	v.SetEnvPrefix("LAZYBEAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := Path(); path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the config file location, "" when no home dir exists.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lazybear", "config.yaml")
}
