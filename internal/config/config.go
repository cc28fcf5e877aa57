package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines tool configuration. The annotation core itself takes no
// configuration; these settings drive the CLI and server surfaces around it.
type Config struct {
	DB  DBConfig  `yaml:"db"`
	Log LogConfig `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		DB: DBConfig{
			Path: "amrannot.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("AMRANNOT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("AMRANNOT_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("AMRANNOT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
