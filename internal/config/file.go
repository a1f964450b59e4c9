package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = ".orderpad.yaml"

// fileConfig mirrors Config for the optional YAML overlay. Only fields the
// user actually set override the environment-derived values.
type fileConfig struct {
	API struct {
		BaseURL      string `yaml:"base_url"`
		ProductsPath string `yaml:"products_path"`
		SavePath     string `yaml:"save_path"`
		Timeout      int    `yaml:"timeout"`
	} `yaml:"api"`
	Server struct {
		Host            string   `yaml:"host"`
		Port            string   `yaml:"port"`
		ReadTimeout     int      `yaml:"read_timeout"`
		WriteTimeout    int      `yaml:"write_timeout"`
		ShutdownTimeout int      `yaml:"shutdown_timeout"`
		APIKeys         []string `yaml:"api_keys"`
	} `yaml:"server"`
	LogLevel string `yaml:"log_level"`
}

// overlayFile merges .orderpad.yaml from dir into cfg.
// A missing file is not an error.
func overlayFile(cfg *Config, dir string) error {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if fc.API.BaseURL != "" {
		cfg.API.BaseURL = fc.API.BaseURL
	}
	if fc.API.ProductsPath != "" {
		cfg.API.ProductsPath = fc.API.ProductsPath
	}
	if fc.API.SavePath != "" {
		cfg.API.SavePath = fc.API.SavePath
	}
	if fc.API.Timeout > 0 {
		cfg.API.Timeout = fc.API.Timeout
	}
	if fc.Server.Host != "" {
		cfg.Server.Host = fc.Server.Host
	}
	if fc.Server.Port != "" {
		cfg.Server.Port = fc.Server.Port
	}
	if fc.Server.ReadTimeout > 0 {
		cfg.Server.ReadTimeout = fc.Server.ReadTimeout
	}
	if fc.Server.WriteTimeout > 0 {
		cfg.Server.WriteTimeout = fc.Server.WriteTimeout
	}
	if fc.Server.ShutdownTimeout > 0 {
		cfg.Server.ShutdownTimeout = fc.Server.ShutdownTimeout
	}
	if len(fc.Server.APIKeys) > 0 {
		cfg.Server.APIKeys = fc.Server.APIKeys
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	return nil
}
