package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config for the TOML config file.
type fileConfig struct {
	TestsRoot string `toml:"tests_root"`
	DBPath    string `toml:"db_path"`
	Site      string `toml:"site"`
	Verbose   *bool  `toml:"verbose"`
}

// loadFileConfig reads and parses a TOML config file.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// defaultConfigPath returns the default configuration file path.
// Returns ~/.simdb/config.toml if user home directory is accessible.
func defaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".simdb", "config.toml")
	}
	return ""
}

// applyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func applyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("tests-root", fc.TestsRoot, &cfg.TestsRoot)
	s.setString("db", fc.DBPath, &cfg.DBPath)
	s.setString("site", fc.Site, &cfg.Site)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
}

// fileExists checks if a file exists at the given path.
func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// Exported functions for use from main package without exposing internal helpers.

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (fileConfig, error) {
	return loadFileConfig(path)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return defaultConfigPath()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) {
	applyFileConfig(cfg, fc, changed)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	return fileExists(p)
}
