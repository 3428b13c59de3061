package cliconfig

import (
	"fmt"
	"path/filepath"
)

// DefaultDBRelPath is the sim database location below the tests root.
const DefaultDBRelPath = "config/uicc/simdb.xml"

// Config holds CLI configuration for simdb.
type Config struct {
	// TestsRoot is the bench configuration base directory (LETP_TESTS).
	TestsRoot string

	// DBPath is the sim database file. Derived from TestsRoot when empty.
	DBPath string

	// Site is the active bench site, appended to Amarisoft carrier names.
	Site string

	// Verbose enables debug-level lookup diagnostics.
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the configuration for errors and sets derived defaults.
// The database path must be resolvable: either given directly or derived
// from the tests root.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		if c.TestsRoot == "" {
			return fmt.Errorf("db path is required (set --db, or LETP_TESTS / --tests-root to derive it)")
		}
		c.DBPath = filepath.Join(c.TestsRoot, filepath.FromSlash(DefaultDBRelPath))
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
