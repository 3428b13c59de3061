package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables.
// LETP_TESTS carries the bench configuration base directory; the SIMDB_*
// variables mirror the remaining flags. It respects flags that have been
// explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("tests-root", os.Getenv("LETP_TESTS"), &cfg.TestsRoot)
	s.setString("db", os.Getenv("SIMDB_DB"), &cfg.DBPath)
	s.setString("site", os.Getenv("SIMDB_SITE"), &cfg.Site)
	s.setBoolFromString("verbose", os.Getenv("SIMDB_VERBOSE"), &cfg.Verbose)
}
