package cliconfig

import (
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantDBPath  string
		expectError bool
	}{
		{
			name:       "explicit db path is kept",
			cfg:        Config{DBPath: "/bench/simdb.xml", TestsRoot: "/bench"},
			wantDBPath: "/bench/simdb.xml",
		},
		{
			name:       "db path derived from tests root",
			cfg:        Config{TestsRoot: "/bench"},
			wantDBPath: filepath.Join("/bench", "config", "uicc", "simdb.xml"),
		},
		{
			name:        "neither db path nor tests root",
			cfg:         Config{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()

			if tt.expectError {
				if err == nil {
					t.Error("Validate() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if cfg.DBPath != tt.wantDBPath {
				t.Errorf("DBPath = %q, want %q", cfg.DBPath, tt.wantDBPath)
			}
		})
	}
}

func TestConfigSetterRespectsChangedFlags(t *testing.T) {
	cfg := Config{Site: "flag-site"}
	s := newConfigSetter(map[string]bool{"site": true})

	s.setString("site", "file-site", &cfg.Site)
	if cfg.Site != "flag-site" {
		t.Errorf("Site = %q, want flag value to win", cfg.Site)
	}

	s.setString("tests-root", "/from/file", &cfg.TestsRoot)
	if cfg.TestsRoot != "/from/file" {
		t.Errorf("TestsRoot = %q, want /from/file", cfg.TestsRoot)
	}
}
