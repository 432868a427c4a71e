package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_EmptyConfig(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// check defaults applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Goal != 50 {
		t.Errorf("Goal = %d, want 50", cfg.Goal)
	}
	if cfg.Title != "" {
		t.Errorf("Title = %q, want empty", cfg.Title)
	}
	if cfg.Storage.Driver != "file" {
		t.Errorf("Storage.Driver = %q, want file", cfg.Storage.Driver)
	}
	if cfg.Storage.Path != "summitcheckin-data" {
		t.Errorf("Storage.Path = %q, want summitcheckin-data", cfg.Storage.Path)
	}
}

func TestParse_FullConfig(t *testing.T) {
	yaml := `
title: Intel Sustainability Summit
port: 9090
goal: 120
storage:
  driver: sqlite
  path: /var/lib/summit/checkins.db
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Title != "Intel Sustainability Summit" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.Goal != 120 {
		t.Errorf("Goal = %d, want 120", cfg.Goal)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Storage.Driver = %q, want sqlite", cfg.Storage.Driver)
	}
	if cfg.Storage.Path != "/var/lib/summit/checkins.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
}

func TestParse_DefaultPathPerDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"file", "summitcheckin-data"},
		{"sqlite", "summitcheckin.db"},
		{"memory", ""},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg, err := Parse([]byte("storage:\n  driver: " + tt.driver + "\n"))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.Storage.Path != tt.want {
				t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "port: [", "failed to parse YAML"},
		{"negative port", "port: -1", "port must be between 1 and 65535"},
		{"port too large", "port: 70000", "port must be between 1 and 65535"},
		{"negative goal", "goal: -3", "goal must be positive"},
		{"unknown driver", "storage:\n  driver: redis", `storage.driver must be`},
		{"port not a number", "port: eighty", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() should return error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("SUMMIT_TITLE", "Override Title")
	t.Setenv("SUMMIT_PORT", "9191")
	t.Setenv("SUMMIT_GOAL", "7")
	t.Setenv("SUMMIT_STORAGE_DRIVER", "memory")
	t.Setenv("SUMMIT_STORAGE_PATH", "ignored")

	yaml := `
title: File Title
port: 8081
goal: 100
storage:
  driver: sqlite
  path: file.db
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Title != "Override Title" {
		t.Errorf("Title = %q, want Override Title", cfg.Title)
	}
	if cfg.Port != 9191 {
		t.Errorf("Port = %d, want 9191", cfg.Port)
	}
	if cfg.Goal != 7 {
		t.Errorf("Goal = %d, want 7", cfg.Goal)
	}
	if cfg.Storage.Driver != "memory" || cfg.Storage.Path != "ignored" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
}

func TestParse_EnvOverrides_UnsetKeepsFile(t *testing.T) {
	t.Setenv("SUMMIT_GOAL", "12")

	cfg, err := Parse([]byte("port: 8082\ngoal: 40\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Port != 8082 {
		t.Errorf("Port = %d, want 8082 from file", cfg.Port)
	}
	if cfg.Goal != 12 {
		t.Errorf("Goal = %d, want 12 from environment", cfg.Goal)
	}
}

func TestParse_EnvOverrides_Invalid(t *testing.T) {
	t.Setenv("SUMMIT_PORT", "not-a-port")

	_, err := Parse([]byte(""))
	if err == nil || !strings.Contains(err.Error(), "environment overrides") {
		t.Errorf("error = %v, want environment override failure", err)
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_SUMMIT_DIR", "/data/summit")
	t.Setenv("TEST_EVENT", "Summit 2026")

	yaml := `
title: ${TEST_EVENT} Check-In
storage:
  driver: sqlite
  path: ${TEST_SUMMIT_DIR}/checkins.db
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Title != "Summit 2026 Check-In" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Storage.Path != "/data/summit/checkins.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
}

func TestParse_EnvVarDefault(t *testing.T) {
	cfg, err := Parse([]byte("storage:\n  path: ${TEST_SUMMIT_UNSET_DIR:-./data}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Storage.Path != "./data" {
		t.Errorf("Storage.Path = %q, want ./data", cfg.Storage.Path)
	}
}

func TestParse_EnvVarMissing(t *testing.T) {
	_, err := Parse([]byte("storage:\n  path: ${TEST_SUMMIT_DEFINITELY_UNSET}\n"))
	if err == nil {
		t.Fatal("Parse() should fail for unset variable without default")
	}
	if !strings.Contains(err.Error(), "TEST_SUMMIT_DEFINITELY_UNSET") {
		t.Errorf("error should name the variable, got: %v", err)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_EXPAND_SET", "value")
	t.Setenv("TEST_EXPAND_EMPTY", "")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no vars", "plain", "plain", false},
		{"set var", "${TEST_EXPAND_SET}", "value", false},
		{"embedded", "a-${TEST_EXPAND_SET}-b", "a-value-b", false},
		{"set but empty", "${TEST_EXPAND_EMPTY}", "", false},
		{"empty ignores default", "${TEST_EXPAND_EMPTY:-fallback}", "", false},
		{"default used", "${TEST_EXPAND_UNSET:-fallback}", "fallback", false},
		{"empty default", "${TEST_EXPAND_UNSET:-}", "", false},
		{"unset no default", "${TEST_EXPAND_UNSET}", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandEnvVars(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandEnvVars(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summit.yaml")
	if err := os.WriteFile(path, []byte("goal: 25\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Goal != 25 {
		t.Errorf("Goal = %d, want 25", cfg.Goal)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Load() error = %v, want read failure", err)
	}
}
