package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scriptdesk/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing file to be reported")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %#v", cfg.Logging)
	}
	if !cfg.Prefs.Enabled {
		t.Fatal("expected prefs enabled by default")
	}
	if cfg.Limits.MaxClusters <= 0 || cfg.Limits.MaxDialoguesPerCluster <= 0 {
		t.Fatalf("unexpected limits defaults: %#v", cfg.Limits)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
state_dir = "` + dir + `/state"
log_dir = "` + dir + `/logs"

[logging]
format = " JSON "
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %#v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.StateDir) {
		t.Fatalf("state dir not absolute: %q", cfg.Paths.StateDir)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n"},
		{"negative free space", "[daemon]\nmin_free_space_mb = -1\n"},
		{"zero cluster limit", "[limits]\nmax_clusters = 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = "/tmp/scriptdesk-test"

	if got := cfg.SocketPath(); got != "/tmp/scriptdesk-test/scriptdesk.sock" {
		t.Fatalf("unexpected socket path: %q", got)
	}
	if got := cfg.LockPath(); got != "/tmp/scriptdesk-test/scriptdeskd.lock" {
		t.Fatalf("unexpected lock path: %q", got)
	}
	if got := cfg.PrefsPath(); got != "/tmp/scriptdesk-test/prefs.db" {
		t.Fatalf("unexpected prefs path: %q", got)
	}

	cfg.Daemon.Socket = "/run/scriptdesk.sock"
	cfg.Prefs.Path = "/var/lib/scriptdesk/prefs.db"
	if got := cfg.SocketPath(); got != "/run/scriptdesk.sock" {
		t.Fatalf("socket override ignored: %q", got)
	}
	if got := cfg.PrefsPath(); got != "/var/lib/scriptdesk/prefs.db" {
		t.Fatalf("prefs override ignored: %q", got)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(dir, "state")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Prefs.Path = filepath.Join(dir, "prefs", "prefs.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, sub := range []string{"state", "logs", "prefs"} {
		if _, err := os.Stat(filepath.Join(dir, sub)); err != nil {
			t.Fatalf("expected %s to exist: %v", sub, err)
		}
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") || !strings.Contains(string(data), "[prefs]") {
		t.Fatalf("sample missing expected sections:\n%s", data)
	}
}
