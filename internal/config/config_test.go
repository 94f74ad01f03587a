package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcliao/microcombo/internal/optimizer"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvPercentAllowance, "")
	t.Setenv(EnvBaseAllowance, "")
	t.Setenv(EnvMoveTime, "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.PercentAllowance != 0.05 || cfg.BaseAllowance != 3 || cfg.MoveTime != 0.2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !strings.HasSuffix(cfg.DBPath, filepath.Join(".microcombo", "history.db")) {
		t.Errorf("unexpected default db path %q", cfg.DBPath)
	}
	if cfg.Options() != optimizer.DefaultOptions() {
		t.Errorf("default config should map to default options, got %+v", cfg.Options())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/x.db")
	t.Setenv(EnvPercentAllowance, "0.1")
	t.Setenv(EnvBaseAllowance, "5")
	t.Setenv(EnvMoveTime, "0.25")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("expected /tmp/x.db, got %q", cfg.DBPath)
	}
	opts := cfg.Options()
	if opts.Allowance.Percent != 0.1 || opts.Allowance.Base != 5 || opts.MoveTime != 0.25 {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non numeric percent", EnvPercentAllowance, "lots"},
		{"negative percent", EnvPercentAllowance, "-0.1"},
		{"fractional base", EnvBaseAllowance, "2.5"},
		{"negative base", EnvBaseAllowance, "-1"},
		{"zero move time", EnvMoveTime, "0"},
		{"nan percent", EnvPercentAllowance, "NaN"},
		{"inf percent", EnvPercentAllowance, "Inf"},
		{"nan move time", EnvMoveTime, "NaN"},
		{"inf move time", EnvMoveTime, "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPercentAllowance, "")
			t.Setenv(EnvBaseAllowance, "")
			t.Setenv(EnvMoveTime, "")
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
