package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{
		"TROFF_WIN_TARGET":    "5",
		"TROFF_IDLE_TIMEOUT":  "2s",
		"TROFF_MUTE":          "true",
		"TROFF_SPECTATE_ADDR": ":7777",
	})
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.WinTarget != 5 || cfg.IdleTimeout != 2*time.Second || !cfg.Mute || cfg.SpectateAddr != ":7777" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestApplyEnvSkipsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{
		"TROFF_SPEED":      "3",
		"TROFF_WIN_TARGET": "6",
	})
	if err != nil {
		t.Fatalf("ApplyEnv with a stray variable: %v", err)
	}
	want := Default()
	want.WinTarget = 6
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad int", map[string]string{"TROFF_WIN_TARGET": "many"}, "TROFF_WIN_TARGET"},
		{"bad duration", map[string]string{"TROFF_TICK_INTERVAL": "fast"}, "TROFF_TICK_INTERVAL"},
		{"invalid value", map[string]string{"TROFF_GRID_UNIT": "0"}, "grid_unit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(tt.env)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ApplyEnv error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestEnvironment(t *testing.T) {
	path := writeFile(t, ".env", "TROFF_WIN_TARGET=4\nTROFF_MUTE=true\nOTHER=x\n")
	t.Setenv("TROFF_MUTE", "false")

	env, err := Environment(path)
	if err != nil {
		t.Fatalf("Environment: %v", err)
	}
	if env["TROFF_WIN_TARGET"] != "4" {
		t.Errorf("file variable = %q, want 4", env["TROFF_WIN_TARGET"])
	}
	if env["TROFF_MUTE"] != "false" {
		t.Errorf("process variable did not win: %q", env["TROFF_MUTE"])
	}
	if _, ok := env["OTHER"]; ok {
		t.Error("unprefixed variable collected")
	}

	if _, err := Environment(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file: %v", err)
	}
}
