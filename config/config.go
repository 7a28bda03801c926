// Package config loads runtime settings and the attract demo script from TOML
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/troff/asset"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/systems"
)

// Config holds the settings a config file may override
// Durations are TOML strings such as "50ms" or "10s"
type Config struct {
	TickInterval time.Duration `toml:"tick_interval"`
	IdleTimeout  time.Duration `toml:"idle_timeout"`
	WinTarget    int           `toml:"win_target"`
	StartInset   int           `toml:"start_inset"`
	GridUnit     int           `toml:"grid_unit"`
	Mute         bool          `toml:"mute"`
	DemoScript   string        `toml:"demo_script"`
	SpectateAddr string        `toml:"spectate_addr"`
}

// Default returns the compiled-in settings
func Default() Config {
	return Config{
		TickInterval: constants.GameUpdateInterval,
		IdleTimeout:  constants.IdleTimeout,
		WinTarget:    constants.WinTarget,
		StartInset:   constants.MaxStartInset,
		GridUnit:     constants.DefaultGridUnit,
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.TickInterval < time.Millisecond:
		return fmt.Errorf("tick_interval %v below 1ms", c.TickInterval)
	case c.IdleTimeout <= 0:
		return fmt.Errorf("idle_timeout %v must be positive", c.IdleTimeout)
	case c.WinTarget <= 0:
		return fmt.Errorf("win_target %d must be positive", c.WinTarget)
	case c.StartInset <= 0:
		return fmt.Errorf("start_inset %d must be positive", c.StartInset)
	case c.GridUnit <= 0:
		return fmt.Errorf("grid_unit %d must be positive", c.GridUnit)
	}
	return nil
}

// LoadDemoScript decodes the demo script at path, or the built-in script when path is empty
func LoadDemoScript(path string) (systems.DemoScript, error) {
	var script systems.DemoScript
	if path == "" {
		if _, err := toml.Decode(asset.IdleDemoScript, &script); err != nil {
			return systems.DemoScript{}, fmt.Errorf("failed to decode built-in demo script: %w", err)
		}
		return script, nil
	}

	if _, err := toml.DecodeFile(path, &script); err != nil {
		return systems.DemoScript{}, fmt.Errorf("failed to decode demo script %s: %w", path, err)
	}
	return script, nil
}
