package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix marks the environment variables that override config keys
const EnvPrefix = "TROFF_"

var errUnknownSetting = errors.New("unknown setting")

// Environment collects TROFF_ variables from envFile and the process environment
// Process variables win over the file; a missing file is not an error
func Environment(envFile string) (map[string]string, error) {
	env := make(map[string]string)
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for k, v := range vars {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides settings from TROFF_<KEY> variables, KEY being the upper-cased TOML key
// Unknown keys are logged and skipped; malformed values of known keys are errors
func (c *Config) ApplyEnv(env map[string]string) error {
	for key, val := range env {
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		err := c.set(name, val)
		if errors.Is(err, errUnknownSetting) {
			log.Printf("config: ignoring %s: %v", key, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return c.Validate()
}

func (c *Config) set(name, val string) error {
	var err error
	switch name {
	case "tick_interval":
		c.TickInterval, err = time.ParseDuration(val)
	case "idle_timeout":
		c.IdleTimeout, err = time.ParseDuration(val)
	case "win_target":
		c.WinTarget, err = strconv.Atoi(val)
	case "start_inset":
		c.StartInset, err = strconv.Atoi(val)
	case "grid_unit":
		c.GridUnit, err = strconv.Atoi(val)
	case "mute":
		c.Mute, err = strconv.ParseBool(val)
	case "demo_script":
		c.DemoScript = val
	case "spectate_addr":
		c.SpectateAddr = val
	default:
		return fmt.Errorf("%w %q", errUnknownSetting, name)
	}
	return err
}
