// Package settings holds tool-level configuration for rabbitconf itself,
// as opposed to the RabbitMQ configuration files the tool edits.
//
// Settings are read from a TOML file, then overridden by RABBITCONF_*
// environment variables. A missing settings file is not an error; the
// defaults apply.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables recognized by Load.
const (
	EnvConfFile     = "RABBITCONF_CONF_FILE"
	EnvAllowUnknown = "RABBITCONF_ALLOW_UNKNOWN"
)

// Settings configures rabbitconf's own behavior.
type Settings struct {
	// ConfFile is the RabbitMQ configuration file commands operate on
	// when no --file flag is given.
	ConfFile string `toml:"conf_file"`

	// AllowUnknown permits setting keys that are not in the known key
	// catalog without --force.
	AllowUnknown bool `toml:"allow_unknown"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		ConfFile: "rabbitmq.conf",
	}
}

// DefaultPath returns the standard location of the settings file,
// under the user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "rabbitconf", "config.toml"), nil
}

// Load reads settings from path and applies environment overrides.
// A missing file, or an empty path, is not an error; defaults are used.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		s.applyEnv()
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.applyEnv()
			return s, nil
		}
		return s, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	s.applyEnv()
	return s, nil
}

// Save writes settings as TOML to path, creating parent directories as
// needed.
func Save(s Settings, path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from RABBITCONF_* environment variables.
func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv(EnvConfFile); ok && v != "" {
		s.ConfFile = v
	}
	if v, ok := os.LookupEnv(EnvAllowUnknown); ok && v != "" {
		s.AllowUnknown = envBool(v)
	}
}

// envBool interprets an environment value leniently. Anything outside
// the recognized true spellings counts as false.
func envBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
