package personaldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ConfigFileName is the name of the application config file inside the app root.
const ConfigFileName = "config.json"

// Config is the application configuration record.
// An empty PersonalDataPath means "unconfigured".
type Config struct {
	PersonalDataPath string
	LastUpdated      time.Time
}

// configFile is the on-disk shape: personalDataPath is null when unset.
type configFile struct {
	PersonalDataPath *string    `json:"personalDataPath"`
	LastUpdated      *time.Time `json:"lastUpdated,omitempty"`
}

// LoadConfig reads the config file at path. A missing file yields the
// unconfigured default. A file that exists but cannot be decoded yields the
// default together with an error wrapping ErrConfigCorrupt.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cf configFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigCorrupt, path, err)
	}
	var cfg Config
	if cf.PersonalDataPath != nil {
		cfg.PersonalDataPath = *cf.PersonalDataPath
	}
	if cf.LastUpdated != nil {
		cfg.LastUpdated = *cf.LastUpdated
	}
	return cfg, nil
}

// SaveConfig overwrites the config file at path. Not atomic; last write wins.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	var cf configFile
	if cfg.PersonalDataPath != "" {
		p := cfg.PersonalDataPath
		cf.PersonalDataPath = &p
	}
	if !cfg.LastUpdated.IsZero() {
		t := cfg.LastUpdated
		cf.LastUpdated = &t
	}
	data, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
