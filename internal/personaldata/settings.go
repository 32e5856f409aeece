package personaldata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	processingConfigFile = "processing-config.json"
	preferencesFile      = "preferences.json"
)

// ProcessingConfig is owned by the processing scripts; this package only reads it.
type ProcessingConfig struct {
	Model           string `json:"model"`
	MaxConcurrent   int    `json:"maxConcurrent"`
	FilterPolitical bool   `json:"filterPolitical"`
}

// LoadProcessingConfig reads config/processing-config.json, or nil if absent.
func (m *Manager) LoadProcessingConfig() (*ProcessingConfig, error) {
	var pc ProcessingConfig
	found, err := m.readConfigJSON(processingConfigFile, &pc)
	if err != nil || !found {
		return nil, err
	}
	return &pc, nil
}

// LoadPreferences reads config/preferences.json, or nil if absent.
func (m *Manager) LoadPreferences() (map[string]any, error) {
	var prefs map[string]any
	found, err := m.readConfigJSON(preferencesFile, &prefs)
	if err != nil || !found {
		return nil, err
	}
	return prefs, nil
}

func (m *Manager) readConfigJSON(name string, v any) (bool, error) {
	dir, err := m.ConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrConfigCorrupt, path, err)
	}
	return true, nil
}
