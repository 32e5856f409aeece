// Package personaldata manages where a single user's knowledge-base artifacts
// live on disk: the personal data root, the per-video reports, processing
// stats, the consolidated knowledge base, exports and backups.
package personaldata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Manager is a façade over the personal data root. It is meant for a single
// process; nothing here locks files against concurrent writers.
type Manager struct {
	appRoot    string
	configFile string
	config     Config
	now        func() time.Time
}

// NewManager loads config.json from appRoot. When the file is corrupt the
// returned manager is usable (unconfigured) and the error wraps
// ErrConfigCorrupt so the caller can decide whether to continue.
func NewManager(appRoot string) (*Manager, error) {
	if appRoot == "" {
		appRoot = "."
	}
	m := &Manager{
		appRoot:    appRoot,
		configFile: filepath.Join(appRoot, ConfigFileName),
		now:        time.Now,
	}
	cfg, err := LoadConfig(m.configFile)
	m.config = cfg
	if err != nil {
		return m, err
	}
	return m, nil
}

// ConfigFile returns the path of the backing config.json.
func (m *Manager) ConfigFile() string { return m.configFile }

// Config returns a copy of the in-memory configuration record.
func (m *Manager) Config() Config { return m.config }

// Reload re-reads config.json, replacing the in-memory record.
func (m *Manager) Reload() error {
	cfg, err := LoadConfig(m.configFile)
	m.config = cfg
	return err
}

// IsConfigured reports whether a data root is set and exists right now.
// The directory check is not cached.
func (m *Manager) IsConfigured() bool {
	p := m.config.PersonalDataPath
	if p == "" {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}

// PersonalDataPath returns the data root or ErrNotConfigured.
func (m *Manager) PersonalDataPath() (string, error) {
	if !m.IsConfigured() {
		return "", fmt.Errorf("%w: run `kb-tool setup <path>`", ErrNotConfigured)
	}
	return m.config.PersonalDataPath, nil
}

// SetPersonalDataPath records the data root, stamps lastUpdated and persists.
func (m *Manager) SetPersonalDataPath(path string) error {
	m.config.PersonalDataPath = path
	m.config.LastUpdated = m.now().UTC()
	return SaveConfig(m.configFile, m.config)
}

func (m *Manager) sub(elem ...string) (string, error) {
	root, err := m.PersonalDataPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{root}, elem...)...), nil
}

func isNotExist(err error) bool { return errors.Is(err, os.ErrNotExist) }
