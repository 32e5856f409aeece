package personaldata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newConfigured(t *testing.T) (*Manager, string) {
	t.Helper()
	appRoot := t.TempDir()
	dataRoot := t.TempDir()
	m, err := NewManager(appRoot)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	m.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 600_000_000, time.UTC) }
	if err := m.SetPersonalDataPath(dataRoot); err != nil {
		t.Fatalf("set path: %v", err)
	}
	return m, dataRoot
}

func TestIsConfigured_MissingConfigFile(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if m.IsConfigured() {
		t.Fatalf("want unconfigured without config.json")
	}
	if _, err := m.PersonalDataPath(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}

func TestIsConfigured_DeletedDirectory(t *testing.T) {
	appRoot := t.TempDir()
	dataRoot := filepath.Join(t.TempDir(), "kb")
	if err := os.Mkdir(dataRoot, 0o755); err != nil {
		t.Fatal(err)
	}
	m, _ := NewManager(appRoot)
	if err := m.SetPersonalDataPath(dataRoot); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !m.IsConfigured() {
		t.Fatalf("want configured while directory exists")
	}
	if err := os.RemoveAll(dataRoot); err != nil {
		t.Fatal(err)
	}
	if m.IsConfigured() {
		t.Fatalf("want unconfigured after directory removal")
	}
	if _, err := m.VideoReportsDir(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("dependent accessor must fail, got %v", err)
	}
}

func TestSetPersonalDataPath_RoundTrip(t *testing.T) {
	m, dataRoot := newConfigured(t)
	got, err := m.PersonalDataPath()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != dataRoot {
		t.Fatalf("want %q, got %q", dataRoot, got)
	}

	// a fresh manager reads the persisted record
	m2, err := NewManager(filepath.Dir(m.ConfigFile()))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if m2.Config().PersonalDataPath != dataRoot {
		t.Fatalf("persisted path mismatch: %+v", m2.Config())
	}
	if m2.Config().LastUpdated.IsZero() {
		t.Fatalf("lastUpdated not stamped")
	}
}

func TestNewManager_CorruptConfigSurfaced(t *testing.T) {
	appRoot := t.TempDir()
	if err := os.WriteFile(filepath.Join(appRoot, ConfigFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := NewManager(appRoot)
	if !errors.Is(err, ErrConfigCorrupt) {
		t.Fatalf("want ErrConfigCorrupt, got %v", err)
	}
	if m == nil || m.IsConfigured() {
		t.Fatalf("corrupt config must leave a usable unconfigured manager")
	}
}

func TestSaveConfig_NullWhenUnset(t *testing.T) {
	p := filepath.Join(t.TempDir(), ConfigFileName)
	if err := SaveConfig(p, Config{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"personalDataPath\": null\n}"
	if string(data) != want {
		t.Fatalf("want %q, got %q", want, string(data))
	}
}
