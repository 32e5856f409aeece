package personaldata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBackupPath_Timestamp(t *testing.T) {
	m, root := newConfigured(t)
	p, err := m.BackupPath()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	want := filepath.Join(root, "backups", "backup-2026-01-02T03-04-05-600Z.tar.gz")
	if p != want {
		t.Fatalf("want %q, got %q", want, p)
	}
}

func TestCreateBackup_NoScript(t *testing.T) {
	m, root := newConfigured(t)
	p, err := m.CreateBackup(context.Background())
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if !strings.HasPrefix(p, filepath.Join(root, "backups")) {
		t.Fatalf("unexpected path %s", p)
	}
	if _, err := os.Stat(filepath.Join(root, "backups")); err != nil {
		t.Fatalf("backups dir not created: %v", err)
	}
}

func TestCreateBackup_RunsScript(t *testing.T) {
	m, root := newConfigured(t)
	script := "#!/bin/sh\necho done > \"$1\"\n"
	if err := os.WriteFile(filepath.Join(root, "backup.sh"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	p, err := m.CreateBackup(context.Background())
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("script did not receive backup path: %v", err)
	}
}

func TestCreateBackup_ScriptFailure(t *testing.T) {
	m, root := newConfigured(t)
	script := "#!/bin/sh\necho boom\nexit 3\n"
	if err := os.WriteFile(filepath.Join(root, "backup.sh"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := m.CreateBackup(context.Background())
	if !errors.Is(err, ErrBackupFailed) {
		t.Fatalf("want ErrBackupFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("script output missing from error: %v", err)
	}
}
