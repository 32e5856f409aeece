package personaldata

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const backupScript = "backup.sh"

// BackupPath computes backups/backup-<timestamp>.tar.gz under the data root.
func (m *Manager) BackupPath() (string, error) {
	dir, err := m.BackupsDir()
	if err != nil {
		return "", err
	}
	ts := m.now().UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return filepath.Join(dir, "backup-"+ts+".tar.gz"), nil
}

// CreateBackup runs <root>/backup.sh, if present, from the data root with the
// computed archive path as its first argument and in BACKUP_PATH. A non-zero
// exit is reported as ErrBackupFailed. The returned path is only as reliable
// as the script: it is not checked for existence afterwards.
func (m *Manager) CreateBackup(ctx context.Context) (string, error) {
	root, err := m.PersonalDataPath()
	if err != nil {
		return "", err
	}
	dir, err := m.BackupsDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure backups dir: %w", err)
	}
	backupPath, err := m.BackupPath()
	if err != nil {
		return "", err
	}

	script := filepath.Join(root, backupScript)
	if _, err := os.Stat(script); err != nil {
		if isNotExist(err) {
			return backupPath, nil
		}
		return "", fmt.Errorf("stat backup script: %w", err)
	}

	cmd := exec.CommandContext(ctx, script, backupPath)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "BACKUP_PATH="+backupPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %v: %s", ErrBackupFailed, err, strings.TrimSpace(string(out)))
	}
	return backupPath, nil
}
