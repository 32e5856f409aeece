package personaldata

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by every accessor that needs the personal
	// data root when it is unset or the directory no longer exists.
	ErrNotConfigured = errors.New("personal data location not configured")
	// ErrConfigCorrupt marks a config file that exists but is not valid JSON.
	ErrConfigCorrupt = errors.New("config file is corrupt")
	// ErrUnsupportedFormat is returned by Export for unknown formats.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrInvalidVideoID is returned by SaveReport for ids that are not
	// plain YouTube ids (letters, digits, '-' and '_').
	ErrInvalidVideoID = errors.New("invalid video id")
	// ErrBackupFailed is returned when backup.sh exits non-zero.
	ErrBackupFailed = errors.New("backup script failed")
)

// FormatError names the export format that was rejected.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unknown format: %s", e.Format)
}

func (e *FormatError) Unwrap() error { return ErrUnsupportedFormat }
