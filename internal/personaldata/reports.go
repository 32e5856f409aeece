package personaldata

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const reportPrefix = "api_"

var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validVideoID keeps report names inside the reports directory.
func validVideoID(id string) bool { return videoIDRe.MatchString(id) }

// ReportFileName builds the report file name for a video: api_<index>_<videoId>.md.
func ReportFileName(videoID string, index int) string {
	return fmt.Sprintf("%s%d_%s.md", reportPrefix, index, videoID)
}

// ParseReportFileName is the inverse of ReportFileName. Video ids may contain
// underscores, so only the first separator after the index is significant.
func ParseReportFileName(name string) (videoID string, index int, ok bool) {
	name = filepath.Base(name)
	if !strings.HasPrefix(name, reportPrefix) || !strings.HasSuffix(name, ".md") {
		return "", 0, false
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(name, reportPrefix), ".md")
	idx, id, found := strings.Cut(rest, "_")
	if !found || id == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return "", 0, false
	}
	return id, n, true
}

// ListReports returns the paths of all markdown files in the reports
// directory, in directory read order (sorted by name). A missing directory
// yields no reports.
func (m *Manager) ListReports() ([]string, error) {
	dir, err := m.VideoReportsDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read reports dir: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

// IsProcessed reports whether any file in the reports directory contains the
// video id or "_<index>_" in its name. This is a loose substring match: a
// report for another video sharing the index, or whose id contains videoID,
// also counts. Use the processed index for exact lookups.
func (m *Manager) IsProcessed(videoID string, index int) (bool, error) {
	dir, err := m.VideoReportsDir()
	if err != nil {
		return false, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read reports dir: %w", err)
	}
	indexKey := fmt.Sprintf("_%d_", index)
	for _, e := range entries {
		name := e.Name()
		// An empty id would match every file.
		if videoID != "" && strings.Contains(name, videoID) {
			return true, nil
		}
		if strings.Contains(name, indexKey) {
			return true, nil
		}
	}
	return false, nil
}

// SaveReport writes content to api_<index>_<videoId>.md in the reports
// directory, creating the directory and overwriting an existing file of the
// same name. It returns the absolute path written.
func (m *Manager) SaveReport(videoID string, index int, content string) (string, error) {
	if !validVideoID(videoID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoID, videoID)
	}
	dir, err := m.VideoReportsDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure reports dir: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(dir, ReportFileName(videoID, index)))
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
