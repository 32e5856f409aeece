package personaldata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const statsFile = "stats.json"

// Stats are the processing counters kept in config/stats.json.
// ProcessedVideos is not checked against TotalVideos.
type Stats struct {
	TotalVideos     int       `json:"totalVideos"`
	ProcessedVideos int       `json:"processedVideos"`
	TotalCost       float64   `json:"totalCost"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// Unprocessed is TotalVideos minus ProcessedVideos; it may be negative.
func (s Stats) Unprocessed() int { return s.TotalVideos - s.ProcessedVideos }

// StatsUpdate carries the fields to replace; nil fields keep their value.
type StatsUpdate struct {
	TotalVideos     *int
	ProcessedVideos *int
	TotalCost       *float64
}

func (m *Manager) statsPath() (string, error) {
	dir, err := m.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, statsFile), nil
}

// LoadStats returns the current counters, or nil if stats were never written.
func (m *Manager) LoadStats() (*Stats, error) {
	path, err := m.statsPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read stats: %w", err)
	}
	var st Stats
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigCorrupt, path, err)
	}
	return &st, nil
}

// UpdateStats merges u over the stored counters (zero values on first use),
// stamps LastUpdated, persists and returns the full record. There is no
// read-modify-write locking; the last writer wins.
func (m *Manager) UpdateStats(u StatsUpdate) (Stats, error) {
	path, err := m.statsPath()
	if err != nil {
		return Stats{}, err
	}
	cur, err := m.LoadStats()
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	if cur != nil {
		st = *cur
	}
	if u.TotalVideos != nil {
		st.TotalVideos = *u.TotalVideos
	}
	if u.ProcessedVideos != nil {
		st.ProcessedVideos = *u.ProcessedVideos
	}
	if u.TotalCost != nil {
		st.TotalCost = *u.TotalCost
	}
	st.LastUpdated = m.now().UTC()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Stats{}, fmt.Errorf("ensure config dir: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return Stats{}, fmt.Errorf("encode stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Stats{}, fmt.Errorf("write stats: %w", err)
	}
	return st, nil
}
