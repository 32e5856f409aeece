// Package index keeps an exact, persisted set of processed video ids in
// SQLite. It complements the file-name heuristic of personaldata.IsProcessed.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS processed_videos (
	video_id     TEXT PRIMARY KEY,
	report_index INTEGER NOT NULL,
	report_path  TEXT NOT NULL DEFAULT '',
	processed_at TEXT NOT NULL
);`

// Entry is one processed video.
type Entry struct {
	VideoID     string
	Index       int
	ReportPath  string
	ProcessedAt time.Time
}

type Index struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the index database at path.
func Open(ctx context.Context, path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure index dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{"PRAGMA busy_timeout = 10000", "PRAGMA journal_mode = WAL", schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init index: %w", err)
		}
	}
	return &Index{db: db, now: time.Now}, nil
}

func (i *Index) Close() error { return i.db.Close() }

// Mark records videoID as processed, replacing any earlier entry.
func (i *Index) Mark(ctx context.Context, videoID string, index int, reportPath string) error {
	_, err := i.db.ExecContext(ctx, `
INSERT INTO processed_videos (video_id, report_index, report_path, processed_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(video_id) DO UPDATE SET
	report_index = excluded.report_index,
	report_path  = excluded.report_path,
	processed_at = excluded.processed_at`,
		videoID, index, reportPath, i.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("mark %s: %w", videoID, err)
	}
	return nil
}

// Has reports whether videoID was marked, by exact key.
func (i *Index) Has(ctx context.Context, videoID string) (bool, error) {
	var n int
	err := i.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM processed_videos WHERE video_id = ?`, videoID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("lookup %s: %w", videoID, err)
	}
	return n > 0, nil
}

func (i *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := i.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM processed_videos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// List returns all entries ordered by report index.
func (i *Index) List(ctx context.Context) ([]Entry, error) {
	rows, err := i.db.QueryContext(ctx, `
SELECT video_id, report_index, report_path, processed_at
FROM processed_videos ORDER BY report_index, video_id`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.VideoID, &e.Index, &e.ReportPath, &ts); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		e.ProcessedAt, _ = time.Parse(time.RFC3339, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Rebuild marks every report whose file name parses to a video id.
// parse is personaldata.ParseReportFileName in production.
func (i *Index) Rebuild(ctx context.Context, reports []string, parse func(string) (string, int, bool)) (int, error) {
	n := 0
	for _, p := range reports {
		id, idx, ok := parse(p)
		if !ok {
			continue
		}
		if err := i.Mark(ctx, id, idx, p); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
