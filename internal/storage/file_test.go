package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "processing-logs", "processing.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}
	if rec.Path() != p {
		t.Fatalf("want path %q, got %q", p, rec.Path())
	}

	ev1 := Event{Timestamp: time.Unix(1, 0).UTC(), VideoID: "a", Index: 1, Status: StatusProcessed, Cost: 0.01}
	ev2 := Event{Timestamp: time.Unix(2, 0).UTC(), VideoID: "b", Index: 2, Status: StatusFailed, Error: "boom"}
	if err := rec.AppendEvent(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendEvent(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadEvents()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0].VideoID != "a" || events[1].Error != "boom" {
		t.Fatalf("order mismatch: %+v", events)
	}

	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}

func TestFileRecorder_SkipsMalformedLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "log.jsonl")
	if err := os.WriteFile(p, []byte("{bad\n\n{\"video_id\":\"ok\",\"status\":\"processed\"}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	events, err := rec.LoadEvents()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 1 || events[0].VideoID != "ok" {
		t.Fatalf("unexpected events: %+v", events)
	}
}
