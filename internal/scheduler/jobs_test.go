package scheduler

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"personal-kb/internal/personaldata"
	"personal-kb/internal/storage"
)

type fakeNotifier struct{ sent []string }

func (f *fakeNotifier) Notify(text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func newJobs(t *testing.T) (*KBJobs, *personaldata.Manager, *fakeNotifier) {
	t.Helper()
	m, err := personaldata.NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetPersonalDataPath(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	n := &fakeNotifier{}
	return &KBJobs{KB: m, Notifier: n}, m, n
}

func TestConsolidate_WritesKB(t *testing.T) {
	j, m, _ := newJobs(t)
	if _, err := m.SaveReport("abc", 1, "# A\n"); err != nil {
		t.Fatal(err)
	}
	if err := j.Consolidate(context.Background()); err != nil {
		t.Fatalf("consolidate: %v", err)
	}
	kb, _ := m.ConsolidatedKBPath()
	data, err := os.ReadFile(kb)
	if err != nil || !strings.Contains(string(data), "# A") {
		t.Fatalf("unexpected kb: %q (%v)", data, err)
	}
}

func TestConsolidate_NotConfigured(t *testing.T) {
	m, err := personaldata.NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	j := &KBJobs{KB: m}
	if err := j.Consolidate(context.Background()); !errors.Is(err, personaldata.ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}

func TestBackup_NotifiesPath(t *testing.T) {
	j, _, n := newJobs(t)
	if err := j.Backup(context.Background()); err != nil {
		t.Fatalf("backup: %v", err)
	}
	if len(n.sent) != 1 || !strings.Contains(n.sent[0], "backup-") {
		t.Fatalf("unexpected notifications: %v", n.sent)
	}
}

func TestSummary(t *testing.T) {
	j, m, n := newJobs(t)
	day := time.Date(2026, 3, 4, 21, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return day }

	// no events: nothing sent
	if err := j.Summary(context.Background()); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(n.sent) != 0 {
		t.Fatalf("want no notification, got %v", n.sent)
	}

	logPath, _ := m.ProcessingLogPath()
	rec, err := storage.NewFileRecorder(logPath)
	if err != nil {
		t.Fatal(err)
	}
	_ = rec.AppendEvent(storage.Event{Timestamp: day.Add(-time.Hour), VideoID: "a", Title: "Go Tour", Status: storage.StatusProcessed, Cost: 0.25})
	_ = rec.AppendEvent(storage.Event{Timestamp: day.Add(-48 * time.Hour), VideoID: "b", Status: storage.StatusProcessed})

	if err := j.Summary(context.Background()); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(n.sent) != 1 {
		t.Fatalf("want 1 notification, got %d", len(n.sent))
	}
	msg := n.sent[0]
	if !strings.Contains(msg, "2026-03-04") || !strings.Contains(msg, "Processed: 1") || !strings.Contains(msg, "- Go Tour") {
		t.Fatalf("unexpected summary: %q", msg)
	}
}
