package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"personal-kb/internal/analytics"
	"personal-kb/internal/personaldata"
	"personal-kb/internal/storage"
)

// Notifier delivers job results. *telegram.Notifier satisfies it.
type Notifier interface {
	Notify(text string) error
}

// KBJobs are the periodic knowledge base maintenance jobs.
type KBJobs struct {
	KB       *personaldata.Manager
	Notifier Notifier // optional
	now      func() time.Time
}

func (j *KBJobs) clock() time.Time {
	if j.now != nil {
		return j.now()
	}
	return time.Now()
}

func (j *KBJobs) notify(text string) {
	if j.Notifier == nil {
		return
	}
	if err := j.Notifier.Notify(text); err != nil {
		log.Printf("⚠️ Notification failed: %v", err)
	}
}

// Every job re-reads config.json first so a `kb-tool setup` made while the
// daemon runs takes effect.

// Consolidate regenerates the consolidated knowledge base.
func (j *KBJobs) Consolidate(ctx context.Context) error {
	if err := j.KB.Reload(); err != nil {
		return err
	}
	path, err := j.KB.GenerateConsolidatedKB()
	if err != nil {
		return err
	}
	log.Printf("📚 Knowledge base written to %s", path)
	return nil
}

// Backup runs the data root's backup script and reports the outcome.
func (j *KBJobs) Backup(ctx context.Context) error {
	if err := j.KB.Reload(); err != nil {
		return err
	}
	path, err := j.KB.CreateBackup(ctx)
	if err != nil {
		j.notify(fmt.Sprintf("❌ Knowledge base backup failed: %v", err))
		return err
	}
	j.notify("💾 Knowledge base backup: " + path)
	return nil
}

// Summary sends today's (UTC) processing summary. Days without events are
// not reported.
func (j *KBJobs) Summary(ctx context.Context) error {
	if err := j.KB.Reload(); err != nil {
		return err
	}
	logPath, err := j.KB.ProcessingLogPath()
	if err != nil {
		return err
	}
	recorder, err := storage.NewFileRecorder(logPath)
	if err != nil {
		return err
	}
	events, err := recorder.LoadEvents()
	if err != nil {
		return err
	}

	daily := analytics.AnalyzeDailyLogs(events, j.clock().UTC())
	if daily.Empty() {
		log.Printf("📭 No processing events for %s", daily.Date)
		return nil
	}
	if js, err := daily.ToJSON(); err == nil {
		log.Printf("📊 Daily stats: %s", js)
	}
	j.notify(daily.GenerateReportSummary())
	return nil
}
