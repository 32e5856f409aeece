// Package scheduler runs named knowledge base jobs on cron schedules in UTC.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one unit of scheduled work. Errors are logged, never fatal.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds job under name. An empty spec disables the job.
func (s *Scheduler) Register(name, spec string, job Job) error {
	if spec == "" {
		log.Printf("⚠️ Schedule for %s is empty, job disabled", name)
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, spec, err)
	}
	log.Printf("📅 Scheduled %s at %q UTC", name, spec)
	return nil
}

// RunNow executes a registered-style job immediately in the caller's goroutine.
func (s *Scheduler) RunNow(name string, job Job) {
	s.run(name, job)
}

func (s *Scheduler) run(name string, job Job) {
	log.Printf("🕘 Triggered %s", name)
	start := time.Now()
	if err := job(s.ctx); err != nil {
		log.Printf("❌ %s failed: %v", name, err)
		return
	}
	log.Printf("✅ %s finished in %s", name, time.Since(start).Round(time.Millisecond))
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("📅 Scheduler started with %d job(s)", len(s.cron.Entries()))
}

// Stop cancels the jobs' context and waits for running jobs to return.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	log.Println("📅 Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
