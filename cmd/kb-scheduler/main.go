package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"personal-kb/internal/config"
	"personal-kb/internal/personaldata"
	"personal-kb/internal/scheduler"
	"personal-kb/internal/telegram"
)

func main() {
	once := flag.String("once", "", "run one job (consolidate, backup or summary) immediately and exit")
	flag.Parse()

	config.LoadDotEnv()
	var appCfg config.App
	config.MustParse(&appCfg)
	var tgCfg config.Telegram
	config.MustParse(&tgCfg)
	var schedCfg config.Scheduler
	config.MustParse(&schedCfg)

	kb, err := personaldata.NewManager(appCfg.AppRoot)
	if err != nil {
		log.Printf("⚠️ %v", err)
	}
	if !kb.IsConfigured() {
		log.Printf("⚠️ Personal data location not configured yet; jobs will fail until `kb-tool setup <path>` is run")
	}

	jobs := &scheduler.KBJobs{KB: kb}
	notifier, err := telegram.NewNotifier(tgCfg.BotToken, tgCfg.ChatID)
	switch {
	case errors.Is(err, telegram.ErrNotConfigured):
		log.Printf("ℹ️ Telegram notifications disabled")
	case err != nil:
		log.Fatalf("❌ Failed to create telegram notifier: %v", err)
	default:
		jobs.Notifier = notifier
	}

	all := []struct {
		name string
		spec string
		job  scheduler.Job
	}{
		{"consolidate", schedCfg.Consolidate, jobs.Consolidate},
		{"backup", schedCfg.Backup, jobs.Backup},
		{"summary", schedCfg.Summary, jobs.Summary},
	}

	s := scheduler.New()
	if *once != "" {
		defer s.Stop()
		for _, j := range all {
			if j.name == *once {
				s.RunNow(j.name, j.job)
				return
			}
		}
		log.Fatalf("❌ Unknown job %q", *once)
	}

	for _, j := range all {
		if err := s.Register(j.name, j.spec, j.job); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}
	if !s.IsRunning() {
		log.Fatalf("❌ No jobs scheduled, all SCHEDULE_* variables are empty")
	}
	s.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	log.Println("🛑 Shutting down...")
	s.Stop()
}
