package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"personal-kb/internal/config"
	"personal-kb/internal/index"
	"personal-kb/internal/llm"
	"personal-kb/internal/personaldata"
	"personal-kb/internal/processor"
	"personal-kb/internal/storage"
	"personal-kb/internal/youtube"
)

func main() {
	run := flag.Bool("run", false, "generate reports for unprocessed videos")
	input := flag.String("input", "", "videos JSON file (default RECENT_VIDEOS_PATH)")
	startIndex := flag.Int("start-index", 0, "index of the first new report (default: after the highest existing one)")
	flag.Parse()

	config.LoadDotEnv()
	var appCfg config.App
	config.MustParse(&appCfg)
	var llmCfg config.LLM
	config.MustParse(&llmCfg)

	fmt.Print("🎬 Video Processing with Personal Data Manager\n\n")

	kb, err := personaldata.NewManager(appCfg.AppRoot)
	if err != nil {
		log.Printf("⚠️ %v", err)
	}
	if !kb.IsConfigured() {
		fmt.Fprintln(os.Stderr, "❌ Personal data location not configured!")
		fmt.Print("\nRun setup first:\n  kb-tool setup <path>\n\n")
		os.Exit(1)
	}
	root, _ := kb.PersonalDataPath()
	fmt.Printf("✅ Personal data location configured\n   Location: %s\n\n", root)

	pc, err := kb.LoadProcessingConfig()
	if err != nil {
		log.Fatalf("❌ Error: %v", err)
	}
	if pc == nil {
		pc = &personaldata.ProcessingConfig{Model: llmCfg.OpenAIModel, MaxConcurrent: 1, FilterPolitical: true}
	}
	fmt.Println("⚙️  Processing Configuration:")
	fmt.Printf("   Model: %s\n", pc.Model)
	fmt.Printf("   Max Concurrent: %d\n", pc.MaxConcurrent)
	fmt.Printf("   Filter Political: %t\n\n", pc.FilterPolitical)

	stats, err := kb.LoadStats()
	if err != nil {
		log.Fatalf("❌ Error: %v", err)
	}
	printStats(stats)

	library, _ := kb.VideoLibraryPath()
	reportsDir, _ := kb.VideoReportsDir()
	kbDir, _ := kb.KnowledgeBaseDir()
	fmt.Println("🚀 Ready to process videos!")
	fmt.Printf("   Video Library: %s\n", library)
	fmt.Printf("   Reports Dir: %s\n", reportsDir)
	fmt.Printf("   Knowledge Base: %s\n\n", kbDir)

	path := *input
	if path == "" {
		path = llmCfg.InputPath
	}
	if !*run {
		fmt.Printf("Run with -run to generate reports for the videos in %s\n", path)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := process(ctx, kb, llmCfg, pc, path, *startIndex); err != nil {
		log.Fatalf("❌ Error: %v", err)
	}
}

func process(ctx context.Context, kb *personaldata.Manager, llmCfg config.LLM, pc *personaldata.ProcessingConfig, input string, start int) error {
	videos, err := youtube.ReadVideos(input)
	if err != nil {
		return err
	}

	if start <= 0 {
		start, err = nextReportIndex(kb)
		if err != nil {
			return err
		}
	}

	client, err := llm.NewFactory(llmCfg).CreateClient(llmCfg.Provider, pc.Model)
	if err != nil {
		return err
	}

	indexPath, err := kb.ProcessedIndexPath()
	if err != nil {
		return err
	}
	idx, err := index.Open(ctx, indexPath)
	if err != nil {
		return err
	}
	defer idx.Close()

	logPath, err := kb.ProcessingLogPath()
	if err != nil {
		return err
	}
	recorder, err := storage.NewFileRecorder(logPath)
	if err != nil {
		return err
	}
	fmt.Printf("📝 Event log: %s\n", recorder.Path())

	p := processor.New(kb, idx, client, recorder, processor.Options{
		MaxConcurrent:     pc.MaxConcurrent,
		FilterPolitical:   pc.FilterPolitical,
		CostPer1KTokens:   llmCfg.CostPer1KTokens,
		RequestsPerMinute: llmCfg.RequestsPerMinute,
	})

	fmt.Printf("📥 Processing %d videos from %s (first new index %d)\n\n", len(videos), input, start)
	res, err := p.Run(ctx, videos, start)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println("\n📊 Results:")
	fmt.Printf("   Considered: %d\n", res.Considered)
	fmt.Printf("   Processed: %d\n", res.Processed)
	fmt.Printf("   Already processed: %d\n", res.Skipped)
	fmt.Printf("   Filtered out: %d political videos\n", res.Filtered)
	fmt.Printf("   Failed: %d\n", res.Failed)
	if res.Invalid > 0 {
		fmt.Printf("   Without video id: %d\n", res.Invalid)
	}
	fmt.Printf("   Tokens: %d\n", res.Tokens)
	fmt.Printf("   Cost: $%.4f\n\n", res.Cost)
	printStats(&res.Stats)

	if errors.Is(err, context.Canceled) {
		fmt.Println("⚠️  Interrupted, remaining videos were not processed")
	}
	return nil
}

// nextReportIndex returns one past the highest index among existing report
// file names.
func nextReportIndex(kb *personaldata.Manager) (int, error) {
	reports, err := kb.ListReports()
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, p := range reports {
		if _, idx, ok := personaldata.ParseReportFileName(p); ok && idx > highest {
			highest = idx
		}
	}
	return highest + 1, nil
}

func printStats(stats *personaldata.Stats) {
	var st personaldata.Stats
	if stats != nil {
		st = *stats
	}
	fmt.Println("📊 Current Stats:")
	fmt.Printf("   Total Videos: %d\n", st.TotalVideos)
	fmt.Printf("   Processed: %d\n", st.ProcessedVideos)
	fmt.Printf("   Unprocessed: %d\n", st.Unprocessed())
	fmt.Printf("   Total Cost: $%.2f\n\n", st.TotalCost)
}
