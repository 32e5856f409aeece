package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"personal-kb/internal/config"
	"personal-kb/internal/index"
	"personal-kb/internal/personaldata"
)

const usage = `Usage: kb-tool <command> [args]

Commands:
  setup <path>               record the personal data root
  status                     show configuration, stats and reports
  consolidate                merge all reports into the knowledge base
  export <urls|markdown>     export for NotebookLM
  backup                     run backup.sh from the data root
  is-processed <id> [index]  check whether a video has a report
  reindex                    rebuild the processed index from report files`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	config.LoadDotEnv()
	var appCfg config.App
	config.MustParse(&appCfg)

	kb, err := personaldata.NewManager(appCfg.AppRoot)
	if err != nil {
		log.Printf("⚠️ %v", err)
	}

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "setup":
		err = setup(kb, args)
	case "status":
		err = status(ctx, kb)
	case "consolidate":
		var path string
		if path, err = kb.GenerateConsolidatedKB(); err == nil {
			fmt.Printf("✅ Knowledge base written to %s\n", path)
		}
	case "export":
		err = export(kb, args)
	case "backup":
		var path string
		if path, err = kb.CreateBackup(ctx); err == nil {
			fmt.Printf("✅ Backup: %s\n", path)
		}
	case "is-processed":
		err = isProcessed(ctx, kb, args)
	case "reindex":
		err = reindex(ctx, kb)
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, personaldata.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "❌ Personal data location not configured!")
			fmt.Fprint(os.Stderr, "\nRun setup first:\n  kb-tool setup <path>\n\n")
			os.Exit(1)
		}
		log.Fatalf("❌ Error: %v", err)
	}
}

func setup(kb *personaldata.Manager, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: kb-tool setup <path>")
	}
	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create data root: %w", err)
	}
	if err := kb.SetPersonalDataPath(root); err != nil {
		return err
	}
	fmt.Printf("✅ Personal data location set to %s\n   Config: %s\n", root, kb.ConfigFile())
	return nil
}

func status(ctx context.Context, kb *personaldata.Manager) error {
	root, err := kb.PersonalDataPath()
	if err != nil {
		return err
	}
	fmt.Printf("✅ Personal data location: %s\n", root)
	if lu := kb.Config().LastUpdated; !lu.IsZero() {
		fmt.Printf("   Last updated: %s\n", lu.Format("2006-01-02 15:04:05 MST"))
	}

	stats, err := kb.LoadStats()
	if err != nil {
		return err
	}
	if stats != nil {
		fmt.Println("\n📊 Stats:")
		fmt.Printf("   Total Videos: %d\n", stats.TotalVideos)
		fmt.Printf("   Processed: %d\n", stats.ProcessedVideos)
		fmt.Printf("   Unprocessed: %d\n", stats.Unprocessed())
		fmt.Printf("   Total Cost: $%.2f\n", stats.TotalCost)
	}

	summaries, err := kb.ReportSummaries()
	if err != nil {
		return err
	}
	fmt.Printf("\n📚 Reports: %d\n", len(summaries))
	for _, s := range summaries {
		fmt.Printf("   %s  %s\n", filepath.Base(s.Path), s.Title)
	}

	indexPath, err := kb.ProcessedIndexPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(indexPath); err == nil {
		idx, err := index.Open(ctx, indexPath)
		if err != nil {
			return err
		}
		defer idx.Close()
		n, err := idx.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("\n🗂  Processed index: %d video(s)\n", n)
		entries, err := idx.List(ctx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("   %d  %s  %s\n", e.Index, e.VideoID, e.ProcessedAt.Format("2006-01-02"))
		}
	}
	return nil
}

func export(kb *personaldata.Manager, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: kb-tool export <urls|markdown>")
	}
	path, err := kb.Export(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("✅ Exported to %s\n", path)
	return nil
}

func isProcessed(ctx context.Context, kb *personaldata.Manager, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: kb-tool is-processed <id> [index]")
	}
	id := args[0]
	idx := -1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		idx = n
	}

	loose, err := kb.IsProcessed(id, idx)
	if err != nil {
		return err
	}
	exact := false
	indexPath, err := kb.ProcessedIndexPath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(indexPath); statErr == nil {
		db, err := index.Open(ctx, indexPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if exact, err = db.Has(ctx, id); err != nil {
			return err
		}
	}

	mark := func(ok bool) string {
		if ok {
			return "✅"
		}
		return "❌"
	}
	fmt.Printf("Video %s processed: %s (reports: %s, index: %s)\n", id, mark(loose || exact), mark(loose), mark(exact))
	return nil
}

func reindex(ctx context.Context, kb *personaldata.Manager) error {
	reports, err := kb.ListReports()
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

	n, err := idx.Rebuild(ctx, reports, personaldata.ParseReportFileName)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Indexed %d of %d report(s) into %s\n", n, len(reports), indexPath)
	return nil
}
