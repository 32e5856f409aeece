package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"

	"personal-kb/internal/config"
	"personal-kb/internal/youtube"
)

const previewCount = 5

func main() {
	config.LoadDotEnv()

	var cfg config.YouTube
	config.MustParse(&cfg)

	rule := strings.Repeat("═", 70)
	fmt.Printf("📺 Automated YouTube Watch History Fetcher\n\n%s\n\n", rule)

	if err := run(context.Background(), cfg, rule); err != nil {
		if errors.Is(err, youtube.ErrMissingCredentials) {
			fmt.Printf("❌ Error: %s not found\n\n%s\n\n", cfg.CredentialsPath, youtube.CredentialsHelp)
		} else {
			fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.YouTube, rule string) error {
	oauthCfg, err := youtube.LoadCredentials(cfg.CredentialsPath)
	if err != nil {
		return err
	}

	auth := &youtube.Authorizer{
		Config:       oauthCfg,
		TokenPath:    cfg.TokenPath,
		RefreshToken: cfg.RefreshToken,
		In:           os.Stdin,
		Out:          os.Stdout,
	}
	client, err := auth.Client(ctx)
	if err != nil {
		return err
	}

	lister, err := youtube.NewLister(ctx, option.WithHTTPClient(client))
	if err != nil {
		return err
	}

	fmt.Println("📥 Fetching watch history...")
	fmt.Println()
	fmt.Println("⚠️  YouTube API no longer provides direct watch history access")
	fmt.Println()
	fmt.Println("📺 Fetching liked videos instead...")
	fmt.Println()

	all, err := lister.LikedVideos(ctx, cfg.MaxResults)
	if err != nil {
		return err
	}
	videos, removed := youtube.FilterPolitical(all)

	fmt.Println("\n📊 Results:")
	fmt.Printf("   Total videos: %d\n", len(all))
	fmt.Printf("   After filtering: %d\n", len(videos))
	fmt.Printf("   Filtered out: %d political videos\n\n", removed)

	if err := youtube.WriteVideos(cfg.OutputPath, videos); err != nil {
		return err
	}
	fmt.Printf("✅ Saved to %s\n\n", cfg.OutputPath)

	fmt.Printf("📋 Preview (first %d videos):\n\n", previewCount)
	for i, v := range videos {
		if i == previewCount {
			break
		}
		fmt.Printf("%d. %s\n   %s\n   %s\n\n", i+1, v.Title, v.Channel, v.URL)
	}

	fmt.Println(rule)
	fmt.Print("\n🚀 Next steps:\n\n")
	fmt.Println("1. Run: process-videos")
	fmt.Println("2. Review new videos to add")
	fmt.Println("3. Update ai_video_library.html")
	fmt.Println("4. Process videos: process-videos -run")
	fmt.Println()
	return nil
}
