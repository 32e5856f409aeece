package main

import (
	"log"
	"os"

	"personal-kb/internal/config"
	"personal-kb/internal/youtube"
)

func main() {
	config.LoadDotEnv()

	var cfg config.YouTube
	config.MustParse(&cfg)

	if err := youtube.WritePromptInstructions(os.Stdout, cfg.OutputPath); err != nil {
		log.Fatalf("❌ Failed to print prompt: %v", err)
	}
}
