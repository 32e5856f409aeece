package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"personal-kb/internal/config"
	"personal-kb/internal/migrate"
)

func main() {
	config.LoadDotEnv()

	var cfg config.Database
	config.MustParse(&cfg)

	if cfg.URL == "" {
		fmt.Fprintln(os.Stderr, "Error: DATABASE_URL environment variable is not set.")
		fmt.Println("Usage: DATABASE_URL=... migrate")
		os.Exit(1)
	}

	schema, err := migrate.LoadSchema(cfg.SchemaPath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println("Running migration...")
	if err := migrate.Run(context.Background(), cfg.URL, schema); err != nil {
		if errors.Is(err, migrate.ErrMigrationFailed) {
			log.Fatalf("❌ Migration failed: %v", err)
		}
		log.Fatalf("❌ %v", err)
	}
	fmt.Println("Migration completed successfully!")
}
