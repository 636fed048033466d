package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"lawpick-backend/config"
	"lawpick-backend/repository"
)

func main() {
	reset := flag.Bool("reset", false, "drop letter_documents before creating it (development only)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if *reset {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS letter_documents CASCADE"); err != nil {
			log.Fatalf("Failed to drop table: %v", err)
		}
		log.Println("✓ Dropped existing letter_documents table (if any)")
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create letter_documents table: %v", err)
	}

	fmt.Println("✅ Database schema created successfully!")
	fmt.Println("   Table: letter_documents")
}
