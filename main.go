package main

import (
	"context"
	"log"
	"os"

	"sciplot/internal/config"
	"sciplot/internal/runner"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	summary, err := runner.New(cfg).Run(context.Background())
	if err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}

	if err := runner.WriteReport(summary, cfg.Paths.OutputDir); err != nil {
		log.Printf("Warning: failed to write report: %v", err)
	}

	log.Printf("📊 %d charts succeeded, %d failed", summary.Succeeded(), summary.Failed())
	if summary.Failed() > 0 {
		os.Exit(1)
	}
}
