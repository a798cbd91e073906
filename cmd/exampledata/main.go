// Command exampledata writes the deterministic demo datasets for every chart
// variant into the data directory, plus the xlsx format-reference workbook.
package main

import (
	"log"
	"path/filepath"

	"sciplot/internal/config"
	"sciplot/internal/testkit"

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

	if err := testkit.WriteAll(cfg.Paths.DataDir); err != nil {
		log.Fatalf("Failed to write example datasets: %v", err)
	}

	workbook := filepath.Join(cfg.Paths.DataDir, "dataset_formats.xlsx")
	if err := testkit.ExportFormats(workbook); err != nil {
		log.Fatalf("Failed to export format workbook: %v", err)
	}

	log.Printf("✅ example datasets written to %s", cfg.Paths.DataDir)
}
