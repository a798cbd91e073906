// Command plotserver serves the generated charts, run report and dataset
// format documentation over HTTP.
package main

import (
	"log"

	"sciplot/internal/config"
	"sciplot/internal/server"

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

	if err := server.New(cfg).ListenAndServe(); err != nil {
		log.Fatalf("Preview server failed: %v", err)
	}
}
