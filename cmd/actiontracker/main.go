// Package main is the entry point for actiontracker.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/actiontracker/internal/cli"
	"github.com/samdwyer/actiontracker/internal/config"
	"github.com/samdwyer/actiontracker/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// run executes the command line with telemetry around it.
func run(ctx context.Context, cfg config.Config) error {
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, cfg.ServiceName)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Tracker will run without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	return cli.Execute(cfg)
}
