package main

import (
	"context"
	"fmt"
	"os"

	"card-consumption-assistant/config"
	"card-consumption-assistant/internal/retrieval"
	"card-consumption-assistant/internal/retrieval/backend"
	retrievalUC "card-consumption-assistant/internal/retrieval/usecase"
	"card-consumption-assistant/pkg/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/seed-templates/main.go <path/to/templates.yaml>")
		fmt.Println("Example: go run scripts/seed-templates/main.go scripts/seed-templates/templates.example.yaml")
		os.Exit(1)
	}
	templatesPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	raw, err := os.ReadFile(templatesPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read %s: %v", templatesPath, err)
	}
	docs, err := parseTemplates(raw)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse %s: %v", templatesPath, err)
	}
	logger.Infof(ctx, "Loaded %d templates from %s", len(docs), templatesPath)

	repo, err := backend.New(cfg, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize %s backend: %v", cfg.Retrieval.Backend, err)
	}
	uc := retrievalUC.New(logger, repo, cfg.Retrieval.ResultCap, cfg.Retrieval.ScoreThreshold)

	out, err := uc.Index(ctx, retrieval.IndexInput{Documents: docs})
	if err != nil {
		logger.Fatalf(ctx, "Failed to index templates: %v", err)
	}

	logger.Infof(ctx, "Seeding complete! %d templates indexed into %s (%s).",
		out.Indexed, cfg.Retrieval.CollectionName, cfg.Retrieval.Backend)
}
