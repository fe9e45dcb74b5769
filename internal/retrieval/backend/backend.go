// Package backend builds the vector repository selected by retrieval.backend.
package backend

import (
	"fmt"

	"card-consumption-assistant/config"
	"card-consumption-assistant/internal/retrieval/repository"
	chromemRepo "card-consumption-assistant/internal/retrieval/repository/chromem"
	qdrantRepo "card-consumption-assistant/internal/retrieval/repository/qdrant"
	"card-consumption-assistant/pkg/embedding"
	pkgLog "card-consumption-assistant/pkg/log"
	pkgQdrant "card-consumption-assistant/pkg/qdrant"
)

const (
	Qdrant  = "qdrant"
	Chromem = "chromem"
)

// New wires the embedding provider and the configured vector store.
func New(cfg *config.Config, l pkgLog.Logger) (repository.VectorRepository, error) {
	embedder, err := embedding.New(cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}

	switch cfg.Retrieval.Backend {
	case Qdrant, "":
		client := pkgQdrant.NewClient(cfg.Qdrant.URL, cfg.Qdrant.APIKey)
		return qdrantRepo.New(client, embedder, cfg.Retrieval.CollectionName, cfg.Qdrant.VectorSize, l), nil
	case Chromem:
		return chromemRepo.New(cfg.Chromem.Path, embedder, cfg.Retrieval.CollectionName, l)
	default:
		return nil, fmt.Errorf("unknown retrieval backend %q", cfg.Retrieval.Backend)
	}
}
