// Package embedding builds the text embedder used to index and search
// canned-question templates.
package embedding

import (
	"fmt"

	"card-consumption-assistant/config"
	"card-consumption-assistant/pkg/voyage"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	ProviderAzure  = "azure"
	ProviderOpenAI = "openai"
	ProviderVoyage = "voyage"

	defaultAzureAPIVersion = "2024-02-01"
)

// New returns an embedder for the configured provider.
func New(cfg config.EmbeddingConfig) (embeddings.Embedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding provider %s: API key is required", cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderVoyage:
		client, err := voyage.New(cfg.APIKey)
		if err != nil {
			return nil, err
		}
		return client.WithBaseURL(cfg.BaseURL).WithModel(cfg.Model), nil

	case ProviderAzure, ProviderOpenAI:
		if cfg.Model == "" {
			return nil, fmt.Errorf("embedding provider %s: model is required", cfg.Provider)
		}
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithEmbeddingModel(cfg.Model),
		}
		if cfg.Provider == ProviderAzure {
			if cfg.BaseURL == "" {
				return nil, fmt.Errorf("embedding provider azure: endpoint is required")
			}
			apiVersion := cfg.APIVersion
			if apiVersion == "" {
				apiVersion = defaultAzureAPIVersion
			}
			opts = append(opts,
				openai.WithBaseURL(cfg.BaseURL),
				openai.WithAPIType(openai.APITypeAzure),
				openai.WithAPIVersion(apiVersion),
			)
		} else if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}

		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("creating %s embedding client: %w", cfg.Provider, err)
		}
		embedder, err := embeddings.NewEmbedder(llm)
		if err != nil {
			return nil, fmt.Errorf("creating embedder: %w", err)
		}
		return embedder, nil

	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
}
