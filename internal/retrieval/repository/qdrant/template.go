package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/embeddings"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/retrieval/repository"
	pkgLog "card-consumption-assistant/pkg/log"
	pkgQdrant "card-consumption-assistant/pkg/qdrant"
)

// Payload layout shared with collections written by LangChain's Qdrant store.
const (
	payloadContent    = "page_content"
	payloadMetadata   = "metadata"
	payloadTemplateID = "template_id"
)

// templateNamespace seeds the deterministic point IDs.
var templateNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8") // URL namespace

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       embeddings.Embedder
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a Qdrant-backed template index.
func New(client *pkgQdrant.Client, embedder embeddings.Embedder, collectionName string, vectorSize int, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}

func (r *implRepository) EnsureCollection(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}

	if err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: pkgQdrant.DistanceCosine,
		},
	}); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: created collection %s (size=%d)", r.collectionName, r.vectorSize)
	return nil
}

func (r *implRepository) Upsert(ctx context.Context, docs []model.TemplateDocument) error {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}

	vectors, err := r.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to embed templates: %v", err)
		return fmt.Errorf("failed to embed templates: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("embedder returned %d vectors for %d templates", len(vectors), len(docs))
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, d := range docs {
		metadata := d.Metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		points[i] = pkgQdrant.Point{
			ID:     templateIDToUUID(d.ID),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				payloadTemplateID: d.ID,
				payloadContent:    d.Content,
				payloadMetadata:   metadata,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert points: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.CandidateDocument, error) {
	vector, err := r.embedder.EmbedQuery(ctx, opt.Query)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	req := pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       opt.Limit,
		WithPayload: true,
	}
	if opt.ScoreThreshold > 0 {
		threshold := opt.ScoreThreshold
		req.ScoreThreshold = &threshold
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, req)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	docs := make([]model.CandidateDocument, 0, len(resp.Result))
	for _, scored := range resp.Result {
		docs = append(docs, toCandidate(scored))
	}
	return docs, nil
}

// toCandidate reads both the nested LangChain payload and a flat payload.
func toCandidate(p pkgQdrant.ScoredPoint) model.CandidateDocument {
	doc := model.CandidateDocument{
		ID:    fmt.Sprint(p.ID),
		Score: p.Score,
	}
	if id, ok := p.Payload[payloadTemplateID].(string); ok && id != "" {
		doc.ID = id
	}
	if content, ok := p.Payload[payloadContent].(string); ok {
		doc.Content = content
	}

	if nested, ok := p.Payload[payloadMetadata].(map[string]interface{}); ok {
		doc.Metadata = nested
		return doc
	}

	doc.Metadata = make(map[string]any, len(p.Payload))
	for k, v := range p.Payload {
		if k == payloadContent || k == payloadTemplateID {
			continue
		}
		doc.Metadata[k] = v
	}
	return doc
}

// templateIDToUUID maps a template ID to a stable UUID v5, since Qdrant
// accepts only UUIDs or unsigned integers as point IDs.
func templateIDToUUID(templateID string) string {
	return uuid.NewSHA1(templateNamespace, []byte(templateID)).String()
}
