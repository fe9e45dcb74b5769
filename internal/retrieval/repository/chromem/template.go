package chromem

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/embeddings"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/retrieval/repository"
	pkgLog "card-consumption-assistant/pkg/log"
)

type implRepository struct {
	db             *chromem.DB
	embedder       embeddings.Embedder
	collectionName string
	l              pkgLog.Logger

	mu         sync.Mutex
	collection *chromem.Collection
}

// New creates an embedded template index. An empty path keeps it in memory,
// otherwise it is persisted as gob files under path.
func New(path string, embedder embeddings.Embedder, collectionName string, l pkgLog.Logger) (repository.VectorRepository, error) {
	db := chromem.NewDB()
	if path != "" {
		var err error
		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("open chromem db at %s: %w", path, err)
		}
	}

	return &implRepository{
		db:             db,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}, nil
}

func (r *implRepository) EnsureCollection(ctx context.Context) error {
	_, err := r.getCollection()
	return err
}

func (r *implRepository) Upsert(ctx context.Context, docs []model.TemplateDocument) error {
	col, err := r.getCollection()
	if err != nil {
		return err
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}
	vectors, err := r.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		r.l.Errorf(ctx, "chromem repository: failed to embed templates: %v", err)
		return fmt.Errorf("failed to embed templates: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("embedder returned %d vectors for %d templates", len(vectors), len(docs))
	}

	chromemDocs := make([]chromem.Document, len(docs))
	for i, d := range docs {
		md, err := encodeMetadata(d.Metadata)
		if err != nil {
			return fmt.Errorf("template %s: %w", d.ID, err)
		}
		chromemDocs[i] = chromem.Document{
			ID:        d.ID,
			Content:   d.Content,
			Metadata:  md,
			Embedding: vectors[i],
		}
	}

	// Embeddings are precomputed, so one worker is enough.
	if err := col.AddDocuments(ctx, chromemDocs, 1); err != nil {
		r.l.Errorf(ctx, "chromem repository: failed to add documents: %v", err)
		return fmt.Errorf("failed to add documents: %w", err)
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.CandidateDocument, error) {
	col, err := r.getCollection()
	if err != nil {
		return nil, err
	}

	// chromem rejects nResults above the document count.
	limit := opt.Limit
	count := col.Count()
	if count == 0 || limit <= 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := col.Query(ctx, opt.Query, limit, nil, nil)
	if err != nil {
		r.l.Errorf(ctx, "chromem repository: failed to query: %v", err)
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	docs := make([]model.CandidateDocument, 0, len(results))
	for _, res := range results {
		docs = append(docs, model.CandidateDocument{
			ID:       res.ID,
			Content:  res.Content,
			Metadata: decodeMetadata(res.Metadata),
			Score:    float64(res.Similarity),
		})
	}
	return docs, nil
}

func (r *implRepository) getCollection() (*chromem.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.collection != nil {
		return r.collection, nil
	}

	col, err := r.db.GetOrCreateCollection(r.collectionName, nil, r.embeddingFunc())
	if err != nil {
		return nil, fmt.Errorf("get or create collection %s: %w", r.collectionName, err)
	}
	r.collection = col
	return col, nil
}

func (r *implRepository) embeddingFunc() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return r.embedder.EmbedQuery(ctx, text)
	}
}

// encodeMetadata stores every value as JSON because chromem metadata is string-only.
func encodeMetadata(md map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(md))
	for k, v := range md {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode metadata %q: %w", k, err)
		}
		out[k] = string(raw)
	}
	return out, nil
}

// decodeMetadata reverses encodeMetadata. Values written by other tools that
// are not valid JSON are kept as plain strings.
func decodeMetadata(md map[string]string) map[string]any {
	out := make(map[string]any, len(md))
	for k, raw := range md {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			out[k] = raw
			continue
		}
		out[k] = v
	}
	return out
}
