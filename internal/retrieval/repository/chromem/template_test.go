package chromem

import (
	"context"
	"strings"
	"testing"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/retrieval/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// keywordEmbedder maps text onto two keyword axes plus a small bias.
type keywordEmbedder struct{}

func (keywordEmbedder) vector(text string) []float32 {
	v := []float32{0, 0, 0.1}
	if strings.Contains(text, "全聯") {
		v[0] = 1
	}
	if strings.Contains(text, "總額") {
		v[1] = 1
	}
	return v
}

func (e keywordEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = e.vector(t)
	}
	return out, nil
}

func (e keywordEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.vector(text), nil
}

func TestChromemRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := New("", keywordEmbedder{}, "templates", &mockLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("search on empty collection", func(t *testing.T) {
		docs, err := repo.Search(ctx, repository.SearchOptions{Query: "全聯", Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 0 {
			t.Fatalf("expected no documents, got %d", len(docs))
		}
	})

	err = repo.Upsert(ctx, []model.TemplateDocument{
		{ID: "t1", Content: "我上個月在全聯花了多少", Metadata: map[string]any{
			"category": "category:13",
			"SQL1":     "SELECT * FROM txn WHERE store = '&string1'",
			"weight":   3,
		}},
		{ID: "t2", Content: "這個月刷卡總額", Metadata: map[string]any{"category": "category:01"}},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	t.Run("best match first with typed metadata", func(t *testing.T) {
		docs, err := repo.Search(ctx, repository.SearchOptions{Query: "全聯", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("expected limit capped to 2 documents, got %d", len(docs))
		}
		top := docs[0]
		if top.ID != "t1" || top.Score < 0.99 {
			t.Fatalf("unexpected top document: %+v", top)
		}
		if top.Metadata["category"] != "category:13" {
			t.Errorf("category = %v", top.Metadata["category"])
		}
		if top.Metadata["weight"] != float64(3) {
			t.Errorf("weight = %#v, want float64(3)", top.Metadata["weight"])
		}
		if docs[1].Score >= top.Score {
			t.Errorf("results not ordered: %v then %v", top.Score, docs[1].Score)
		}
	})

	t.Run("upsert replaces by id", func(t *testing.T) {
		err := repo.Upsert(ctx, []model.TemplateDocument{
			{ID: "t2", Content: "本月刷卡總額", Metadata: map[string]any{"category": "category:02"}},
		})
		if err != nil {
			t.Fatalf("Upsert: %v", err)
		}
		docs, err := repo.Search(ctx, repository.SearchOptions{Query: "總額", Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 || docs[0].Metadata["category"] != "category:02" {
			t.Fatalf("unexpected documents: %+v", docs)
		}
	})
}

func TestDecodeMetadataKeepsForeignStrings(t *testing.T) {
	md := decodeMetadata(map[string]string{"raw": "category:13", "json": `"x"`})
	if md["raw"] != "category:13" || md["json"] != "x" {
		t.Fatalf("unexpected decode: %v", md)
	}
}
