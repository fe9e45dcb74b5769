package usecase

import (
	"context"
	"errors"
	"testing"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/retrieval"
)

func TestIndex(t *testing.T) {
	ctx := context.Background()
	docs := []model.TemplateDocument{
		{ID: "t1", Content: "我上個月在全聯花了多少", Metadata: map[string]any{"category": "category:13"}},
		{ID: "t2", Content: "這個月刷卡總額", Metadata: map[string]any{"category": "category:01"}},
	}

	t.Run("indexes after ensuring the collection", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := New(&mockLogger{}, repo, 1, 0)

		out, err := uc.Index(ctx, retrieval.IndexInput{Documents: docs})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Indexed != 2 || len(repo.upserted) != 2 || repo.ensured != 1 {
			t.Fatalf("out=%+v upserted=%d ensured=%d", out, len(repo.upserted), repo.ensured)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		uc := New(&mockLogger{}, &fakeRepository{}, 1, 0)
		if _, err := uc.Index(ctx, retrieval.IndexInput{}); !errors.Is(err, retrieval.ErrNoDocuments) {
			t.Fatalf("expected ErrNoDocuments, got %v", err)
		}
	})

	t.Run("blank content", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := New(&mockLogger{}, repo, 1, 0)
		_, err := uc.Index(ctx, retrieval.IndexInput{Documents: []model.TemplateDocument{{ID: "x", Content: " "}}})
		if !errors.Is(err, retrieval.ErrMissingContent) {
			t.Fatalf("expected ErrMissingContent, got %v", err)
		}
		if repo.ensured != 0 {
			t.Fatal("collection should not be touched on invalid input")
		}
	})

	t.Run("upsert failure", func(t *testing.T) {
		repo := &fakeRepository{upsertErr: errors.New("boom")}
		uc := New(&mockLogger{}, repo, 1, 0)
		if _, err := uc.Index(ctx, retrieval.IndexInput{Documents: docs}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("ensure failure", func(t *testing.T) {
		repo := &fakeRepository{ensureErr: errors.New("boom")}
		uc := New(&mockLogger{}, repo, 1, 0)
		if _, err := uc.Index(ctx, retrieval.IndexInput{Documents: docs}); err == nil {
			t.Fatal("expected error")
		}
		if len(repo.upserted) != 0 {
			t.Fatal("nothing should be upserted")
		}
	})
}
