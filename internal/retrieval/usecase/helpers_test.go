package usecase

import (
	"context"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/retrieval/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeRepository struct {
	docs       []model.CandidateDocument
	searchErr  error
	ensureErr  error
	upsertErr  error
	lastSearch repository.SearchOptions
	upserted   []model.TemplateDocument
	ensured    int
}

func (f *fakeRepository) EnsureCollection(ctx context.Context) error {
	f.ensured++
	return f.ensureErr
}

func (f *fakeRepository) Upsert(ctx context.Context, docs []model.TemplateDocument) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, docs...)
	return nil
}

func (f *fakeRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.CandidateDocument, error) {
	f.lastSearch = opt
	return f.docs, f.searchErr
}
