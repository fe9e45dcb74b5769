package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/internal/model"
	retrievalUC "card-consumption-assistant/internal/retrieval/usecase"
	"card-consumption-assistant/internal/retrieval/repository"
	"card-consumption-assistant/internal/session"
	"card-consumption-assistant/internal/session/repository/memory"
	"card-consumption-assistant/pkg/datemath"
	"card-consumption-assistant/pkg/llmprovider"
	"card-consumption-assistant/pkg/moderation"
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

// scriptedLLM answers calls in order from replies.
type scriptedLLM struct {
	mu       sync.Mutex
	replies  []scriptedReply
	requests []*llmprovider.Request
}

type scriptedReply struct {
	text string
	err  error
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := len(s.requests)
	s.requests = append(s.requests, req)
	if i >= len(s.replies) {
		return nil, errors.New("unexpected model call")
	}
	r := s.replies[i]
	if r.err != nil {
		return nil, r.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage(llmprovider.RoleAssistant, r.text),
		ProviderName: "fake",
	}, nil
}

func (s *scriptedLLM) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type fakeVectorRepository struct {
	docs     []model.CandidateDocument
	err      error
	searched []repository.SearchOptions
}

func (f *fakeVectorRepository) EnsureCollection(ctx context.Context) error { return nil }

func (f *fakeVectorRepository) Upsert(ctx context.Context, docs []model.TemplateDocument) error {
	return nil
}

func (f *fakeVectorRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.CandidateDocument, error) {
	f.searched = append(f.searched, opt)
	return f.docs, f.err
}

type fixture struct {
	uc      *implUseCase
	llm     *scriptedLLM
	repo    *fakeVectorRepository
	history session.Store
}

func newFixture(t *testing.T, cfg Config, replies ...scriptedReply) *fixture {
	t.Helper()

	dates, err := datemath.NewParser("Asia/Taipei")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	llm := &scriptedLLM{replies: replies}
	repo := &fakeVectorRepository{}
	history := memory.New(100, time.Hour)
	l := &mockLogger{}

	uc := New(l, llm, retrievalUC.New(l, repo, 1, 0), history, moderation.NewDetector(""), dates, cfg).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2024, 9, 2, 15, 35, 40, 0, time.UTC) }

	return &fixture{uc: uc, llm: llm, repo: repo, history: history}
}

func reply(text string) scriptedReply { return scriptedReply{text: text} }

func strPtr(s string) *string { return &s }

func refTime() time.Time {
	return time.Date(2024, 9, 2, 15, 35, 40, 0, time.UTC)
}

func classifyInput(message string) intent.ClassifyInput {
	return intent.ClassifyInput{
		SessionID:     "S001",
		CustomerID:    "C123",
		Message:       message,
		ReferenceTime: refTime(),
	}
}
