package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"card-consumption-assistant/internal/evaluation"
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

// flakyRepository fails the first failures calls.
type flakyRepository struct {
	failures int
	calls    int
	stored   []evaluation.Evaluation
}

func (f *flakyRepository) CreateEvaluation(ctx context.Context, e evaluation.Evaluation) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("connection reset")
	}
	f.stored = append(f.stored, e)
	return nil
}

func input() evaluation.EvaluateInput {
	return evaluation.EvaluateInput{
		TxnSeq:     "seq-1",
		SessionID:  "S1",
		CustomerID: "C1",
		Positive:   true,
		Time:       time.Date(2024, 9, 2, 15, 35, 40, 0, time.UTC),
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		failures     int
		wantErr      bool
		wantCalls    int
		wantAttempts int
	}{
		{name: "first attempt", failures: 0, wantCalls: 1, wantAttempts: 1},
		{name: "succeeds on third", failures: 2, wantCalls: 3, wantAttempts: 3},
		{name: "exhausted", failures: 3, wantErr: true, wantCalls: 3, wantAttempts: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &flakyRepository{failures: tt.failures}
			uc := New(repo, &mockLogger{}, 0)

			out, err := uc.Evaluate(context.Background(), input())

			if tt.wantErr {
				if !errors.Is(err, evaluation.ErrInsertExhausted) {
					t.Fatalf("expected ErrInsertExhausted, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.calls != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, repo.calls)
			}
			if out.Attempts != tt.wantAttempts {
				t.Errorf("expected %d attempts, got %d", tt.wantAttempts, out.Attempts)
			}
			if out.SessionID != "S1" || out.CustomerID != "C1" {
				t.Errorf("ids not echoed: %+v", out)
			}
			if !tt.wantErr && (len(repo.stored) != 1 || repo.stored[0].TxnSeq != "seq-1" || !repo.stored[0].Positive) {
				t.Errorf("unexpected stored rows %+v", repo.stored)
			}
		})
	}
}

func TestEvaluate_CancelledContext(t *testing.T) {
	repo := &flakyRepository{}
	uc := New(repo, &mockLogger{}, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Evaluate(ctx, input()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("expected no insert, got %d", repo.calls)
	}
}
