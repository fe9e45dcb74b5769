package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"card-consumption-assistant/internal/evaluation"
	"card-consumption-assistant/pkg/datemath"
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

type fakeUseCase struct {
	err   error
	input evaluation.EvaluateInput
	calls int
}

func (f *fakeUseCase) Evaluate(ctx context.Context, input evaluation.EvaluateInput) (evaluation.EvaluateOutput, error) {
	f.calls++
	f.input = input
	return evaluation.EvaluateOutput{SessionID: input.SessionID, CustomerID: input.CustomerID, Attempts: 1}, f.err
}

type envelopeResp struct {
	MWHEADER map[string]any `json:"MWHEADER"`
	TRANRS   map[string]any `json:"TRANRS"`
}

func serve(t *testing.T, uc evaluation.UseCase, body string) envelopeResp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("Asia/Taipei")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	r := gin.New()
	RegisterRoutes(r.Group("/api/card-consumption"), New(&mockLogger{}, uc, dates))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/card-consumption/evaluate", strings.NewReader(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", w.Code)
	}
	var resp envelopeResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp
}

func body(evaluate, at string) string {
	return fmt.Sprintf(`{"MWHEADER":{"MSGID":null,"SOURCECHANNEL":"CHAT-API","TXNSEQ":"seq-9"},`+
		`"TRANRQ":{"sessionId":"16574823aA","customerId":"E222222897","evaluate":%s,"time":%q}}`, evaluate, at)
}

func TestEvaluate(t *testing.T) {
	uc := &fakeUseCase{}

	resp := serve(t, uc, body("false", "2024/09/02 15:35:40"))

	if resp.MWHEADER["RETURNCODE"] != nil {
		t.Fatalf("expected success, got %v", resp.MWHEADER)
	}
	if resp.TRANRS["sessionId"] != "16574823aA" || resp.TRANRS["customerId"] != "E222222897" {
		t.Errorf("unexpected TRANRS %v", resp.TRANRS)
	}
	if uc.input.TxnSeq != "seq-9" || uc.input.Positive {
		t.Errorf("unexpected input %+v", uc.input)
	}
	if got := uc.input.Time.Format("2006/01/02 15:04:05"); got != "2024/09/02 15:35:40" {
		t.Errorf("unexpected time %s", got)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantCode   string
		wantTranRS bool
	}{
		{name: "insert exhausted", body: body("true", "2024/09/02 15:35:40"), ucErr: fmt.Errorf("%w: boom", evaluation.ErrInsertExhausted), wantCode: "2002", wantTranRS: true},
		{name: "unexpected", body: body("true", "2024/09/02 15:35:40"), ucErr: errors.New("boom"), wantCode: "9999", wantTranRS: true},
		{name: "missing evaluate", body: body("null", "2024/09/02 15:35:40"), wantCode: "1003"},
		{name: "bad time", body: body("true", "yesterday"), wantCode: "1003"},
		{name: "not json", body: "evaluate", wantCode: "1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(t, &fakeUseCase{err: tt.ucErr}, tt.body)

			if resp.MWHEADER["RETURNCODE"] != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, resp.MWHEADER["RETURNCODE"])
			}
			if tt.wantTranRS && resp.TRANRS["sessionId"] != "16574823aA" {
				t.Errorf("expected TRANRS ids on failure, got %v", resp.TRANRS)
			}
		})
	}
}
