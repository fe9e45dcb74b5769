package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"card-consumption-assistant/internal/intent"
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
	decision      intent.Decision
	compose       intent.ComposeOutput
	block         bool
	classifyInput intent.ClassifyInput
	composeInput  intent.ComposeInput
	calls         int
}

func (f *fakeUseCase) Classify(ctx context.Context, input intent.ClassifyInput) intent.ClassifyOutput {
	f.calls++
	f.classifyInput = input
	if f.block {
		<-ctx.Done()
		return intent.ClassifyOutput{SessionID: input.SessionID, CustomerID: input.CustomerID, Decision: intent.Failed(ctx.Err())}
	}
	return intent.ClassifyOutput{SessionID: input.SessionID, CustomerID: input.CustomerID, Decision: f.decision}
}

func (f *fakeUseCase) Compose(ctx context.Context, input intent.ComposeInput) intent.ComposeOutput {
	f.calls++
	f.composeInput = input
	out := f.compose
	out.SessionID, out.CustomerID = input.SessionID, input.CustomerID
	return out
}

func newTestRouter(t *testing.T, uc intent.UseCase, timeout time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("Asia/Taipei")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	r := gin.New()
	RegisterRoutes(r.Group("/api/card-consumption"), New(&mockLogger{}, uc, dates, timeout))
	return r
}

type envelopeResp struct {
	MWHEADER map[string]any `json:"MWHEADER"`
	TRANRS   map[string]any `json:"TRANRS"`
}

func post(t *testing.T, r *gin.Engine, path, body string) envelopeResp {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", w.Code)
	}
	var resp envelopeResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v: %s", err, w.Body.String())
	}
	return resp
}

const header = `"MWHEADER":{"MSGID":null,"SOURCECHANNEL":"CHAT-API","TXNSEQ":"008788888-da-aaa-dd"}`

func chatBodyJSON(tranrq string) string {
	return `{` + header + `,"TRANRQ":` + tranrq + `}`
}

func TestChat_Matched(t *testing.T) {
	start, store := "2024/08/01", "StoreX"
	uc := &fakeUseCase{decision: intent.Decision{
		Outcome: intent.OutcomeMatched,
		Template: intent.Template{
			TID:          "13",
			StartDate:    &start,
			StoreName:    []*string{&store, nil},
			CategoryName: []*string{nil},
		},
	}}
	r := newTestRouter(t, uc, time.Second)

	resp := post(t, r, "/api/card-consumption/chat", chatBodyJSON(
		`{"sessionId":"16574823aA","customerId":"E222222897","message":"上個月在StoreX花多少","time":"2024/09/02 15:35:40"}`))

	if resp.MWHEADER["RETURNCODE"] != nil {
		t.Fatalf("expected success, got %v", resp.MWHEADER)
	}
	if resp.MWHEADER["TXNSEQ"] != "008788888-da-aaa-dd" {
		t.Errorf("header not echoed: %v", resp.MWHEADER)
	}
	if resp.TRANRS["sessionId"] != "16574823aA" || resp.TRANRS["customerId"] != "E222222897" {
		t.Errorf("ids not echoed: %v", resp.TRANRS)
	}
	tmpl := resp.TRANRS["template"].(map[string]any)
	if tmpl["tid"] != "13" || tmpl["startDate"] != "2024/08/01" || tmpl["endDate"] != nil || tmpl["blockReason"] != nil {
		t.Errorf("unexpected template %v", tmpl)
	}
	stores := tmpl["storeName"].([]any)
	if len(stores) != 2 || stores[0] != "StoreX" || stores[1] != nil {
		t.Errorf("unexpected storeName %v", stores)
	}

	if got := uc.classifyInput.ReferenceTime.Format("2006-01-02 15:04:05"); got != "2024-09-02 15:35:40" {
		t.Errorf("unexpected reference time %s", got)
	}
	if uc.classifyInput.Message != "上個月在StoreX花多少" {
		t.Errorf("unexpected message %q", uc.classifyInput.Message)
	}
}

func TestChat_BlockedKeepsShape(t *testing.T) {
	uc := &fakeUseCase{decision: intent.Blocked("此問題被阻擋")}
	r := newTestRouter(t, uc, time.Second)

	resp := post(t, r, "/api/card-consumption/chat", chatBodyJSON(
		`{"sessionId":"S1","customerId":"C1","message":"hi","time":"2024/09/02 15:35:40"}`))

	tmpl := resp.TRANRS["template"].(map[string]any)
	if tmpl["tid"] != "98" || tmpl["blockReason"] != "此問題被阻擋" {
		t.Errorf("unexpected template %v", tmpl)
	}
	for _, k := range []string{"startDate", "endDate", "storeName", "categoryName"} {
		if _, ok := tmpl[k]; !ok {
			t.Errorf("missing %s", k)
		}
	}
	if len(tmpl["storeName"].([]any)) != 2 || len(tmpl["categoryName"].([]any)) != 1 {
		t.Errorf("unexpected slot shape %v", tmpl)
	}
}

func TestChat_RequestErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "not json", body: `{"MWHEADER":`, wantCode: "1001"},
		{name: "missing header", body: `{"TRANRQ":{"sessionId":"S1","customerId":"C1","message":"hi","time":"2024/09/02 15:35:40"}}`, wantCode: "1002"},
		{name: "missing message", body: chatBodyJSON(`{"sessionId":"S1","customerId":"C1","time":"2024/09/02 15:35:40"}`), wantCode: "1003"},
		{name: "customer id too long", body: chatBodyJSON(`{"sessionId":"S1","customerId":"C1234567890","message":"hi","time":"2024/09/02 15:35:40"}`), wantCode: "1003"},
		{name: "bad time", body: chatBodyJSON(`{"sessionId":"S1","customerId":"C1","message":"hi","time":"2024-09-02"}`), wantCode: "1003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			r := newTestRouter(t, uc, time.Second)

			resp := post(t, r, "/api/card-consumption/chat", tt.body)

			if resp.MWHEADER["RETURNCODE"] != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, resp.MWHEADER["RETURNCODE"])
			}
			if resp.TRANRS != nil {
				t.Errorf("expected null TRANRS, got %v", resp.TRANRS)
			}
			if uc.calls != 0 {
				t.Error("pipeline must not run")
			}
		})
	}
}

func TestChat_Timeout(t *testing.T) {
	uc := &fakeUseCase{block: true}
	r := newTestRouter(t, uc, 20*time.Millisecond)

	resp := post(t, r, "/api/card-consumption/chat", chatBodyJSON(
		`{"sessionId":"S1","customerId":"C1","message":"hi","time":"2024/09/02 15:35:40"}`))

	if resp.MWHEADER["RETURNCODE"] != "2003" {
		t.Errorf("expected 2003, got %v", resp.MWHEADER["RETURNCODE"])
	}
}

func genaiBodyJSON(amount, count string) string {
	return chatBodyJSON(`{"sessionId":"16574823aA","customerId":"A","tid":"13","message":"五月在信義微風花多少",` +
		`"consumptionNumber":` + count + `,"totalAmount":` + amount + `,"startDate":"2024/05/11","endDate":"2024/06/11",` +
		`"storeName":["信義微風"],"categoryName":["百貨類別"],"time":"2024/09/02 16:35:40"}`)
}

func TestGenaiResponse(t *testing.T) {
	msg := "您共消費12筆。"
	uc := &fakeUseCase{compose: intent.ComposeOutput{Outcome: intent.OutcomeMatched, TID: "13", Message: &msg}}
	r := newTestRouter(t, uc, time.Second)

	resp := post(t, r, "/api/card-consumption/genai-response", genaiBodyJSON("24000.38", "12"))

	if resp.MWHEADER["RETURNCODE"] != nil {
		t.Fatalf("expected success, got %v", resp.MWHEADER)
	}
	if resp.TRANRS["genAI"].(map[string]any)["message"] != msg {
		t.Errorf("unexpected genAI %v", resp.TRANRS["genAI"])
	}
	tmpl := resp.TRANRS["template"].(map[string]any)
	if tmpl["tid"] != "13" || tmpl["blockReason"] != nil {
		t.Errorf("unexpected template %v", tmpl)
	}

	in := uc.composeInput
	if in.TotalAmount != "24000.38" || in.ConsumptionNumber != 12 || in.CustomerID != "A" {
		t.Errorf("unexpected compose input %+v", in)
	}
	if len(in.StoreName) != 1 || *in.StoreName[0] != "信義微風" {
		t.Errorf("unexpected store names %v", in.StoreName)
	}
}

func TestGenaiResponse_Validation(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		count  string
		want   any
	}{
		{name: "string amount", amount: `"100.5"`, count: "1", want: nil},
		{name: "zero count", amount: "0", count: "0", want: nil},
		{name: "three decimal places", amount: "1.005", count: "1", want: "1003"},
		{name: "too many digits", amount: "1234567890123456789", count: "1", want: "1003"},
		{name: "negative count", amount: "1", count: "-1", want: "1003"},
		{name: "missing amount", amount: "null", count: "1", want: "1003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := "ok"
			uc := &fakeUseCase{compose: intent.ComposeOutput{Outcome: intent.OutcomeMatched, TID: "13", Message: &msg}}
			r := newTestRouter(t, uc, time.Second)

			resp := post(t, r, "/api/card-consumption/genai-response", genaiBodyJSON(tt.amount, tt.count))

			if resp.MWHEADER["RETURNCODE"] != tt.want {
				t.Errorf("expected %v, got %v", tt.want, resp.MWHEADER["RETURNCODE"])
			}
		})
	}
}
