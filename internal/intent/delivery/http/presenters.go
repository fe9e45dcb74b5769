package http

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"card-consumption-assistant/internal/intent"
	"card-consumption-assistant/pkg/envelope"
	"card-consumption-assistant/pkg/response"
)

const (
	amountMaxDigits     = 20
	amountDecimalPlaces = 2
)

// --- Request DTOs ---

type baseReq struct {
	SessionID  string `json:"sessionId"  validate:"required,max=12"`
	CustomerID string `json:"customerId" validate:"required,max=10"`
	Time       string `json:"time"       validate:"required,max=20"`
}

type chatReq struct {
	baseReq
	Message string `json:"message" validate:"required"`
}

func (r chatReq) toInput(ref time.Time) intent.ClassifyInput {
	return intent.ClassifyInput{
		SessionID:     r.SessionID,
		CustomerID:    r.CustomerID,
		Message:       r.Message,
		ReferenceTime: ref,
	}
}

// ---

type genaiReq struct {
	baseReq
	TID               string           `json:"tid"               validate:"required,max=2"`
	Message           string           `json:"message"`
	ConsumptionNumber *int             `json:"consumptionNumber" validate:"required,gte=0"`
	TotalAmount       *decimal.Decimal `json:"totalAmount"       validate:"required"`
	StartDate         string           `json:"startDate"         validate:"required,max=10"`
	EndDate           string           `json:"endDate"           validate:"required,max=10"`
	StoreName         []*string        `json:"storeName"`
	CategoryName      []*string        `json:"categoryName"`
}

var (
	errAmountDigits = errors.New("totalAmount has too many digits")
	errAmountPlaces = errors.New("totalAmount has too many decimal places")
)

func (r genaiReq) validate() error {
	amount := *r.TotalAmount
	if !amount.Equal(amount.Truncate(amountDecimalPlaces)) {
		return errAmountPlaces
	}
	whole := amount.Abs().Truncate(0).String()
	if whole == "0" {
		whole = ""
	}
	if len(whole)+amountDecimalPlaces > amountMaxDigits {
		return errAmountDigits
	}
	return nil
}

func (r genaiReq) toInput() intent.ComposeInput {
	return intent.ComposeInput{
		SessionID:         r.SessionID,
		CustomerID:        r.CustomerID,
		TID:               r.TID,
		Message:           r.Message,
		ConsumptionNumber: *r.ConsumptionNumber,
		TotalAmount:       r.TotalAmount.StringFixed(amountDecimalPlaces),
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		StoreName:         r.StoreName,
		CategoryName:      r.CategoryName,
	}
}

// --- Response DTOs ---

type chatTemplateResp struct {
	TID          string    `json:"tid"`
	BlockReason  *string   `json:"blockReason"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	StoreName    []*string `json:"storeName"`
	CategoryName []*string `json:"categoryName"`
}

type chatResp struct {
	SessionID  string           `json:"sessionId"`
	CustomerID string           `json:"customerId"`
	Template   chatTemplateResp `json:"template"`
}

func (h *handler) newChatResp(out intent.ClassifyOutput) chatResp {
	t := out.Decision.Template
	return chatResp{
		SessionID:  out.SessionID,
		CustomerID: out.CustomerID,
		Template: chatTemplateResp{
			TID:          t.TID,
			BlockReason:  t.BlockReason,
			StartDate:    t.StartDate,
			EndDate:      t.EndDate,
			StoreName:    slots(t.StoreName, 2),
			CategoryName: slots(t.CategoryName, 1),
		},
	}
}

// slots pads s with nil entries up to n so the shape never varies.
func slots(s []*string, n int) []*string {
	out := make([]*string, n)
	copy(out, s)
	if len(s) > n {
		out = append(out, s[n:]...)
	}
	return out
}

type genAIResp struct {
	Message *string `json:"message"`
}

type templateResp struct {
	TID         string  `json:"tid"`
	BlockReason *string `json:"blockReason"`
}

type genaiResp struct {
	SessionID  string       `json:"sessionId"`
	CustomerID string       `json:"customerId"`
	GenAI      genAIResp    `json:"genAI"`
	Template   templateResp `json:"template"`
}

func (h *handler) newGenaiResp(out intent.ComposeOutput) genaiResp {
	return genaiResp{
		SessionID:  out.SessionID,
		CustomerID: out.CustomerID,
		GenAI:      genAIResp{Message: out.Message},
		Template: templateResp{
			TID:         out.TID,
			BlockReason: out.BlockReason,
		},
	}
}

// --- Swagger shapes ---

type chatBody struct {
	MWHEADER envelope.Header `json:"MWHEADER"`
	TRANRQ   chatReq         `json:"TRANRQ"`
}

type chatEnvelope struct {
	MWHEADER response.Header `json:"MWHEADER"`
	TRANRS   chatResp        `json:"TRANRS"`
}

type genaiBody struct {
	MWHEADER envelope.Header `json:"MWHEADER"`
	TRANRQ   genaiReq        `json:"TRANRQ"`
}

type genaiEnvelope struct {
	MWHEADER response.Header `json:"MWHEADER"`
	TRANRS   genaiResp       `json:"TRANRS"`
}
