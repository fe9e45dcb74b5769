package intent

import (
	"errors"
	"time"
)

// Template ids returned when no category applies.
const (
	TIDBlocked = "98"
	TIDNoMatch = "99"
)

// ReasonLowSimilarity is the block reason of a low-confidence decision.
const ReasonLowSimilarity = "相似度過低"

// Placeholder keys produced by extraction and substituted into SQL templates.
const (
	KeyStartDate   = "&start_date"
	KeyEndDate     = "&end_date"
	KeyStore1      = "&string1"
	KeyStore2      = "&string2"
	KeyCategory    = "&string"
	KeyCustomerID  = "&CustomerID"
	KeyModifyQuery = "modify_query"
)

// Metadata keys of an indexed template.
const (
	MetadataCategory         = "category"
	MetadataSQL1             = "SQL1"
	MetadataSQL2             = "SQL2"
	MetadataSQL3             = "SQL3"
	MetadataQuestionCategory = "問題類別"
	MetadataScore            = "score"
)

// Outcome tags a Decision.
type Outcome string

const (
	OutcomeMatched         Outcome = "matched"
	OutcomeBlocked         Outcome = "blocked"
	OutcomeLowConfidence   Outcome = "low_confidence"
	OutcomeExtractionFault Outcome = "extraction_fault"
	OutcomeFailed          Outcome = "failed"
)

// ClassifyInput is one customer turn.
type ClassifyInput struct {
	SessionID     string
	CustomerID    string
	Message       string
	ReferenceTime time.Time // "today" for relative dates
}

type ClassifyOutput struct {
	SessionID  string
	CustomerID string
	Decision   Decision
}

// Template is the fixed response shape of a decision. Every slot is present;
// unknown values are nil.
type Template struct {
	TID          string
	BlockReason  *string
	StartDate    *string
	EndDate      *string
	StoreName    []*string // two slots
	CategoryName []*string // one slot
}

// Decision is the routing result of Classify.
type Decision struct {
	Outcome  Outcome
	Template Template

	// Set on OutcomeMatched only.
	Message          string   // the gate's rewritten question
	Queries          []string // rendered SQL1..SQL3
	QuestionCategory any
	Score            float64

	// Err is the fault behind OutcomeFailed and OutcomeExtractionFault.
	Err error
}

func emptyTemplate(tid string, reason *string) Template {
	return Template{
		TID:          tid,
		BlockReason:  reason,
		StoreName:    []*string{nil, nil},
		CategoryName: []*string{nil},
	}
}

// Blocked builds the decision for a moderated request.
func Blocked(reason string) Decision {
	return Decision{Outcome: OutcomeBlocked, Template: emptyTemplate(TIDBlocked, &reason)}
}

// LowConfidence builds the decision for a search without confident matches.
func LowConfidence() Decision {
	reason := ReasonLowSimilarity
	return Decision{Outcome: OutcomeLowConfidence, Template: emptyTemplate(TIDNoMatch, &reason)}
}

// Failed builds the decision for any fault, keeping its message as the reason.
func Failed(err error) Decision {
	reason := err.Error()
	outcome := OutcomeFailed
	if errors.Is(err, ErrExtractionParse) {
		outcome = OutcomeExtractionFault
	}
	return Decision{Outcome: outcome, Template: emptyTemplate(TIDNoMatch, &reason), Err: err}
}

// Entities are the slots extracted from one question.
type Entities struct {
	Slots      map[string]*string
	SearchText string
}

// Get returns the slot value or nil.
func (e Entities) Get(key string) *string {
	if e.Slots == nil {
		return nil
	}
	return e.Slots[key]
}

// ComposeInput is a matched template plus the totals computed by the caller.
type ComposeInput struct {
	SessionID         string
	CustomerID        string
	TID               string
	Message           string
	ConsumptionNumber int
	TotalAmount       string // decimal text
	StartDate         string
	EndDate           string
	StoreName         []*string
	CategoryName      []*string
}

type ComposeOutput struct {
	SessionID   string
	CustomerID  string
	Outcome     Outcome
	Message     *string
	TID         string
	BlockReason *string
	Err         error
}
