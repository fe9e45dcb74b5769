package envelope_test

import (
	"errors"
	"testing"

	"card-consumption-assistant/pkg/envelope"
	pkgErrors "card-consumption-assistant/pkg/errors"
)

type tranrq struct {
	SessionID string `json:"sessionId" validate:"required,max=12"`
	Count     *int   `json:"count"     validate:"required,gte=0"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr *pkgErrors.ServiceError
		wantSeq string
	}{
		{
			name:    "valid",
			raw:     `{"MWHEADER":{"MSGID":null,"SOURCECHANNEL":"CHAT-API","TXNSEQ":"seq-1"},"TRANRQ":{"sessionId":"S1","count":0}}`,
			wantSeq: "seq-1",
		},
		{
			name:    "not json",
			raw:     `MWHEADER=1`,
			wantErr: pkgErrors.ErrParsingJSON,
		},
		{
			name:    "missing header",
			raw:     `{"TRANRQ":{"sessionId":"S1","count":1}}`,
			wantErr: pkgErrors.ErrParsingHeader,
		},
		{
			name:    "header channel too long",
			raw:     `{"MWHEADER":{"SOURCECHANNEL":"123456789012345678901","TXNSEQ":"seq-2"},"TRANRQ":{"sessionId":"S1","count":1}}`,
			wantErr: pkgErrors.ErrParsingHeader,
			wantSeq: "seq-2",
		},
		{
			name:    "missing tranrq",
			raw:     `{"MWHEADER":{"SOURCECHANNEL":"CHAT-API","TXNSEQ":"seq-3"}}`,
			wantErr: pkgErrors.ErrParsingTranRq,
			wantSeq: "seq-3",
		},
		{
			name:    "session id too long",
			raw:     `{"MWHEADER":{"SOURCECHANNEL":"CHAT-API","TXNSEQ":"seq-4"},"TRANRQ":{"sessionId":"1234567890123","count":1}}`,
			wantErr: pkgErrors.ErrParsingTranRq,
			wantSeq: "seq-4",
		},
		{
			name:    "negative count",
			raw:     `{"MWHEADER":{"SOURCECHANNEL":"CHAT-API","TXNSEQ":"seq-5"},"TRANRQ":{"sessionId":"S1","count":-1}}`,
			wantErr: pkgErrors.ErrParsingTranRq,
			wantSeq: "seq-5",
		},
		{
			name:    "missing count",
			raw:     `{"MWHEADER":{"SOURCECHANNEL":"CHAT-API","TXNSEQ":"seq-6"},"TRANRQ":{"sessionId":"S1"}}`,
			wantErr: pkgErrors.ErrParsingTranRq,
			wantSeq: "seq-6",
		},
		{
			name:    "wrong type",
			raw:     `{"MWHEADER":{"SOURCECHANNEL":"CHAT-API","TXNSEQ":"seq-7"},"TRANRQ":{"sessionId":12,"count":1}}`,
			wantErr: pkgErrors.ErrParsingTranRq,
			wantSeq: "seq-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req tranrq
			h, err := envelope.Decode([]byte(tt.raw), &req)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if h.TXNSEQ != tt.wantSeq {
				t.Errorf("expected TXNSEQ %q, got %q", tt.wantSeq, h.TXNSEQ)
			}
		})
	}
}

func TestHeaderResponse(t *testing.T) {
	id := "M1"
	h := envelope.Header{MSGID: &id, SOURCECHANNEL: "CHAT-API", TXNSEQ: "seq"}

	r := h.Response()
	if r.MSGID == nil || *r.MSGID != "M1" || r.SOURCECHANNEL != "CHAT-API" || r.TXNSEQ != "seq" {
		t.Errorf("unexpected response header %+v", r)
	}
	if r.RETURNCODE != nil || r.RETURNDESC != nil {
		t.Error("expected empty return fields")
	}
}
