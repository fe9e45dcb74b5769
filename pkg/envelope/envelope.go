// Package envelope decodes the MWHEADER/TRANRQ request body shared by the business APIs.
package envelope

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgErrors "card-consumption-assistant/pkg/errors"
	"card-consumption-assistant/pkg/response"
)

// Header is the request MWHEADER.
type Header struct {
	MSGID         *string `json:"MSGID"         validate:"omitempty,max=20"`
	SOURCECHANNEL string  `json:"SOURCECHANNEL" validate:"required,max=20"`
	TXNSEQ        string  `json:"TXNSEQ"        validate:"required,max=50"`
}

// Response returns the header to echo back.
func (h Header) Response() response.Header {
	return response.Header{
		MSGID:         h.MSGID,
		SOURCECHANNEL: h.SOURCECHANNEL,
		TXNSEQ:        h.TXNSEQ,
	}
}

type body struct {
	MWHEADER json.RawMessage `json:"MWHEADER"`
	TRANRQ   json.RawMessage `json:"TRANRQ"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses raw into its header and tranrq, which must be a pointer to a
// struct with validate tags. Whatever part of the header was readable is
// returned even on error so it can be echoed.
//
// Errors: ErrParsingJSON when raw is not a JSON object, ErrParsingHeader when
// MWHEADER is missing or invalid, ErrParsingTranRq when TRANRQ is.
func Decode(raw []byte, tranrq any) (Header, error) {
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return Header{}, pkgErrors.ErrParsingJSON.Wrap(err)
	}

	var h Header
	if len(b.MWHEADER) == 0 || string(b.MWHEADER) == "null" {
		return h, pkgErrors.ErrParsingHeader
	}
	if err := json.Unmarshal(b.MWHEADER, &h); err != nil {
		return h, pkgErrors.ErrParsingHeader.Wrap(err)
	}
	if err := validate.Struct(h); err != nil {
		return h, pkgErrors.ErrParsingHeader.Wrap(err)
	}

	if len(b.TRANRQ) == 0 || string(b.TRANRQ) == "null" {
		return h, pkgErrors.ErrParsingTranRq
	}
	if err := json.Unmarshal(b.TRANRQ, tranrq); err != nil {
		return h, pkgErrors.ErrParsingTranRq.Wrap(err)
	}
	if err := validate.Struct(tranrq); err != nil {
		return h, pkgErrors.ErrParsingTranRq.Wrap(err)
	}
	return h, nil
}
