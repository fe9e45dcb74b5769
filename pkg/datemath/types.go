package datemath

import "errors"

const (
	// RequestTimeLayout is the layout of the TRANRQ time field.
	RequestTimeLayout = "2006/01/02 15:04:05"
	// ReferenceLayout is the layout of the reference date handed to the extractor.
	ReferenceLayout = "2006-01-02"
	// OutputLayout is the layout of dates returned to the caller.
	OutputLayout = "2006/01/02"
)

// absoluteLayouts are tried in order when normalizing a model-produced date.
var absoluteLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"20060102",
	"2006-1-2",
	"2006/1/2",
}

var ErrUnrecognizedDate = errors.New("unrecognized date")
