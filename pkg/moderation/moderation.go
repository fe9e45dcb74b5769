// Package moderation turns raw model text into an explicit pass/blocked verdict.
//
// The upstream prompts instruct the model to include a fixed marker phrase when it
// refuses a request. Detect is the only place that marker is matched; every other
// component consumes the Verdict.
package moderation

import "strings"

// DefaultSentinel is the marker the prompts ask the model to emit when it refuses.
const DefaultSentinel = "被阻擋"

// Verdict is the moderation outcome of one model output.
type Verdict int

const (
	VerdictPass Verdict = iota
	VerdictBlocked
)

func (v Verdict) String() string {
	if v == VerdictBlocked {
		return "blocked"
	}
	return "pass"
}

// Output is model text tagged with its verdict.
type Output struct {
	Text    string
	Verdict Verdict
}

// Blocked reports whether the output carries the blocked verdict.
func (o Output) Blocked() bool {
	return o.Verdict == VerdictBlocked
}

// Detector tags model output with a verdict.
type Detector struct {
	sentinel string
}

// NewDetector returns a Detector for sentinel, or DefaultSentinel when empty.
func NewDetector(sentinel string) Detector {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	return Detector{sentinel: sentinel}
}

// Sentinel returns the marker the detector matches.
func (d Detector) Sentinel() string {
	if d.sentinel == "" {
		return DefaultSentinel
	}
	return d.sentinel
}

// Detect tags text. The marker may appear anywhere in the text.
func (d Detector) Detect(text string) Output {
	if strings.Contains(text, d.Sentinel()) {
		return Output{Text: text, Verdict: VerdictBlocked}
	}
	return Output{Text: text, Verdict: VerdictPass}
}
