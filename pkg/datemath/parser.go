package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // containers without zoneinfo
)

var agoPattern = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
var inPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves request times and model-produced dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Taipei"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseRequestTime parses a TRANRQ time such as "2024/09/02 15:35:40".
func (p *Parser) ParseRequestTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(RequestTimeLayout, strings.TrimSpace(value), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid request time %q: %w", value, err)
	}
	return t, nil
}

// ReferenceDate converts a TRANRQ time into the extractor's "today" anchor ("2024-09-02").
func (p *Parser) ReferenceDate(requestTime string) (string, error) {
	t, err := p.ParseRequestTime(requestTime)
	if err != nil {
		return "", err
	}
	return t.Format(ReferenceLayout), nil
}

// Normalize rewrites a model-produced date into OutputLayout.
// Absolute dates in any known layout and a small set of relative phrases are accepted;
// relative phrases resolve against ref. An empty value stays empty.
func (p *Parser) Normalize(value string, ref time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t.Format(OutputLayout), nil
		}
	}

	t, err := p.Parse(value, ref)
	if err != nil {
		return "", err
	}
	return t.Format(OutputLayout), nil
}

// Parse converts a relative date phrase to the start of the matching day.
// The baseTime is used as the reference point.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "今天", "今日":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "明天":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday", "昨天":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if m := agoPattern.FindStringSubmatch(relative); m != nil {
		return p.shift(baseTime, m[1], m[2], -1)
	}
	if m := inPattern.FindStringSubmatch(relative); m != nil {
		return p.shift(baseTime, m[1], m[2], 1)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognizedDate, relative)
}

// shift moves baseTime by amount units in direction sign.
func (p *Parser) shift(baseTime time.Time, amountStr, unit string, sign int) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return baseTime, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	amount *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
