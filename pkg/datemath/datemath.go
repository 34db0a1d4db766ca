// Package datemath extracts calendar dates from natural language text
// such as "tomorrow", "next monday" or "01/15/2024". Dates carry no
// time of day; results are normalized to midnight in the parser's
// timezone.
package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateFormatISO is the canonical date format used across the service.
const DateFormatISO = "2006-01-02"

// DateFormatHuman is the display format, e.g. "Monday, January 15, 2024".
const DateFormatHuman = "Monday, January 2, 2006"

// Parser extracts absolute dates from free-form text.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Checked in order so that text naming two weekdays resolves
// deterministically to the earlier entry.
var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Explicit date patterns, tried in this order. The first pattern that
// matches anywhere in the text wins.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), "2006-01-02"},
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), "01/02/2006"},
	{regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), "01-02-2006"},
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`), "1/2/2006"},
}

// Extract finds a date in the text relative to now. The second return
// value is false when no date could be extracted; callers must treat
// that as "could not understand", not as an error.
//
// Resolution order: literal relative words, "next week"/"next month",
// weekday names, explicit date patterns, then a permissive whole-string
// parse.
func (p *Parser) Extract(text string, now time.Time) (time.Time, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	today := p.startOfDay(now)

	switch {
	case strings.Contains(text, "today"):
		return today, true
	case strings.Contains(text, "tomorrow"):
		return today.AddDate(0, 0, 1), true
	case strings.Contains(text, "yesterday"):
		return today.AddDate(0, 0, -1), true
	case strings.Contains(text, "next week"):
		return today.AddDate(0, 0, 7), true
	case strings.Contains(text, "next month"):
		return p.addMonthClamped(today), true
	}

	hasNext := strings.Contains(text, "next")
	for _, wd := range weekdays {
		if !strings.Contains(text, wd.name) {
			continue
		}
		// Monday-based offsets. "next monday" is always the monday of
		// the following week, even when today is monday.
		daysAhead := mondayIndex(wd.day) - mondayIndex(today.Weekday())
		if hasNext || daysAhead <= 0 {
			daysAhead += 7
		}
		return today.AddDate(0, 0, daysAhead), true
	}

	for _, dp := range datePatterns {
		match := dp.re.FindString(text)
		if match == "" {
			continue
		}
		parsed, err := time.ParseInLocation(dp.layout, match, p.location)
		if err != nil {
			continue
		}
		return p.startOfDay(parsed), true
	}

	// Last resort: permissive parse of the whole string. This can
	// accept a plausible-but-wrong date for unrelated text containing
	// numbers; the form layer compensates by asking for confirmation.
	parsed, err := dateparse.ParseIn(text, p.location)
	if err != nil {
		return time.Time{}, false
	}
	return p.startOfDay(parsed), true
}

// ExtractISO is Extract with the result rendered as YYYY-MM-DD.
func (p *Parser) ExtractISO(text string, now time.Time) (string, bool) {
	t, ok := p.Extract(text, now)
	if !ok {
		return "", false
	}
	return t.Format(DateFormatISO), true
}

// FormatHuman renders a date for display, e.g. "Monday, January 15, 2024".
func (p *Parser) FormatHuman(t time.Time) string {
	return t.In(p.location).Format(DateFormatHuman)
}

// addMonthClamped moves one calendar month forward, clamping the day to
// the last day of the target month (Jan 31 -> Feb 28/29) instead of
// letting the date roll over.
func (p *Parser) addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, p.location)
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, p.location)
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday=0 index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
