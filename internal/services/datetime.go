package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// eventDateFormats lists the date shapes the spreadsheet has produced,
// from ISO timestamps down to free-text US dates. Tried in order.
var eventDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
}

var (
	// US timezone names and abbreviations that appear in time range
	// strings like "7:00 - 8:00pm Central Time". Stripped for display;
	// the feed is single-timezone so they carry no information.
	tzNameRe = regexp.MustCompile(`(?i)\b(central|pacific|mountain|eastern)(\s+(standard|daylight))?\s+time\b`)
	tzAbbrRe = regexp.MustCompile(`(?i)\b(CST|CDT|MST|MDT|PST|PDT|EST|EDT)\b`)

	hyphenRe   = regexp.MustCompile(`\s*-\s*`)
	meridiemRe = regexp.MustCompile(`(?i)(\d)\s*([ap])\.?m\.?`)
	spacesRe   = regexp.MustCompile(`\s+`)

	leadingTimeRe = regexp.MustCompile(`^(\d{1,2})(:(\d{2}))?`)
)

// ParseEventDate attempts calendar parsing of a loosely formatted date
// string. Date-only forms parse in the local location so that derived
// start timestamps and "past" checks agree with the viewer's clock.
// Returns ok=false for anything unrecognizable; never panics.
func ParseEventDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, format := range eventDateFormats {
		if t, err := time.ParseInLocation(format, s, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// NormalizeTimeRange cleans a raw time range string for display:
// timezone tokens removed, hyphens spaced as " - ", am/pm markers
// lowercased and attached to the preceding digits, whitespace collapsed.
// Idempotent: `"7:00-8:00PM Central Time"` → `"7:00 - 8:00pm"`.
func NormalizeTimeRange(s string) string {
	s = tzNameRe.ReplaceAllString(s, " ")
	s = tzAbbrRe.ReplaceAllString(s, " ")
	s = hyphenRe.ReplaceAllString(s, " - ")
	s = meridiemRe.ReplaceAllStringFunc(s, func(m string) string {
		m = strings.ToLower(m)
		m = strings.ReplaceAll(m, ".", "")
		return spacesRe.ReplaceAllString(m, "")
	})
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// DeriveStartAt produces the event's start timestamp on the nominal
// date's calendar day. The leading hour[:minute] token of the normalized
// time string selects the time of day, with 12-hour conversion when an
// am/pm marker appears anywhere in the string. When no usable token
// exists the start defaults to local noon — not midnight — so a same-day
// event is not hidden by the past filter during the morning.
func DeriveStartAt(date time.Time, rawTime string) time.Time {
	hour, minute := 12, 0

	norm := NormalizeTimeRange(rawTime)
	if m := leadingTimeRe.FindStringSubmatch(norm); m != nil {
		h, err := strconv.Atoi(m[1])
		if err == nil {
			mm := 0
			if m[3] != "" {
				mm, _ = strconv.Atoi(m[3])
			}

			hasAM := strings.Contains(norm, "am")
			hasPM := strings.Contains(norm, "pm")
			switch {
			case h == 12 && hasAM && !hasPM:
				h = 0
			case h == 12:
				// 12pm stays 12
			case hasPM:
				h += 12
			}

			if h >= 0 && h <= 23 && mm >= 0 && mm <= 59 {
				hour, minute = h, mm
			}
		}
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// EndOfDay returns the first instant after t's calendar day. An event is
// past once this boundary is strictly before now.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
