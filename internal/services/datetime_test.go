package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate_RecognizedFormats(t *testing.T) {
	cases := []struct {
		input string
		day   int
		month time.Month
		year  int
	}{
		{"2026-04-08", 8, time.April, 2026},
		{"2026-04-08T19:00:00Z", 8, time.April, 2026},
		{"04/08/2026", 8, time.April, 2026},
		{"4/8/2026", 8, time.April, 2026},
		{"April 8, 2026", 8, time.April, 2026},
		{"Apr 8, 2026", 8, time.April, 2026},
		{"April 8 2026", 8, time.April, 2026},
		{" 2026-04-08 ", 8, time.April, 2026},
	}

	for _, tc := range cases {
		got, ok := ParseEventDate(tc.input)
		require.True(t, ok, "expected %q to parse", tc.input)
		assert.Equal(t, tc.year, got.Year(), "input %q", tc.input)
		assert.Equal(t, tc.month, got.Month(), "input %q", tc.input)
		assert.Equal(t, tc.day, got.Day(), "input %q", tc.input)
	}
}

func TestParseEventDate_Unparsable(t *testing.T) {
	for _, input := range []string{"", "TBD", "soon", "the 8th", "2026-13-40"} {
		_, ok := ParseEventDate(input)
		assert.False(t, ok, "expected %q not to parse", input)
	}
}

func TestNormalizeTimeRange(t *testing.T) {
	cases := map[string]string{
		"7:00-8:00PM Central Time":        "7:00 - 8:00pm",
		"7:00 - 8:00pm":                   "7:00 - 8:00pm",
		"12:00 PM Pacific Time":           "12:00pm",
		"6:30PM CST":                      "6:30pm",
		"10:00  AM   -  11:00 AM EST":     "10:00am - 11:00am",
		"7:00-8:00 P.M. Mountain Time":    "7:00 - 8:00pm",
		"5:00pm PDT":                      "5:00pm",
		"noon Eastern Standard Time":      "noon",
		"":                                "",
	}

	for input, want := range cases {
		assert.Equal(t, want, NormalizeTimeRange(input), "input %q", input)
	}
}

func TestNormalizeTimeRange_Idempotent(t *testing.T) {
	inputs := []string{
		"7:00-8:00PM Central Time",
		"12:00 PM Pacific Time",
		"6:30PM CST",
		"already clean",
	}

	for _, input := range inputs {
		once := NormalizeTimeRange(input)
		assert.Equal(t, once, NormalizeTimeRange(once), "input %q", input)
	}
}

func TestDeriveStartAt_DefaultsToNoon(t *testing.T) {
	date := time.Date(2026, time.April, 8, 0, 0, 0, 0, time.Local)

	for _, raw := range []string{"", "TBD", "Central Time"} {
		got := DeriveStartAt(date, raw)
		assert.Equal(t, 12, got.Hour(), "raw %q", raw)
		assert.Equal(t, 0, got.Minute(), "raw %q", raw)
		assert.Equal(t, date.Day(), got.Day(), "raw %q", raw)
	}
}

func TestDeriveStartAt_MeridiemConversion(t *testing.T) {
	date := time.Date(2026, time.April, 8, 0, 0, 0, 0, time.Local)

	cases := []struct {
		raw    string
		hour   int
		minute int
	}{
		{"8:00pm", 20, 0},
		{"12:00am", 0, 0},
		{"12:00pm", 12, 0},
		{"7:00 - 8:00pm Central Time", 19, 0}, // marker anywhere applies to the leading token
		{"9:15 AM", 9, 15},
		{"14:30", 14, 30}, // no marker: hour taken as-is
	}

	for _, tc := range cases {
		got := DeriveStartAt(date, tc.raw)
		assert.Equal(t, tc.hour, got.Hour(), "raw %q", tc.raw)
		assert.Equal(t, tc.minute, got.Minute(), "raw %q", tc.raw)
		assert.Equal(t, date.Day(), got.Day(), "raw %q", tc.raw)
	}
}

func TestDeriveStartAt_StaysOnNominalDay(t *testing.T) {
	date := time.Date(2026, time.April, 8, 0, 0, 0, 0, time.Local)

	// An out-of-range token degrades to noon rather than rolling the day.
	got := DeriveStartAt(date, "99:99pm")
	assert.Equal(t, date.Day(), got.Day())
	assert.Equal(t, 12, got.Hour())
}

func TestEndOfDay(t *testing.T) {
	at := time.Date(2026, time.April, 8, 19, 0, 0, 0, time.Local)
	boundary := EndOfDay(at)

	assert.Equal(t, time.Date(2026, time.April, 9, 0, 0, 0, 0, time.Local), boundary)
	assert.True(t, boundary.After(at))
}
