package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEventID_Deterministic(t *testing.T) {
	first := GenerateEventID("Perio Deep Dive", "2026-04-08", 3)
	second := GenerateEventID("Perio Deep Dive", "2026-04-08", 3)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "evt_")
}

func TestGenerateEventID_IndexDisambiguates(t *testing.T) {
	// Two identical rows at different positions must not collide.
	a := GenerateEventID("Perio Deep Dive", "2026-04-08", 0)
	b := GenerateEventID("Perio Deep Dive", "2026-04-08", 1)

	assert.NotEqual(t, a, b)
}

func TestGenerateEventID_NormalizesCaseAndSpace(t *testing.T) {
	a := GenerateEventID("  Perio Deep Dive ", "2026-04-08", 0)
	b := GenerateEventID("perio deep dive", "2026-04-08", 0)

	assert.Equal(t, a, b)
}

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://events.example.com/register/1",
		"http://example.com",
		"  https://example.com/logo.png  ",
	}
	invalid := []string{
		"",
		"example.com",
		"/relative/path.png",
		"ftp://example.com/file",
		"register here",
		"https://",
	}

	for _, u := range valid {
		assert.True(t, IsValidURL(u), "expected %q to be valid", u)
	}
	for _, u := range invalid {
		assert.False(t, IsValidURL(u), "expected %q to be invalid", u)
	}
}

func TestFormatEventDate(t *testing.T) {
	d := time.Date(2026, time.April, 8, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "April 8, 2026", FormatEventDate(d))
}

func TestLoadError_MessageIncludesSource(t *testing.T) {
	err := NewLoadError("https://sheets.example.com/feed.json", "feed has no items list", nil)

	assert.Contains(t, err.Error(), "https://sheets.example.com/feed.json")
	assert.Contains(t, err.Error(), "no items")
}
