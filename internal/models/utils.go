package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// GenerateEventID creates a deterministic fallback ID for a row that
// carries no usable identifier. The positional index is part of the hash
// input so two otherwise identical rows never collide within one load.
func GenerateEventID(title, rawDate string, index int) string {
	normalizedTitle := strings.ToLower(strings.TrimSpace(title))
	normalizedDate := strings.ToLower(strings.TrimSpace(rawDate))

	input := fmt.Sprintf("%s|%s|%d", normalizedTitle, normalizedDate, index)
	hash := sha256.Sum256([]byte(input))

	return "evt_" + hex.EncodeToString(hash[:])[:8]
}

// IsValidURL reports whether s is an absolute http or https URL.
// Relative paths, bare hostnames and other schemes are treated as absent.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}

	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FormatEventDate renders a nominal date the way the catalog displays it
// and the way the search haystack indexes it.
func FormatEventDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// NewCatalogMetadata creates metadata for one normalized feed load.
func NewCatalogMetadata(source, feedUpdated string, totalRows, totalEvents int) CatalogMetadata {
	return CatalogMetadata{
		Source:      source,
		FeedUpdated: feedUpdated,
		TotalRows:   totalRows,
		TotalEvents: totalEvents,
		LoadedAt:    time.Now(),
	}
}
