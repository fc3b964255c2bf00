package models

import "time"

// RawRow is one spreadsheet row as delivered by the feed: a loose mapping
// from column header to scalar value. Headers drift between feed versions
// and values may be missing or malformed, so nothing here is trusted.
type RawRow map[string]interface{}

// Feed is the envelope the upstream spreadsheet export publishes.
type Feed struct {
	Items     []RawRow `json:"items"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// CatalogOutput represents the complete JSON structure for catalog data
type CatalogOutput struct {
	Metadata CatalogMetadata `json:"metadata"`
	Events   []Event         `json:"events"`
}

// CatalogMetadata contains metadata about one normalized feed load
type CatalogMetadata struct {
	Source      string    `json:"source"`
	FeedUpdated string    `json:"feedUpdated,omitempty"`
	TotalRows   int       `json:"totalRows"`
	TotalEvents int       `json:"totalEvents"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// Event is one canonical webinar/event record derived from a RawRow.
// Events are immutable once built and rebuilt wholesale on every load.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// Scheduling. Date is the nominal calendar day; StartAt combines it
	// with the first parseable start time and drives past/future checks
	// and sort order. Both are nil when the source date is unparsable.
	Date    *time.Time `json:"date,omitempty"`
	StartAt *time.Time `json:"startAt,omitempty"`

	// TimeLabel is the cleaned-up time range as shown to users,
	// e.g. "7:00 - 8:00pm". Display only.
	TimeLabel string `json:"timeLabel,omitempty"`

	Category string   `json:"category,omitempty"`
	CEHours  *float64 `json:"ceHours,omitempty"` // finite and > 0 when present
	Vendor   string   `json:"vendor,omitempty"`

	VendorLogoURL string `json:"vendorLogoUrl,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`

	Format   string   `json:"format,omitempty"`
	Roles    []string `json:"roles"` // never nil
	Location string   `json:"location,omitempty"`

	Sessions []Session `json:"sessions"` // never nil
}

// Session is one registration opportunity for an event, commonly a primary
// or secondary time slot.
type Session struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url,omitempty"` // valid absolute http(s) URL or empty
}

// RowIssue notes a degradation encountered while normalizing one row.
// Issues are informational only and never block other rows.
type RowIssue struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// NormalizationResult is the outcome of normalizing a full feed.
type NormalizationResult struct {
	Events []Event    `json:"events"`
	Issues []RowIssue `json:"issues,omitempty"`
}

// FilterState captures one snapshot of the catalog filter controls. The
// zero value imposes no constraint beyond the past-event policy.
type FilterState struct {
	Query      string
	Categories []string
	Vendors    []string
	CEHours    []float64
	Formats    []string
	Roles      []string

	// ShowPast disables the past-event exclusion. Modeled as an explicit
	// toggle rather than an implicit default.
	ShowPast bool
}

// FacetOptions are the distinct values observed per facet, used to drive
// filter controls. String facets are sorted alphabetically, CE hours
// numerically ascending.
type FacetOptions struct {
	Categories []string  `json:"categories"`
	Vendors    []string  `json:"vendors"`
	CEHours    []float64 `json:"ceHours"`
	Formats    []string  `json:"formats"`
	Roles      []string  `json:"roles"`
}

// Event format constants observed in the feed
const (
	FormatWebinar  = "Webinar"
	FormatInPerson = "In-Person"
)

// PlaceholderTitle is used when a row carries no title under any alias.
const PlaceholderTitle = "Untitled Event"
