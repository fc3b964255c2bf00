package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/marcel-maitland/mb2-webinar-catalog/internal/models"
)

// NormalizerService converts raw spreadsheet rows into canonical Events.
// Every field degrades silently to its documented default on parse
// failure; one malformed row never blocks the rest of the feed.
type NormalizerService struct {
	log logrus.FieldLogger
}

// NewNormalizerService creates a new normalizer service.
func NewNormalizerService(log logrus.FieldLogger) *NormalizerService {
	return &NormalizerService{log: log}
}

// NormalizeRow produces exactly one Event from a raw row and its
// positional index. Pure: the same (row, index) always yields a
// deep-equal Event. Never returns an error and never panics.
func (ns *NormalizerService) NormalizeRow(row models.RawRow, index int) models.Event {
	event, _ := ns.normalizeRow(row, index)
	return event
}

func (ns *NormalizerService) normalizeRow(row models.RawRow, index int) (models.Event, []string) {
	var issues []string

	title := ExtractField(row, FieldTitle)
	if title == "" {
		title = models.PlaceholderTitle
		issues = append(issues, "missing title")
	}

	rawDate := ExtractField(row, FieldDate)
	rawTime := ExtractField(row, FieldSession1Label)

	event := models.Event{
		ID:          ns.resolveID(row, title, rawDate, index),
		Title:       title,
		Description: ExtractField(row, FieldDescription),
		TimeLabel:   NormalizeTimeRange(rawTime),
		Category:    ExtractField(row, FieldCategory),
		Vendor:      ExtractField(row, FieldVendor),
		Format:      ExtractField(row, FieldFormat),
		Location:    ExtractField(row, FieldLocation),
		Roles:       SplitList(ExtractField(row, FieldRoles)),
	}

	if date, ok := ParseEventDate(rawDate); ok {
		startAt := DeriveStartAt(date, rawTime)
		event.Date = &date
		event.StartAt = &startAt
	} else if rawDate != "" {
		issues = append(issues, fmt.Sprintf("unparsable date %q", rawDate))
	} else {
		issues = append(issues, "missing date")
	}

	if hours, ok := parseCEHours(ExtractField(row, FieldCEHours)); ok {
		event.CEHours = &hours
	}

	if logo := ExtractField(row, FieldVendorLogo); models.IsValidURL(logo) {
		event.VendorLogoURL = logo
	}
	if thumb := ExtractField(row, FieldThumbnail); models.IsValidURL(thumb) {
		event.ThumbnailURL = thumb
	}

	event.Sessions = ns.assembleSessions(row)

	return event, issues
}

// NormalizeFeed normalizes every row of a feed in order, enforcing
// ID uniqueness across the collection. The first row to claim a source
// identifier keeps it; later duplicates fall back to the synthesized ID.
func (ns *NormalizerService) NormalizeFeed(feed *models.Feed) models.NormalizationResult {
	result := models.NormalizationResult{
		Events: make([]models.Event, 0, len(feed.Items)),
	}

	seen := make(map[string]bool, len(feed.Items))
	for i, row := range feed.Items {
		event, issues := ns.normalizeRow(row, i)

		if seen[event.ID] {
			issues = append(issues, fmt.Sprintf("duplicate id %q", event.ID))
			event.ID = models.GenerateEventID(event.Title, ExtractField(row, FieldDate), i)
		}
		seen[event.ID] = true

		for _, msg := range issues {
			result.Issues = append(result.Issues, models.RowIssue{Row: i, Message: msg})
			if ns.log != nil {
				ns.log.WithFields(logrus.Fields{"row": i, "id": event.ID}).Debug(msg)
			}
		}

		result.Events = append(result.Events, event)
	}

	if ns.log != nil {
		ns.log.WithFields(logrus.Fields{
			"rows":   len(feed.Items),
			"events": len(result.Events),
			"issues": len(result.Issues),
		}).Info("feed normalized")
	}

	return result
}

// resolveID uses the row's own identifier when present, else a
// deterministic synthesized fallback.
func (ns *NormalizerService) resolveID(row models.RawRow, title, rawDate string, index int) string {
	if id := ExtractField(row, FieldID); id != "" {
		return id
	}
	return models.GenerateEventID(title, rawDate, index)
}

// assembleSessions builds up to two registration opportunities from the
// row's label/URL column pairs. Entries with neither a label nor a valid
// URL are dropped.
func (ns *NormalizerService) assembleSessions(row models.RawRow) []models.Session {
	sessions := []models.Session{}

	pairs := [][2]string{
		{FieldSession1Label, FieldSession1URL},
		{FieldSession2Label, FieldSession2URL},
	}

	for _, pair := range pairs {
		label := NormalizeTimeRange(ExtractField(row, pair[0]))
		url := ExtractField(row, pair[1])
		if !models.IsValidURL(url) {
			url = ""
		}

		if label == "" && url == "" {
			continue
		}
		sessions = append(sessions, models.Session{Label: label, URL: url})
	}

	return sessions
}

// parseCEHours extracts a credit-hour count from a loosely formatted
// source value ("1", "1.5", "2 CE", "$0"). Only finite values greater
// than zero count as present.
func parseCEHours(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	cleaned := strings.ReplaceAll(s, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.TrimSpace(cleaned)

	if hours, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return validCEHours(hours)
	}

	for _, part := range strings.Fields(cleaned) {
		if hours, err := strconv.ParseFloat(part, 64); err == nil {
			return validCEHours(hours)
		}
	}

	return 0, false
}

func validCEHours(hours float64) (float64, bool) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return 0, false
	}
	return hours, true
}
