package services

import (
	"strconv"
	"strings"

	"github.com/marcel-maitland/mb2-webinar-catalog/internal/models"
)

// Canonical field names resolvable through the alias table.
const (
	FieldID            = "id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldDate          = "date"
	FieldCategory      = "category"
	FieldCEHours       = "ceHours"
	FieldVendor        = "vendor"
	FieldVendorLogo    = "vendorLogo"
	FieldThumbnail     = "thumbnail"
	FieldFormat        = "format"
	FieldRoles         = "roles"
	FieldLocation      = "location"
	FieldSession1Label = "session1Label"
	FieldSession1URL   = "session1Url"
	FieldSession2Label = "session2Label"
	FieldSession2URL   = "session2Url"
)

// fieldAliases maps each canonical field to the spreadsheet column headers
// that have carried it across feed versions, in precedence order. Header
// drift ("Vendor Logo" → "Vender Logo" → "Logo") is handled here, as data,
// so the normalizer never changes when the sheet is renamed again.
var fieldAliases = map[string][]string{
	FieldID:            {"id", "ID"},
	FieldTitle:         {"Name of Event", "Event Name", "Title"},
	FieldDescription:   {"Description", "description", "DESC", "Course Description"},
	FieldDate:          {"Date of the Event", "Event Date", "Date"},
	FieldCategory:      {"category", "Category", "CATEGORY"},
	FieldCEHours:       {"CE Hours", "CE", "CE Hour", "CE hours"},
	FieldVendor:        {"Presenter / Vendor (Tag)", "Vendor", "Presenter", "Presenter/Vendor"},
	FieldVendorLogo:    {"Vendor Logo", "Vender Logo", "Vendor logo", "Logo"},
	FieldThumbnail:     {"Course Thumb", "Course Thumbnail", "Thumbnail", "Thumb", "Image"},
	FieldFormat:        {"Format", "format", "Event Format", "Type"},
	FieldRoles:         {"Roles", "Role", "Role / Position", "Position", "Positions"},
	FieldLocation:      {"Location", "location", "Venue", "Address"},
	FieldSession1Label: {"Time of the event", "Time of the Event", "Event Time", "Time"},
	FieldSession1URL:   {"Registration Link", "Registration URL", "Registration"},
	FieldSession2Label: {"2nd time of the Event", "2nd Time of the Event", "Second Time", "2nd Time"},
	FieldSession2URL:   {"Second Registration Link", "2nd Registration Link", "Registration Link 2"},
}

// ExtractField resolves a canonical field from a row through its alias list.
func ExtractField(row models.RawRow, canonical string) string {
	return ExtractWithAliases(row, fieldAliases[canonical])
}

// ExtractWithAliases returns the first alias whose value is defined,
// non-nil and non-empty after string coercion and trimming, else "".
func ExtractWithAliases(row models.RawRow, aliases []string) string {
	for _, alias := range aliases {
		value, ok := row[alias]
		if !ok || value == nil {
			continue
		}
		if s := strings.TrimSpace(coerceString(value)); s != "" {
			return s
		}
	}
	return ""
}

// FindSourceField returns the alias that ExtractWithAliases would use,
// or "" when no alias carries a value. Used for issue reporting.
func FindSourceField(row models.RawRow, canonical string) string {
	for _, alias := range fieldAliases[canonical] {
		value, ok := row[alias]
		if !ok || value == nil {
			continue
		}
		if strings.TrimSpace(coerceString(value)) != "" {
			return alias
		}
	}
	return ""
}

// coerceString converts a raw scalar to its string form. JSON decoding
// hands numbers over as float64, so integral values must not grow a
// trailing ".0" here.
func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// SplitList splits a comma-separated source field into trimmed entries,
// dropping empty ones. Returns an empty, non-nil slice for blank input.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
