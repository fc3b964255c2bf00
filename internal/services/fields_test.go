package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcel-maitland/mb2-webinar-catalog/internal/models"
)

func TestExtractWithAliases_PrecedenceOrder(t *testing.T) {
	row := models.RawRow{
		"Name of Event": "Primary Title",
		"Event Name":    "Secondary Title",
	}

	// The first alias wins whenever it carries a non-empty value,
	// regardless of what later aliases hold.
	got := ExtractWithAliases(row, []string{"Name of Event", "Event Name"})
	assert.Equal(t, "Primary Title", got)
}

func TestExtractWithAliases_FallsThroughEmptyValues(t *testing.T) {
	row := models.RawRow{
		"Name of Event": "   ",
		"Event Name":    nil,
		"Title":         "Fallback Title",
	}

	got := ExtractWithAliases(row, []string{"Name of Event", "Event Name", "Title"})
	assert.Equal(t, "Fallback Title", got)
}

func TestExtractWithAliases_MissingEverywhere(t *testing.T) {
	got := ExtractWithAliases(models.RawRow{}, []string{"CE Hours", "CE"})
	assert.Equal(t, "", got)
}

func TestExtractWithAliases_CoercesScalars(t *testing.T) {
	row := models.RawRow{
		"CE Hours": float64(1), // JSON numbers decode as float64
		"id":       float64(42.5),
		"Featured": true,
	}

	assert.Equal(t, "1", ExtractWithAliases(row, []string{"CE Hours"}))
	assert.Equal(t, "42.5", ExtractWithAliases(row, []string{"id"}))
	assert.Equal(t, "true", ExtractWithAliases(row, []string{"Featured"}))
}

func TestExtractWithAliases_TrimsWhitespace(t *testing.T) {
	row := models.RawRow{"Vendor": "  Acme Dental  "}
	assert.Equal(t, "Acme Dental", ExtractWithAliases(row, []string{"Vendor"}))
}

func TestExtractField_UsesAliasTable(t *testing.T) {
	// The logo column has been renamed repeatedly upstream; every
	// historical spelling must resolve.
	for _, header := range []string{"Vendor Logo", "Vender Logo", "Vendor logo", "Logo"} {
		row := models.RawRow{header: "https://cdn.example.com/logo.png"}
		assert.Equal(t, "https://cdn.example.com/logo.png", ExtractField(row, FieldVendorLogo), "header %q", header)
	}
}

func TestFindSourceField(t *testing.T) {
	row := models.RawRow{"Event Name": "Implant Basics"}
	assert.Equal(t, "Event Name", FindSourceField(row, FieldTitle))
	assert.Equal(t, "", FindSourceField(row, FieldVendor))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Hygienist", "Assistant"}, SplitList("Hygienist, Assistant"))
	assert.Equal(t, []string{"Dentist"}, SplitList(" Dentist ,, "))
	assert.Equal(t, []string{}, SplitList(""))
	assert.NotNil(t, SplitList("   "))
}
