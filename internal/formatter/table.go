// Package formatter renders the visible catalog as plain text.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/marcel-maitland/mb2-webinar-catalog/internal/models"
)

var catalogHeader = []string{"Date", "Time", "Title", "Vendor", "CE", "Format", "Roles"}

// RenderCatalog renders events as an aligned text table. Column widths
// use display width so wide characters in titles or vendor names do not
// break alignment.
func RenderCatalog(events []models.Event) string {
	if len(events) == 0 {
		return "No upcoming events.\n"
	}

	rows := [][]string{catalogHeader}
	for _, event := range events {
		rows = append(rows, eventRow(event))
	}

	widths := make([]int, len(catalogHeader))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for rIdx, row := range rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
			}
		}
		sb.WriteString("\n")

		if rIdx == 0 {
			for i, w := range widths {
				sb.WriteString(strings.Repeat("-", w))
				if i < len(widths)-1 {
					sb.WriteString("  ")
				}
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// RenderOptions renders the facet option lists as a short summary block.
func RenderOptions(opts models.FacetOptions) string {
	var sb strings.Builder

	writeLine := func(name string, values []string) {
		if len(values) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", name, strings.Join(values, ", ")))
	}

	writeLine("Categories", opts.Categories)
	writeLine("Vendors", opts.Vendors)
	writeLine("Formats", opts.Formats)

	if len(opts.CEHours) > 0 {
		hours := make([]string, len(opts.CEHours))
		for i, h := range opts.CEHours {
			hours[i] = strconv.FormatFloat(h, 'f', -1, 64)
		}
		sb.WriteString(fmt.Sprintf("CE hours: %s\n", strings.Join(hours, ", ")))
	}

	writeLine("Roles", opts.Roles)

	return sb.String()
}

func eventRow(event models.Event) []string {
	date := ""
	if event.Date != nil {
		date = models.FormatEventDate(*event.Date)
	}

	ce := ""
	if event.CEHours != nil {
		ce = strconv.FormatFloat(*event.CEHours, 'f', -1, 64)
	}

	return []string{
		date,
		event.TimeLabel,
		event.Title,
		event.Vendor,
		ce,
		event.Format,
		strings.Join(event.Roles, ", "),
	}
}
