package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/marcel-maitland/mb2-webinar-catalog/internal/models"
)

// FilterService computes the visible, sorted subset of a normalized
// event collection for a given filter state. It holds no state of its
// own and is deterministic for a fixed now, so it is safely callable
// from any context.
type FilterService struct{}

// NewFilterService creates a new filter service.
func NewFilterService() *FilterService {
	return &FilterService{}
}

// Visible applies, in order: past-event exclusion, per-facet filtering,
// free-text search, then a stable date-ascending sort. Events without
// any date are never excluded as past and sort after all dated events
// in their original relative order.
func (fs *FilterService) Visible(events []models.Event, state models.FilterState, now time.Time) []models.Event {
	visible := make([]models.Event, 0, len(events))

	query := strings.ToLower(strings.TrimSpace(state.Query))

	for _, event := range events {
		if !state.ShowPast && isPast(event, now) {
			continue
		}
		if !matchesFacets(event, state) {
			continue
		}
		if query != "" && !strings.Contains(eventHaystack(event), query) {
			continue
		}
		visible = append(visible, event)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		ti, iOK := sortTime(visible[i])
		tj, jOK := sortTime(visible[j])
		if iOK != jOK {
			return iOK // dated events before undated ones
		}
		if !iOK {
			return false
		}
		return ti.Before(tj)
	})

	return visible
}

// Options derives the facet option lists that drive the filter controls.
// Scalar facets are collected from events surviving the past-event
// exclusion; the roles list is the distinct union across all events.
func (fs *FilterService) Options(events []models.Event, now time.Time) models.FacetOptions {
	categories := map[string]bool{}
	vendors := map[string]bool{}
	formats := map[string]bool{}
	ceHours := map[float64]bool{}
	roles := map[string]bool{}

	for _, event := range events {
		for _, role := range event.Roles {
			roles[role] = true
		}

		if isPast(event, now) {
			continue
		}
		if event.Category != "" {
			categories[event.Category] = true
		}
		if event.Vendor != "" {
			vendors[event.Vendor] = true
		}
		if event.Format != "" {
			formats[event.Format] = true
		}
		if event.CEHours != nil {
			ceHours[*event.CEHours] = true
		}
	}

	return models.FacetOptions{
		Categories: sortedKeys(categories),
		Vendors:    sortedKeys(vendors),
		Formats:    sortedKeys(formats),
		CEHours:    sortedValues(ceHours),
		Roles:      sortedKeys(roles),
	}
}

// isPast reports whether the event's end-of-day boundary is strictly
// before now. StartAt is preferred over the nominal date; an event with
// no date at all is never past.
func isPast(event models.Event, now time.Time) bool {
	ts, ok := sortTime(event)
	if !ok {
		return false
	}
	return EndOfDay(ts).Before(now)
}

// sortTime returns the timestamp ordering an event: the precise start
// when present, else the nominal date.
func sortTime(event models.Event) (time.Time, bool) {
	if event.StartAt != nil {
		return *event.StartAt, true
	}
	if event.Date != nil {
		return *event.Date, true
	}
	return time.Time{}, false
}

func matchesFacets(event models.Event, state models.FilterState) bool {
	if !matchesScalar(event.Category, state.Categories) {
		return false
	}
	if !matchesScalar(event.Vendor, state.Vendors) {
		return false
	}
	if !matchesScalar(event.Format, state.Formats) {
		return false
	}

	if len(state.CEHours) > 0 {
		if event.CEHours == nil {
			return false
		}
		if !containsFloat(state.CEHours, *event.CEHours) {
			return false
		}
	}

	if len(state.Roles) > 0 && !anyRoleSelected(event.Roles, state.Roles) {
		return false
	}

	return true
}

// matchesScalar is the inclusive-default facet rule: no selection means
// no constraint, otherwise exact match.
func matchesScalar(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if value == s {
			return true
		}
	}
	return false
}

func containsFloat(values []float64, v float64) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// anyRoleSelected retains a multi-role event when any of its roles is in
// the selected set.
func anyRoleSelected(roles, selected []string) bool {
	for _, role := range roles {
		for _, s := range selected {
			if role == s {
				return true
			}
		}
	}
	return false
}

// eventHaystack builds the lowercased free-text search target for one
// event: every user-visible facet plus description, location and a
// human-readable date rendering.
func eventHaystack(event models.Event) string {
	parts := []string{
		event.Title,
		event.Vendor,
		event.Category,
		event.Format,
	}

	if event.CEHours != nil {
		parts = append(parts, strconv.FormatFloat(*event.CEHours, 'f', -1, 64))
	}

	parts = append(parts, event.Description, event.Location)
	parts = append(parts, event.Roles...)

	if event.Date != nil {
		parts = append(parts, models.FormatEventDate(*event.Date))
	}

	return strings.ToLower(strings.Join(parts, " "))
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedValues(set map[float64]bool) []float64 {
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
