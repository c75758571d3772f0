// Package filter narrows the event catalog by free-text, category, date and
// location. Predicates combine with AND; a criterion at its neutral value
// passes everything through.
package filter

import (
	"strings"
	"time"

	"evento/internal/models"
)

type Criteria struct {
	Query    string
	Category string
	Date     string
	Location string
}

func (c Criteria) Active() bool {
	return c.Query != "" ||
		(c.Category != "" && c.Category != models.CategoryAll) ||
		c.Date != "" ||
		c.Location != ""
}

// Apply returns the ordered subsequence of events matching every criterion.
func Apply(events []models.Event, c Criteria) []models.Event {
	matched := make([]models.Event, 0, len(events))
	for _, event := range events {
		if Matches(&event, c) {
			matched = append(matched, event)
		}
	}
	return matched
}

func Matches(event *models.Event, c Criteria) bool {
	return matchesQuery(event, c.Query) &&
		matchesCategory(event, c.Category) &&
		matchesDate(event, c.Date) &&
		matchesLocation(event, c.Location)
}

func matchesQuery(event *models.Event, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(event.Title), q) ||
		strings.Contains(strings.ToLower(event.Description), q) ||
		strings.Contains(strings.ToLower(event.HostName), q) ||
		strings.Contains(strings.ToLower(event.Address), q)
}

func matchesCategory(event *models.Event, category string) bool {
	if category == "" || category == models.CategoryAll {
		return true
	}
	return event.Category == category
}

// Calendar-day comparison; an unparsable event date fails an active filter.
func matchesDate(event *models.Event, date string) bool {
	if date == "" {
		return true
	}
	selected, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	eventDate, err := time.Parse("2006-01-02", event.Date)
	if err != nil {
		return false
	}
	return eventDate.Year() == selected.Year() && eventDate.YearDay() == selected.YearDay()
}

func matchesLocation(event *models.Event, location string) bool {
	if location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(event.Address), strings.ToLower(location))
}
