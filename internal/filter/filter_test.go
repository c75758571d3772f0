package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evento/internal/models"
)

func testCatalog() []models.Event {
	return []models.Event{
		{
			Title:       "React Conference 2024",
			Description: "The biggest React conference of the year.",
			Date:        "2024-03-15",
			Time:        "09:00",
			Address:     "San Francisco Convention Center, 747 Howard St, San Francisco, CA 94103",
			Category:    models.CategoryTech,
			HostName:    "Tech Events Inc",
		},
		{
			Title:       "Jazz Night at Blue Note",
			Description: "An intimate evening of smooth jazz.",
			Date:        "2024-03-20",
			Time:        "20:00",
			Address:     "Blue Note Jazz Club, 131 W 3rd St, New York, NY 10012",
			Category:    models.CategoryMusic,
			HostName:    "Blue Note Entertainment",
		},
		{
			Title:       "Marathon Training Run",
			Description: "Weekly group training run for marathon preparation.",
			Date:        "2024-03-15",
			Time:        "07:00",
			Address:     "Central Park, New York, NY 10024",
			Category:    models.CategorySports,
			HostName:    "NYC Running Club",
		},
	}
}

func TestApplyNeutralCriteriaReturnsFullCatalog(t *testing.T) {
	events := testCatalog()

	for _, c := range []Criteria{
		{},
		{Category: models.CategoryAll},
		{Query: "", Category: models.CategoryAll, Date: "", Location: ""},
	} {
		got := Apply(events, c)
		require.Len(t, got, len(events))
		for i := range events {
			assert.Equal(t, events[i].Title, got[i].Title, "order must be preserved")
		}
		assert.False(t, c.Active())
	}
}

func TestApplyQueryMatchesAnyField(t *testing.T) {
	events := testCatalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "title substring", query: "jazz night", want: []string{"Jazz Night at Blue Note"}},
		{name: "title case-insensitive", query: "REACT", want: []string{"React Conference 2024"}},
		{name: "description", query: "marathon preparation", want: []string{"Marathon Training Run"}},
		{name: "host name", query: "tech events inc", want: []string{"React Conference 2024"}},
		{name: "address", query: "new york", want: []string{"Jazz Night at Blue Note", "Marathon Training Run"}},
		{name: "no match", query: "opera", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(events, Criteria{Query: tt.query})
			titles := make([]string, 0, len(got))
			for _, e := range got {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestApplyCategoryEquality(t *testing.T) {
	events := testCatalog()

	got := Apply(events, Criteria{Category: models.CategoryMusic})
	require.Len(t, got, 1)
	assert.Equal(t, "Jazz Night at Blue Note", got[0].Title)

	for _, event := range events {
		included := false
		for _, g := range got {
			if g.Title == event.Title {
				included = true
			}
		}
		assert.Equal(t, event.Category == models.CategoryMusic, included)
	}
}

func TestApplyDateMatchesCalendarDay(t *testing.T) {
	events := testCatalog()

	// Two events on 2024-03-15 at different times of day both pass; the
	// event one day later does not.
	got := Apply(events, Criteria{Date: "2024-03-15"})
	require.Len(t, got, 2)
	assert.Equal(t, "React Conference 2024", got[0].Title)
	assert.Equal(t, "Marathon Training Run", got[1].Title)

	got = Apply(events, Criteria{Date: "2024-03-16"})
	assert.Empty(t, got)
}

func TestApplyLocationSubstring(t *testing.T) {
	events := testCatalog()

	got := Apply(events, Criteria{Location: "central park"})
	require.Len(t, got, 1)
	assert.Equal(t, "Marathon Training Run", got[0].Title)
}

func TestApplyCombinesWithAnd(t *testing.T) {
	events := testCatalog()

	got := Apply(events, Criteria{Query: "new york", Category: models.CategorySports})
	require.Len(t, got, 1)
	assert.Equal(t, "Marathon Training Run", got[0].Title)

	got = Apply(events, Criteria{Query: "new york", Category: models.CategoryTech})
	assert.Empty(t, got)

	got = Apply(events, Criteria{Query: "jazz", Date: "2024-03-20", Location: "blue note"})
	require.Len(t, got, 1)
	assert.Equal(t, "Jazz Night at Blue Note", got[0].Title)
}

func TestCriteriaActive(t *testing.T) {
	assert.False(t, Criteria{}.Active())
	assert.False(t, Criteria{Category: models.CategoryAll}.Active())
	assert.True(t, Criteria{Query: "jazz"}.Active())
	assert.True(t, Criteria{Category: models.CategoryMusic}.Active())
	assert.True(t, Criteria{Date: "2024-03-15"}.Active())
	assert.True(t, Criteria{Location: "NY"}.Active())
}
