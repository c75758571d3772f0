package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"evento/internal/models"
)

func TestValidTicketDrafts(t *testing.T) {
	tests := []struct {
		name    string
		drafts  []TicketDraft
		want    int
		wantErr error
	}{
		{
			name:   "single valid draft",
			drafts: []TicketDraft{{Name: "General Admission", Price: 450, Quantity: 100}},
			want:   1,
		},
		{
			name: "blank-named drafts are dropped",
			drafts: []TicketDraft{
				{Name: "", Price: 100, Quantity: 10},
				{Name: "VIP", Price: 5999, Quantity: 50},
			},
			want: 1,
		},
		{
			name:   "free ticket with quantity is valid",
			drafts: []TicketDraft{{Name: "Attendee", Price: 0, Quantity: 200}},
			want:   1,
		},
		{
			name:    "no drafts",
			drafts:  nil,
			wantErr: models.ErrNoValidTickets,
		},
		{
			name:    "only blank-named drafts",
			drafts:  []TicketDraft{{Name: "", Price: 100, Quantity: 10}},
			wantErr: models.ErrNoValidTickets,
		},
		{
			name:    "negative price",
			drafts:  []TicketDraft{{Name: "Broken", Price: -1, Quantity: 10}},
			wantErr: models.ErrNoValidTickets,
		},
		{
			name:    "zero quantity",
			drafts:  []TicketDraft{{Name: "Broken", Price: 100, Quantity: 0}},
			wantErr: models.ErrNoValidTickets,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validTicketDrafts(tt.drafts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func postJSON(handler gin.HandlerFunc, body string, keys map[string]interface{}) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	for k, v := range keys {
		c.Set(k, v)
	}
	handler(c)
	return w
}

func validEventBody(tickets string) string {
	return `{
		"title": "Jazz Night at Blue Note",
		"description": "An intimate evening of smooth jazz in our cozy venue.",
		"category": "music",
		"date": "2024-03-20",
		"time": "20:00",
		"address": "131 W 3rd St, New York",
		"tickets": ` + tickets + `
	}`
}

func TestCreateEventRejectsWithoutValidTickets(t *testing.T) {
	// Rejected before any catalog mutation is attempted: the handler never
	// reaches the database.
	w := postJSON(CreateEvent, validEventBody(`[{"name": "", "price": 100, "quantity": 10}]`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "ticket type")
}

func TestCreateEventRejectsShortFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "short title", body: `{
			"title": "Jazz",
			"description": "An intimate evening of smooth jazz in our cozy venue.",
			"category": "music", "date": "2024-03-20", "time": "20:00",
			"address": "131 W 3rd St, New York",
			"tickets": [{"name": "GA", "price": 450, "quantity": 100}]
		}`},
		{name: "short description", body: `{
			"title": "Jazz Night at Blue Note",
			"description": "Too short.",
			"category": "music", "date": "2024-03-20", "time": "20:00",
			"address": "131 W 3rd St, New York",
			"tickets": [{"name": "GA", "price": 450, "quantity": 100}]
		}`},
		{name: "bad date format", body: `{
			"title": "Jazz Night at Blue Note",
			"description": "An intimate evening of smooth jazz in our cozy venue.",
			"category": "music", "date": "20-03-2024", "time": "20:00",
			"address": "131 W 3rd St, New York",
			"tickets": [{"name": "GA", "price": 450, "quantity": 100}]
		}`},
		{name: "short address", body: `{
			"title": "Jazz Night at Blue Note",
			"description": "An intimate evening of smooth jazz in our cozy venue.",
			"category": "music", "date": "2024-03-20", "time": "20:00",
			"address": "NY",
			"tickets": [{"name": "GA", "price": 450, "quantity": 100}]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(CreateEvent, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateEventRejectsUnknownCategory(t *testing.T) {
	body := strings.Replace(validEventBody(`[{"name": "GA", "price": 450, "quantity": 100}]`), `"music"`, `"karaoke"`, 1)
	w := postJSON(CreateEvent, body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEventRequiresAuthenticatedUser(t *testing.T) {
	w := postJSON(CreateEvent, validEventBody(`[{"name": "GA", "price": 450, "quantity": 100}]`), nil)
	// Valid payload but no user in context.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// dryRunDB builds statements without a live server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=evento dbname=evento",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db
}

func TestDeleteEventTicketsRetiresTicketTypes(t *testing.T) {
	db := dryRunDB(t)

	tx := deleteEventTickets(db, "5eedc0de-0000-4000-8000-000000000002")
	require.NoError(t, tx.Error)

	// Soft delete scoped to the event: the ticket types get a tombstone
	// alongside the event's instead of staying live while orphaned.
	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, `"ticket_types"`)
	assert.Contains(t, sql, `SET "deleted_at"`)
	assert.Contains(t, sql, "event_id")
}
