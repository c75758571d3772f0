package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	ID          uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"not null" json:"description"`
	Date        string       `gorm:"not null" json:"date"`
	Time        string       `gorm:"not null" json:"time"`
	Address     string       `gorm:"not null" json:"address"`
	Latitude    float64      `json:"lat"`
	Longitude   float64      `json:"lng"`
	Category    string       `gorm:"not null;index" json:"category"`
	HostID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"hostId"`
	HostName    string       `gorm:"not null" json:"hostName"`
	BannerImage string       `json:"bannerImage,omitempty"`
	IsPublic    bool         `gorm:"not null;default:true" json:"isPublic"`
	Tickets     []TicketType `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tickets"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

// StartsAt combines the separate date and time strings into a single
// timestamp. The two fields are stored exactly as submitted and only joined
// here.
func (event *Event) StartsAt() (time.Time, error) {
	return time.Parse("2006-01-02T15:04", event.Date+"T"+event.Time)
}

// LowestPrice returns the cheapest ticket price, or 0 when the event has no
// ticket types.
func (event *Event) LowestPrice() int {
	if len(event.Tickets) == 0 {
		return 0
	}
	lowest := event.Tickets[0].Price
	for _, ticket := range event.Tickets[1:] {
		if ticket.Price < lowest {
			lowest = ticket.Price
		}
	}
	return lowest
}

// Attendees derives the attendee count from sold tickets.
func (event *Event) Attendees() int {
	total := 0
	for _, ticket := range event.Tickets {
		total += ticket.Quantity - ticket.Remaining
	}
	return total
}

// Revenue derives gross ticket revenue from sold tickets.
func (event *Event) Revenue() int {
	total := 0
	for _, ticket := range event.Tickets {
		total += ticket.Price * (ticket.Quantity - ticket.Remaining)
	}
	return total
}
