package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is an immutable snapshot taken at checkout. Event and ticket fields
// are copied, not referenced, so a confirmation stays readable even after the
// host deletes the event.
type Booking struct {
	gorm.Model
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TicketID     string    `gorm:"unique;not null;index" json:"ticketId"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId"`
	EventTitle   string    `gorm:"not null" json:"eventTitle"`
	EventDate    string    `gorm:"not null" json:"eventDate"`
	EventTime    string    `gorm:"not null" json:"eventTime"`
	TicketTypeID uuid.UUID `gorm:"type:uuid;not null" json:"ticketTypeId"`
	TicketType   string    `gorm:"not null" json:"ticketType"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null" json:"email"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	TotalPrice   int       `gorm:"not null" json:"totalPrice"`
	BookedAt     time.Time `gorm:"not null" json:"bookedAt"`
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return
}
