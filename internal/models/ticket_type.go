package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketType struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int       `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Remaining   int       `gorm:"not null" json:"remaining"`
}

func (ticket *TicketType) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	return
}

func (ticket *TicketType) Available() bool {
	return ticket.Remaining > 0
}

// DisplayPrice renders the price for listings. Zero-priced tickets are free
// admission, never "₹0".
func (ticket *TicketType) DisplayPrice() string {
	return FormatPrice(ticket.Price)
}

func FormatPrice(price int) string {
	if price == 0 {
		return "Free"
	}
	return fmt.Sprintf("₹%d", price)
}
