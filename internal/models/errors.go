package models

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrNotEnoughTickets   = errors.New("not enough tickets remaining")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")

	ErrBookingNotFound = errors.New("booking not found")

	ErrNoValidTickets = errors.New("at least one ticket type with a name is required")
)
