// Package booking owns the checkout path: the guarded remaining-count
// decrement and the ledger append happen in one transaction.
package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"evento/internal/helpers"
	"evento/internal/models"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
	EventByID(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	TicketType(ctx context.Context, eventID, ticketTypeID uuid.UUID) (*models.TicketType, error)
	// DecrementRemaining fails with models.ErrNotEnoughTickets unless
	// remaining >= quantity at the moment of the update.
	DecrementRemaining(ctx context.Context, ticketTypeID uuid.UUID, quantity int) error
	CreateBooking(ctx context.Context, booking *models.Booking) error
	BookingByTicketID(ctx context.Context, ticketID string) (*models.Booking, error)
	BookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type Request struct {
	EventID      uuid.UUID
	TicketTypeID uuid.UUID
	UserID       uuid.UUID
	Name         string
	Email        string
	Quantity     int
}

// Book reserves quantity tickets and appends the booking record. On any
// failure nothing is persisted.
func (s *Service) Book(ctx context.Context, req Request) (*models.Booking, error) {
	if req.Quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	var booking *models.Booking
	err := s.repo.WithTx(ctx, func(tx Repository) error {
		event, err := tx.EventByID(ctx, req.EventID)
		if err != nil {
			return err
		}

		ticket, err := tx.TicketType(ctx, req.EventID, req.TicketTypeID)
		if err != nil {
			return err
		}

		if err := tx.DecrementRemaining(ctx, ticket.ID, req.Quantity); err != nil {
			return err
		}

		booking = &models.Booking{
			TicketID:     helpers.NewTicketID(),
			EventID:      event.ID,
			EventTitle:   event.Title,
			EventDate:    event.Date,
			EventTime:    event.Time,
			TicketTypeID: ticket.ID,
			TicketType:   ticket.Name,
			UserID:       req.UserID,
			Name:         req.Name,
			Email:        req.Email,
			Quantity:     req.Quantity,
			TotalPrice:   ticket.Price * req.Quantity,
			BookedAt:     s.now(),
		}
		return tx.CreateBooking(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) ByTicketID(ctx context.Context, ticketID string) (*models.Booking, error) {
	return s.repo.BookingByTicketID(ctx, ticketID)
}

func (s *Service) ForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return s.repo.BookingsByUser(ctx, userID)
}
