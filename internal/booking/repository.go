package booking

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evento/internal/models"
)

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository{db: tx})
	})
}

func (r *gormRepository) EventByID(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormRepository) TicketType(ctx context.Context, eventID, ticketTypeID uuid.UUID) (*models.TicketType, error) {
	var ticket models.TicketType
	err := r.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", ticketTypeID, eventID).
		First(&ticket).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.ErrTicketTypeNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *gormRepository) DecrementRemaining(ctx context.Context, ticketTypeID uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&models.TicketType{}).
		Where("id = ? AND remaining >= ?", ticketTypeID, quantity).
		UpdateColumn("remaining", gorm.Expr("remaining - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotEnoughTickets
	}
	return nil
}

func (r *gormRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *gormRepository) BookingByTicketID(ctx context.Context, ticketID string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *gormRepository) BookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booked_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
