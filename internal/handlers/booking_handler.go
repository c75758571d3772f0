package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"evento/internal/booking"
	"evento/internal/helpers"
	"evento/internal/models"
)

type BookTicketsRequest struct {
	TicketTypeID uuid.UUID `json:"ticketTypeId" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,min=1"`
	Name         string    `json:"name" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
}

func bookingService(c *gin.Context) (*booking.Service, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return booking.NewService(booking.NewRepository(db.(*gorm.DB))), true
}

func BookTickets(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	var req BookTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	svc, ok := bookingService(c)
	if !ok {
		return
	}

	created, err := svc.Book(c.Request.Context(), booking.Request{
		EventID:      eventID,
		TicketTypeID: req.TicketTypeID,
		UserID:       userID.(uuid.UUID),
		Name:         req.Name,
		Email:        req.Email,
		Quantity:     req.Quantity,
	})
	switch {
	case errors.Is(err, models.ErrEventNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	case errors.Is(err, models.ErrTicketTypeNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket type not found.")
		return
	case errors.Is(err, models.ErrNotEnoughTickets):
		helpers.RespondWithError(c, http.StatusConflict, "Not enough tickets remaining.")
		return
	case errors.Is(err, models.ErrInvalidQuantity):
		helpers.RespondWithError(c, http.StatusBadRequest, "Quantity must be at least 1.")
		return
	case err != nil:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to book tickets.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed.",
		"booking": created,
	})
}

// GetBooking backs the confirmation view. Lookup is by ticket code, public
// like the confirmation link itself.
func GetBooking(c *gin.Context) {
	svc, ok := bookingService(c)
	if !ok {
		return
	}

	found, err := svc.ByTicketID(c.Request.Context(), c.Param("ticketId"))
	if errors.Is(err, models.ErrBookingNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving booking.")
		return
	}

	c.JSON(http.StatusOK, found)
}

func qrPayload(b *models.Booking) string {
	secretKey := os.Getenv("JWT_SECRET")
	signature := qrSignature(b.TicketID, b.EventID, b.UserID, secretKey)
	return fmt.Sprintf("ticket:%s;event:%s;signature:%s", b.TicketID, b.EventID.String(), signature)
}

func qrSignature(ticketID string, eventID, userID uuid.UUID, secretKey string) string {
	data := fmt.Sprintf("%s:%s:%s", ticketID, eventID.String(), userID.String())
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// TicketQR renders the e-ticket as a QR PNG. The payload carries an HMAC over
// the ticket code so door scanners can spot forged codes offline.
func TicketQR(c *gin.Context) {
	svc, ok := bookingService(c)
	if !ok {
		return
	}

	found, err := svc.ByTicketID(c.Request.Context(), c.Param("ticketId"))
	if errors.Is(err, models.ErrBookingNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving booking.")
		return
	}

	qrImage, err := qrcode.Encode(qrPayload(found), qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}
