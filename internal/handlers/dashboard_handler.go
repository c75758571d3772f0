package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"evento/internal/booking"
	"evento/internal/helpers"
	"evento/internal/models"
)

type hostedEvent struct {
	models.Event
	TotalAttendees int `json:"totalAttendees"`
	TotalRevenue   int `json:"totalRevenue"`
}

// Dashboard returns the caller's created events with derived sales stats,
// plus their booking history.
func Dashboard(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var created []models.Event
	err := gormDB.Preload("Tickets").
		Where("host_id = ?", userID).
		Order("created_at DESC").
		Find(&created).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	hosted := make([]hostedEvent, 0, len(created))
	for _, event := range created {
		hosted = append(hosted, hostedEvent{
			Event:          event,
			TotalAttendees: event.Attendees(),
			TotalRevenue:   event.Revenue(),
		})
	}

	svc := booking.NewService(booking.NewRepository(gormDB))
	bookings, err := svc.ForUser(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving bookings.")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"createdEvents": hosted,
		"bookings":      bookings,
	})
}
