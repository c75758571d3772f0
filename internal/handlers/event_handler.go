package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"evento/internal/filter"
	"evento/internal/helpers"
	"evento/internal/models"
)

const defaultBannerImage = "https://images.pexels.com/photos/1181676/pexels-photo-1181676.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1"

type TicketDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}

type CreateEventRequest struct {
	Title       string        `json:"title" binding:"required,min=5"`
	Description string        `json:"description" binding:"required,min=20"`
	Category    string        `json:"category" binding:"required"`
	Date        string        `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string        `json:"time" binding:"required,datetime=15:04"`
	Address     string        `json:"address" binding:"required,min=5"`
	Latitude    float64       `json:"lat"`
	Longitude   float64       `json:"lng"`
	BannerImage string        `json:"bannerImage" binding:"omitempty,url"`
	Tickets     []TicketDraft `json:"tickets" binding:"required"`
}

// validTicketDrafts drops blank-named drafts; zero survivors rejects the
// whole request.
func validTicketDrafts(drafts []TicketDraft) ([]TicketDraft, error) {
	valid := make([]TicketDraft, 0, len(drafts))
	for _, draft := range drafts {
		if draft.Name == "" {
			continue
		}
		if draft.Price < 0 || draft.Quantity < 1 {
			return nil, models.ErrNoValidTickets
		}
		valid = append(valid, draft)
	}
	if len(valid) == 0 {
		return nil, models.ErrNoValidTickets
	}
	return valid, nil
}

func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	criteria := filter.Criteria{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Date:     c.Query("date"),
		Location: c.Query("location"),
	}

	var events []models.Event
	err := gormDB.Preload("Tickets").
		Where("is_public = ?", true).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	filtered := filter.Apply(events, criteria)

	c.JSON(http.StatusOK, gin.H{
		"events":   filtered,
		"total":    len(filtered),
		"filtered": criteria.Active(),
	})
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Tickets").Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !models.IsValidCategory(req.Category) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please select a valid category.")
		return
	}

	drafts, err := validTicketDrafts(req.Tickets)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please add at least one ticket type.")
		return
	}

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

	var host models.User
	if err := gormDB.Where("id = ?", userID).First(&host).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	bannerImage := req.BannerImage
	if bannerImage == "" {
		bannerImage = defaultBannerImage
	}

	tickets := make([]models.TicketType, 0, len(drafts))
	for _, draft := range drafts {
		tickets = append(tickets, models.TicketType{
			ID:          uuid.New(),
			Name:        draft.Name,
			Description: draft.Description,
			Price:       draft.Price,
			Quantity:    draft.Quantity,
			Remaining:   draft.Quantity,
		})
	}

	event := models.Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Category:    req.Category,
		HostID:      host.ID,
		HostName:    host.Name,
		BannerImage: bannerImage,
		IsPublic:    true,
		Tickets:     tickets,
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")
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

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND host_id = ?", eventID, userID).Delete(&models.Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrEventNotFound
		}
		return deleteEventTickets(tx, eventID).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to delete.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}

// deleteEventTickets retires the event's ticket types together with the
// event, so none of them stay bookable after the listing is gone.
func deleteEventTickets(tx *gorm.DB, eventID string) *gorm.DB {
	return tx.Where("event_id = ?", eventID).Delete(&models.TicketType{})
}
