package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evento/internal/models"
)

// ListCategories serves the closed category enumeration the discovery filter
// and the creation form both draw from.
func ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.Categories,
	})
}
