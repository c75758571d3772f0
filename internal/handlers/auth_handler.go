package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"evento/internal/helpers"
	"evento/internal/middleware"
	"evento/internal/models"
)

// SessionTTL bounds both the JWT lifetime and the Redis session record.
const SessionTTL = 24 * time.Hour

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// issueSession signs a JWT carrying the user id plus a fresh session id, and
// stores the user record under that session id. The token is only as alive as
// the session record.
func issueSession(c *gin.Context, user *models.User) (string, bool) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return "", false
	}

	sessions := middleware.GetSessionStore(c)
	if sessions == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Session store not found.")
		return "", false
	}

	sessionID := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"jti":     sessionID,
		"exp":     time.Now().Add(SessionTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return "", false
	}

	if err := sessions.Save(c.Request.Context(), sessionID, user); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save session.")
		return "", false
	}

	return tokenString, true
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var existingUser models.User
	if result := gormDB.Where("email = ?", req.Email).First(&existingUser); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "User already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
	}

	if err := gormDB.Create(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	tokenString, ok := issueSession(c, &user)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if !user.CheckPassword(req.Password) {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	tokenString, ok := issueSession(c, &user)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

// GoogleLogin runs the federated flow. The provider always vouches for the
// caller, so the account is created on first sight and reused afterwards.
func GoogleLogin(c *gin.Context) {
	provider := middleware.GetIdentityProvider(c)
	if provider == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Identity provider not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	id, err := provider.Authenticate(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadGateway, "Federated sign-in failed.")
		return
	}

	var user models.User
	err = gormDB.Where("email = ?", id.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:       uuid.New(),
			Email:    id.Email,
			Password: "-",
			Name:     id.Name,
			Avatar:   id.Avatar,
			GoogleID: id.ExternalID,
		}
		if err := gormDB.Create(&user).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
			return
		}
	} else if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving user.")
		return
	}

	tokenString, ok := issueSession(c, &user)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

// Logout deletes the session record unconditionally; the bearer token dies
// with it.
func Logout(c *gin.Context) {
	sessions := middleware.GetSessionStore(c)
	if sessions == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Session store not found.")
		return
	}

	sessionID := c.GetString("session_id")
	if err := sessions.Delete(c.Request.Context(), sessionID); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to clear session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully."})
}
