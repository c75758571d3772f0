package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"evento/config"
	"evento/internal/handlers"
	"evento/internal/identity"
	"evento/internal/middleware"
	"evento/internal/session"
)

func Start() error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	redisClient := config.InitRedis(cfg)
	sessions := session.NewStore(redisClient, handlers.SessionTTL)
	provider := identity.NewFakeGoogle(cfg.Identity.ProviderDelay)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	setupRoutes(r, db, sessions, provider)

	logrus.WithField("port", cfg.Server.Port).Info("Server starting")
	return r.Run(":" + cfg.Server.Port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store, provider identity.Provider) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.SessionMiddleware(sessions))
	r.Use(middleware.IdentityMiddleware(provider))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
		public.POST("/auth/google", handlers.GoogleLogin)

		public.GET("/categories", handlers.ListCategories)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
		}

		bookingPublic := public.Group("/bookings")
		{
			bookingPublic.GET("/:ticketId", handlers.GetBooking)
			bookingPublic.GET("/:ticketId/qr", handlers.TicketQR)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware(sessions))
	{
		protected.POST("/logout", handlers.Logout)
		protected.GET("/dashboard", handlers.Dashboard)

		eventProtected := protected.Group("/events")
		{
			eventProtected.POST("", handlers.CreateEvent)
			eventProtected.DELETE("/:id", handlers.DeleteEvent)
			eventProtected.POST("/:id/bookings", handlers.BookTickets)
		}
	}
}
