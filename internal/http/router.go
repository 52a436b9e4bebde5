package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "shraddhayatra/internal/config"
	"shraddhayatra/internal/domain"
	h "shraddhayatra/internal/http/handlers"
	"shraddhayatra/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Init(env)
	middleware.InitAuth(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.Static("/uploads", env.UploadDir)

	loginLimiter := middleware.NewRateLimiter()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", loginLimiter.Limit(), h.Login)
		auth.POST("/register", loginLimiter.Limit(), h.Register)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", middleware.Authenticate(), h.Session)
		auth.PUT("/password", middleware.Authenticate(), h.ChangePassword)

		// Public content
		api.GET("/trips", h.GetTrips)
		api.GET("/trips/:id", h.GetTripByID)
		api.GET("/trips/:id/blessing", h.TripBlessing)
		api.GET("/gallery", h.GetGallery)
		api.GET("/testimonials", h.GetTestimonials)
		api.GET("/team", h.GetTeam)
		api.GET("/config", h.GetSiteConfig)
		api.POST("/contact", h.ContactInquiry)

		// Optional identity: anonymous donations stay anonymous, and a
		// join attempt without a session answers with a pending action.
		api.POST("/donations", middleware.OptionalAuth(), h.CreateDonation)
		api.POST("/bookings", middleware.OptionalAuth(), h.CreateBooking)
		api.GET("/bootstrap", middleware.OptionalAuth(), h.Bootstrap)

		// Member endpoints
		member := api.Group("", middleware.Authenticate())
		member.GET("/me/bookings", h.MyBookings)
		member.GET("/me/id-card", h.IDCard)
		member.GET("/bookings/:id/confirmation", h.BookingConfirmation)
		member.PUT("/profiles/:id", h.UpdateProfile)
		member.POST("/uploads/image", h.UploadImage)

		// Admin endpoints
		admin := api.Group("/admin", middleware.Authenticate(), middleware.RequireRoles(domain.RoleAdmin))
		admin.POST("/trips", h.CreateTrip)
		admin.PUT("/trips/:id", h.UpdateTrip)
		admin.DELETE("/trips/:id", h.DeleteTrip)
		admin.POST("/trips/:id/notify", h.NotifyTrip)

		admin.PUT("/bookings/:id/status", h.UpdateBookingStatus)
		admin.GET("/donations", h.ListDonations)

		admin.POST("/gallery", h.CreateGalleryImage)
		admin.DELETE("/gallery/:id", h.DeleteGalleryImage)

		admin.POST("/testimonials", h.CreateTestimonial)
		admin.PUT("/testimonials/:id", h.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", h.DeleteTestimonial)

		admin.POST("/team", h.CreateTeamMember)
		admin.PUT("/team/:id", h.UpdateTeamMember)
		admin.DELETE("/team/:id", h.DeleteTeamMember)

		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/role", h.UpdateUserRole)

		admin.PUT("/config/:key", h.UpdateSiteConfig)
	}

	return r
}
