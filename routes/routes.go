package routes

import (
	"net/http"
	"time"

	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.SignIn)

		api.Use(middleware.RequireAuth())
		api.POST("/logout", hb.Auth.SignOut)
	}
}

// RegisterProviderRoutes registers the public provider surface and the
// authenticated provider's own endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.Provider.Register)
		api.GET("", hb.Provider.ListAccepted)
		api.GET("/categories", hb.Provider.Categories)
		api.GET("/email/:email", hb.Provider.GetByEmail)
		api.GET("/email/:email/reviews", hb.Review.ListByProvider)
	}

	me := r.Group("/api/provider")
	{
		me.Use(middleware.RequireRole(models.RoleProvider))
		me.GET("/profile", hb.Provider.Profile)
		me.GET("/status", hb.Provider.Status)
		me.POST("/accept", hb.Provider.Accept)
		me.POST("/document", hb.Provider.UploadDocument)
		me.GET("/bookings", hb.Booking.ProviderViews)
		me.PATCH("/bookings/:id/status", hb.Booking.UpdateStatus)
	}
}

// RegisterBookingRoutes registers the customer booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.RequireRole(models.RoleCustomer))
		api.POST("", hb.Booking.Create)
		api.GET("", hb.Booking.CustomerViews)
		api.PATCH("/:id/status", hb.Booking.UpdateStatus)
		api.POST("/:id/pay", hb.Booking.Pay)
		api.POST("/:id/review", hb.Review.Submit)
	}
}

// RegisterAccountRoutes registers the payment preference endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/account")
	{
		api.Use(middleware.RequireAuth())
		api.GET("/payment", hb.Account.GetPaymentPreference)
		api.PUT("/payment", hb.Account.SetPaymentPreference)
	}
}

// RegisterAdminRoutes registers the provider review queue.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("/providers", hb.Admin.ListProviders)
		api.PATCH("/providers/:id/status", hb.Admin.DecideStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm HomeServe"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
