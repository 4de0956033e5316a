package routes

import (
	"net/http"
	"time"

	"impulso/handlers"
	"impulso/middleware"
	"impulso/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.MeHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/password", hb.ChangePasswordHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())

		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.GET("/slots", hb.AvailableSlotsHandler)
		api.GET("/services", hb.AvailableServicesHandler)

		// Client lifecycle operations.
		client := api.Group("")
		client.Use(middleware.RequireRole(models.RoleCliente))
		client.POST("", hb.CreateBookingHandler)
		client.POST("/:id/check-in", hb.CheckInHandler)
		client.POST("/:id/complete", hb.CompleteBookingHandler)
		client.POST("/:id/cancel", hb.CancelBookingHandler)
		client.POST("/:id/reschedule", hb.RescheduleBookingHandler)

		// Worker-side lifecycle operations.
		worker := api.Group("")
		worker.Use(middleware.RequireRole(models.RoleJovem, models.RoleOng))
		worker.POST("/:id/accept", hb.AcceptBookingHandler)
		worker.POST("/:id/reject", hb.RejectBookingHandler)
		worker.POST("/:id/pin", hb.GeneratePinHandler)
		worker.GET("/pending/ong/:ongId", hb.PendingForOngHandler)
		worker.GET("/pending/jovem/:jovemId", hb.PendingForJovemHandler)
	}
}

// RegisterJovemRoutes registers jovem profile endpoints.
func RegisterJovemRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/jovens")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListJovensHandler)
		api.GET("/:id", hb.GetJovemHandler)

		managed := api.Group("")
		managed.Use(middleware.RequireRole(models.RoleOng, models.RoleAdmin))
		managed.POST("", hb.CreateJovemHandler)
		managed.DELETE("/:id", hb.DeleteJovemHandler)

		// Jovens may edit their own profile; ONGs and admins may edit any.
		api.PUT("/:id", middleware.RequireRole(models.RoleJovem, models.RoleOng, models.RoleAdmin), hb.UpdateJovemHandler)
	}
}

// RegisterOngRoutes registers partner-organization endpoints.
func RegisterOngRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ongs")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListOngsHandler)
		api.GET("/me", middleware.RequireRole(models.RoleOng), hb.MyOngHandler)
		api.GET("/:id", hb.GetOngHandler)
		api.GET("/:id/roster", hb.OngRosterHandler)
		api.PUT("/:id", middleware.RequireRole(models.RoleOng, models.RoleAdmin), hb.UpdateOngHandler)
	}
}

// RegisterCatalogRoutes registers service-catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)

		managed := api.Group("")
		managed.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleOng, models.RoleAdmin))
		managed.POST("", hb.CreateServiceHandler)
		managed.PUT("/:id", hb.UpdateServiceHandler)
		managed.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListReviewsHandler)
		api.POST("", hb.CreateReviewHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		api.GET("/users", hb.ListUsersHandler)
		api.GET("/pricing/margin", hb.GetMarginHandler)
		api.PUT("/pricing/margin", hb.SetMarginHandler)
	}
}

// RegisterStorageRoutes registers content upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/upload")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/:bucket", hb.UploadFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Impulso Jovem API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterJovemRoutes(r, hb)
	RegisterOngRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
