package routes

import (
	"github.com/PRANAYKHOJARE/luxe-salon-backend/config"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/controllers"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(bookingCtrl *controllers.BookingController, availabilityCtrl *controllers.AvailabilityController) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://luxesalon.in",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public client-facing endpoints
	api := r.Group("/api")
	{
		api.GET("/services", controllers.GetServices)
		api.GET("/services/:id", controllers.GetService)
		api.GET("/availability", availabilityCtrl.GetAvailableSlots)
		api.POST("/bookings", bookingCtrl.CreateBooking)
		api.GET("/bookings/:id", bookingCtrl.GetBooking)
	}

	// Admin endpoints
	admin := r.Group("/api/admin")
	admin.Use(utils.AuthMiddleware(), utils.RequireRole("admin"))
	{
		// Service catalog management
		services := admin.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Booking management
		bookings := admin.Group("/bookings")
		{
			bookings.GET("", bookingCtrl.GetBookings)
			bookings.PATCH("/:id/status", bookingCtrl.UpdateBookingStatus)
			bookings.POST("/:id/cancel", bookingCtrl.CancelBooking)
		}

		// Notification logs
		admin.GET("/notifications", controllers.GetNotificationLogs)

		// Reports routes
		reportController := controllers.ReportController{}
		admin.GET("/reports", reportController.GetReportAnalytics)
		admin.GET("/reports/export", reportController.ExportBookingsCSV)

		// Dashboard routes
		admin.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
