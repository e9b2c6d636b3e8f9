package main

import (
	"fmt"
	"log"
	"os"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/config"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/controllers"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/repository"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/routes"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.NotificationLog{},
	)

	if err := config.EnsureSlotIndex(config.DB); err != nil {
		log.Fatalf("Failed to create slot uniqueness index: %v", err)
	}
}

func main() {
	bookingRepo := repository.NewBookingRepository(config.DB)
	serviceRepo := repository.NewServiceRepository(config.DB)
	logRepo := repository.NewNotificationLogRepository(config.DB)

	notifier := services.NewNotificationService(
		services.NewSMTPSenderFromEnv(),
		services.NewTwilioSenderFromEnv(),
		logRepo,
		os.Getenv("ADMIN_EMAIL"),
		nil,
	)

	bookingService := services.NewBookingService(bookingRepo, serviceRepo, notifier, nil)
	availabilityService := services.NewAvailabilityService(bookingRepo, serviceRepo)

	reminderService := services.NewReminderService(bookingRepo, notifier, nil)
	reminderService.StartScheduler()

	r := routes.SetupRouter(
		&controllers.BookingController{Bookings: bookingService},
		&controllers.AvailabilityController{Availability: availabilityService},
	)
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
