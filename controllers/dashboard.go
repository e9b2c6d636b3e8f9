package controllers

import (
	"net/http"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/config"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func GetDashboardOverview(c *gin.Context) {
	// Total bookings
	var totalBookings int64
	config.DB.Model(&models.Booking{}).Count(&totalBookings)

	// Bookings by status
	var byStatus []StatusCount
	config.DB.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&byStatus)

	// This month's revenue (non-cancelled bookings)
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Booking{}).
		Where("created_at >= ? AND status <> ?", firstOfMonth, models.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&monthlyRevenue)

	// Today's bookings
	today := utils.BeginningOfDay(now)
	var todayBookings []models.Booking
	config.DB.Where("appointment_date = ? AND status IN ?", today, models.ActiveStatuses).
		Order("appointment_time ASC").
		Find(&todayBookings)

	// Upcoming bookings (next 7 days)
	var upcomingCount int64
	config.DB.Model(&models.Booking{}).
		Where("appointment_date > ? AND appointment_date <= ? AND status IN ?",
			today, today.AddDate(0, 0, 7), models.ActiveStatuses).
		Count(&upcomingCount)

	// Total active services
	var totalServices int64
	config.DB.Model(&models.Service{}).Where("is_available = ?", true).Count(&totalServices)

	c.JSON(http.StatusOK, gin.H{
		"totalBookings":    totalBookings,
		"bookingsByStatus": byStatus,
		"monthlyRevenue":   monthlyRevenue,
		"todayBookings":    todayBookings,
		"upcomingCount":    upcomingCount,
		"activeServices":   totalServices,
	})
}
