// controllers/report.go
package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/config"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue float64          `json:"currentMonthRevenue"`
	MonthGrowth         float64          `json:"monthGrowth"`
	CurrentYearRevenue  float64          `json:"currentYearRevenue"`
	MonthlyRevenue      []MonthlyRevenue `json:"monthlyRevenue"`
	TopServices         []ServiceSummary `json:"topServices"`
	QuickStats          QuickStatistics  `json:"quickStats"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type QuickStatistics struct {
	TotalBookings   int64   `json:"totalBookings"`
	CompletedRate   float64 `json:"completedRate"`
	CancelledRate   float64 `json:"cancelledRate"`
	AvgBookingValue float64 `json:"avgBookingValue"`
}

// GetReportAnalytics returns the complete analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	loc := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, loc)
	firstOfYear := time.Date(currentYear, 1, 1, 0, 0, 0, 0, loc)

	currentMonthRevenue, err := rc.getRevenue(firstOfMonth, firstOfMonth.AddDate(0, 1, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getRevenue(firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	currentYearRevenue, err := rc.getRevenue(firstOfYear, firstOfYear.AddDate(1, 0, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	monthGrowth := 0.0
	if lastMonthRevenue > 0 {
		monthGrowth = (currentMonthRevenue - lastMonthRevenue) / lastMonthRevenue * 100
	}

	// Monthly revenue series for the current year
	var monthly []MonthlyRevenue
	for m := 1; m <= int(currentMonth); m++ {
		start := time.Date(currentYear, time.Month(m), 1, 0, 0, 0, 0, loc)
		revenue, err := rc.getRevenue(start, start.AddDate(0, 1, 0))
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get revenue series")
			return
		}
		monthly = append(monthly, MonthlyRevenue{Month: start.Format("Jan"), Revenue: revenue})
	}

	// Top services by booking count
	var topServices []ServiceSummary
	config.DB.Model(&models.Booking{}).
		Select("service_name as name, COUNT(*) as count, COALESCE(SUM(total_amount), 0) as revenue").
		Where("status <> ?", models.StatusCancelled).
		Group("service_name").
		Order("count DESC").
		Limit(5).
		Scan(&topServices)

	// Quick stats
	var totalBookings, completed, cancelled int64
	config.DB.Model(&models.Booking{}).Count(&totalBookings)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCompleted).Count(&completed)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCancelled).Count(&cancelled)

	var avgValue float64
	config.DB.Model(&models.Booking{}).
		Where("status <> ?", models.StatusCancelled).
		Select("COALESCE(AVG(total_amount), 0)").Scan(&avgValue)

	stats := QuickStatistics{
		TotalBookings:   totalBookings,
		AvgBookingValue: avgValue,
	}
	if totalBookings > 0 {
		stats.CompletedRate = float64(completed) / float64(totalBookings) * 100
		stats.CancelledRate = float64(cancelled) / float64(totalBookings) * 100
	}

	c.JSON(http.StatusOK, AnalyticsSummary{
		CurrentMonthRevenue: currentMonthRevenue,
		MonthGrowth:         monthGrowth,
		CurrentYearRevenue:  currentYearRevenue,
		MonthlyRevenue:      monthly,
		TopServices:         topServices,
		QuickStats:          stats,
	})
}

// ExportBookingsCSV streams the filtered bookings as a CSV file
func (rc *ReportController) ExportBookingsCSV(c *gin.Context) {
	query := config.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(models.BookingStatus(status)) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("appointment_date ASC, appointment_time ASC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"id", "client", "email", "phone", "service", "date", "time", "status", "total", "payment"})
	for _, b := range bookings {
		w.Write([]string{
			b.ID.String(),
			b.ClientName,
			b.ClientEmail,
			b.ClientPhone,
			b.ServiceName,
			b.AppointmentDate.Format(utils.DateLayout),
			b.AppointmentTime,
			string(b.Status),
			fmt.Sprintf("%.2f", b.TotalAmount),
			string(b.PaymentStatus),
		})
	}
	w.Flush()
}

func (rc *ReportController) getRevenue(from, to time.Time) (float64, error) {
	var revenue float64
	err := config.DB.Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ? AND status <> ?", from, to, models.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue).Error
	return revenue, err
}
