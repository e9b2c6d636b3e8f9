// controllers/notification.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/config"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetNotificationLogs lists recent notification delivery attempts
func GetNotificationLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := config.DB.Model(&models.NotificationLog{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if bookingID := c.Query("bookingId"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}

	var logs []models.NotificationLog
	if err := query.Order("sent_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notification logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
