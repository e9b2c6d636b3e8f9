// controllers/availability.go
package controllers

import (
	"net/http"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/services"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityController exposes open slot lookups
type AvailabilityController struct {
	Availability *services.AvailabilityService
}

// GetAvailableSlots returns the bookable times for a service on a date
func (ac *AvailabilityController) GetAvailableSlots(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "serviceId is required")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date is required")
		return
	}
	date, err := time.ParseInLocation(utils.DateLayout, dateStr, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	slots, err := ac.Availability.AvailableSlots(c.Request.Context(), serviceID, date)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      dateStr,
		"serviceId": serviceID,
		"slots":     slots,
	})
}
