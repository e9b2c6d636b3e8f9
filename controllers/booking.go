// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/services"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

// BookingController handles the booking lifecycle endpoints
type BookingController struct {
	Bookings *services.BookingService
}

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientEmail string `json:"clientEmail" binding:"required"`
	ClientPhone string `json:"clientPhone" binding:"required"`
	ServiceID   string `json:"serviceId" binding:"required"`
	Date        string `json:"appointmentDate" binding:"required"`
	Time        string `json:"appointmentTime" binding:"required"`
	Notes       string `json:"notes"`
}

// UpdateStatusInput defines the expected JSON structure for a status change
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking books a slot for a client
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Bookings.Create(c.Request.Context(), services.CreateBookingInput{
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		ServiceID:   input.ServiceID,
		Date:        input.Date,
		Time:        input.Time,
		Notes:       input.Notes,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBooking retrieves a specific booking by ID
func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, err := bc.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookings lists bookings filtered by status and/or date, paginated
func (bc *BookingController) GetBookings(c *gin.Context) {
	filter := services.BookingFilter{}

	if status := c.Query("status"); status != "" {
		s := models.BookingStatus(status)
		filter.Status = &s
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation(utils.DateLayout, dateStr, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, total, err := bc.Bookings.List(c.Request.Context(), filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}

// UpdateBookingStatus moves a booking along the status lifecycle
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), models.BookingStatus(input.Status))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels a booking and notifies the client
func (bc *BookingController) CancelBooking(c *gin.Context) {
	booking, err := bc.Bookings.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	// Cancellation delivery is a caller concern, absorbed on failure
	bc.Bookings.NotifyCancelled(c.Request.Context(), booking)

	c.JSON(http.StatusOK, booking)
}

// respondBookingError maps service errors onto HTTP statuses
func respondBookingError(c *gin.Context, err error) {
	switch {
	case services.IsValidationError(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrServiceNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, services.ErrSlotTaken):
		utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
	case errors.Is(err, services.ErrServiceUnavailable):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Service is not available for booking")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
