// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/PRANAYKHOJARE/luxe-salon-backend/config"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/models"
	"github.com/PRANAYKHOJARE/luxe-salon-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Duration    int     `json:"duration" binding:"required,min=1"` // in minutes
	Category    string  `json:"category" binding:"omitempty,oneof=hair nails skincare spa makeup other"`
	IsPopular   bool    `json:"isPopular"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Category    *string  `json:"category"`
	IsAvailable *bool    `json:"isAvailable"`
	IsPopular   *bool    `json:"isPopular"`
}

// CreateService creates a new catalog service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := models.ServiceCategory(input.Category)
	if input.Category == "" {
		category = models.CategoryOther
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    category,
		IsAvailable: true,
		IsPopular:   input.IsPopular,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "A service with this name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves catalog services, optionally filtered
func GetServices(c *gin.Context) {
	query := config.DB.Model(&models.Service{})

	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}
	if c.Query("popular") == "true" {
		query = query.Where("is_popular = ?", true)
	}
	if category := c.Query("category"); category != "" {
		if !models.ValidCategory(models.ServiceCategory(category)) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown category")
			return
		}
		query = query.Where("category = ?", category)
	}

	var services []models.Service
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceID := c.Param("id")
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service. Bookings snapshot the service at
// creation time, so edits here never alter historical bookings.
func UpdateService(c *gin.Context) {
	serviceID := c.Param("id")
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing service
	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must be non-negative")
			return
		}
		service.Price = *input.Price
	}
	if input.Duration != nil {
		if *input.Duration < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "Duration must be at least 1 minute")
			return
		}
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		if !models.ValidCategory(models.ServiceCategory(*input.Category)) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown category")
			return
		}
		service.Category = models.ServiceCategory(*input.Category)
	}
	if input.IsAvailable != nil {
		service.IsAvailable = *input.IsAvailable
	}
	if input.IsPopular != nil {
		service.IsPopular = *input.IsPopular
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service. Existing bookings keep their snapshot.
func DeleteService(c *gin.Context) {
	serviceID := c.Param("id")
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
