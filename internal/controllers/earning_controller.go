package controllers

import (
	"net/http"

	"rail_assets/internal/config"
	"rail_assets/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateEarning records a payment receipt manually
func CreateEarning(c *gin.Context) {
	var input models.Earning
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UnitNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_no is required"})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create earning: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"earning": input})
}

// GetEarning retrieves an earning by its id
func GetEarning(c *gin.Context) {
	id := c.Param("id")
	var earning models.Earning
	if err := config.DB.First(&earning, "earning_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Earning not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"earning": earning})
}

// ListEarnings lists earnings, optionally filtered by unit or station
func ListEarnings(c *gin.Context) {
	q := config.DB
	if unitNo := c.Query("unit_no"); unitNo != "" {
		q = q.Where("unit_no = ?", unitNo)
	}
	if station := c.Query("station_code"); station != "" {
		q = q.Where("station_code = ?", station)
	}

	var earnings []models.Earning
	if err := q.Find(&earnings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch earnings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": earnings})
}

// UpdateEarning replaces every mutable field of an existing earning.
func UpdateEarning(c *gin.Context) {
	id := c.Param("id")
	var earning models.Earning
	if err := config.DB.First(&earning, "earning_id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Earning not found"})
		return
	}

	var input models.Earning
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.EarningID = earning.EarningID
	// The natural key follows the edited values, otherwise a later sync
	// of the same receipt would insert a duplicate instead of merging.
	input.DedupKey = input.ComputeDedupKey()

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update earning"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"earning": input})
}

// DeleteEarning removes an earning by id
func DeleteEarning(c *gin.Context) {
	id := c.Param("id")
	res := config.DB.Delete(&models.Earning{}, "earning_id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete earning"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Earning not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Earning deleted"})
}
