package controllers

import (
	"net/http"

	"rail_assets/internal/config"
	"rail_assets/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CreateUnit registers a leasable unit manually
func CreateUnit(c *gin.Context) {
	var input models.Unit
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UnitNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_no is required"})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "Unit already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create unit: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"unit": input})
}

// GetUnit retrieves a unit by its number
func GetUnit(c *gin.Context) {
	unitNo := c.Param("unit_no")
	var unit models.Unit
	if err := config.DB.First(&unit, "unit_no = ?", unitNo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// ListUnits lists all units, optionally filtered by station
func ListUnits(c *gin.Context) {
	q := config.DB
	if station := c.Query("station_code"); station != "" {
		q = q.Where("station_code = ?", station)
	}

	var units []models.Unit
	if err := q.Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch units"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": units})
}

// UpdateUnit replaces every mutable field of an existing unit.
func UpdateUnit(c *gin.Context) {
	unitNo := c.Param("unit_no")
	var unit models.Unit
	if err := config.DB.First(&unit, "unit_no = ?", unitNo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}

	var input models.Unit
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UnitNo = unitNo

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update unit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": input})
}

// DeleteUnit removes a unit and its earnings.
func DeleteUnit(c *gin.Context) {
	unitNo := c.Param("unit_no")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := tx.First(&unit, "unit_no = ?", unitNo).Error; err != nil {
			return err
		}
		if err := tx.Where("unit_no = ?", unitNo).Delete(&models.Earning{}).Error; err != nil {
			return err
		}
		return tx.Delete(&unit).Error
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete unit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted"})
}
