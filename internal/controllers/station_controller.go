package controllers

import (
	"net/http"

	"rail_assets/internal/config"
	"rail_assets/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CreateStation registers a station manually, outside the sheet sync.
func CreateStation(c *gin.Context) {
	var input models.Station
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.StationCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station_code is required"})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "Station already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create station: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"station": input})
}

// GetStation retrieves a station by its code
func GetStation(c *gin.Context) {
	code := c.Param("station_code")
	var station models.Station
	if err := config.DB.First(&station, "station_code = ?", code).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"station": station})
}

// ListStations lists all stations
func ListStations(c *gin.Context) {
	var stations []models.Station
	if err := config.DB.Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch stations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stations})
}

// UpdateStation replaces every mutable field of an existing station.
func UpdateStation(c *gin.Context) {
	code := c.Param("station_code")
	var station models.Station
	if err := config.DB.First(&station, "station_code = ?", code).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	var input models.Station
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.StationCode = code

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update station"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"station": input})
}

// DeleteStation removes a station together with its units and earnings.
// The cascade runs here rather than through database foreign keys, which
// are deliberately absent so the sync can tolerate dangling references.
func DeleteStation(c *gin.Context) {
	code := c.Param("station_code")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var station models.Station
		if err := tx.First(&station, "station_code = ?", code).Error; err != nil {
			return err
		}
		// Earnings may carry the unit's number but no station code of
		// their own, so match on either side before the units go.
		unitNos := tx.Model(&models.Unit{}).Select("unit_no").Where("station_code = ?", code)
		if err := tx.Where("station_code = ? OR unit_no IN (?)", code, unitNos).Delete(&models.Earning{}).Error; err != nil {
			return err
		}
		if err := tx.Where("station_code = ?", code).Delete(&models.Unit{}).Error; err != nil {
			return err
		}
		return tx.Delete(&station).Error
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete station"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Station deleted"})
}
