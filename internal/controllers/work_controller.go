package controllers

import (
	"net/http"

	"rail_assets/internal/config"
	"rail_assets/internal/models"

	"github.com/gin-gonic/gin"
)

// workEntryInput carries a sanctioned work plus the station codes it spans.
type workEntryInput struct {
	models.WorkEntry
	StationCodes []string `json:"station_codes"`
}

// CreateWorkEntry registers a sanctioned work against one or more stations.
// Every referenced station must already exist; works are entered by hand,
// not synced, so strict validation is cheap here.
func CreateWorkEntry(c *gin.Context) {
	var input workEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var stations []models.Station
	if err := config.DB.Where("station_code IN ?", input.StationCodes).Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not look up stations"})
		return
	}
	if len(stations) != len(input.StationCodes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station codes provided"})
		return
	}

	work := input.WorkEntry
	work.Stations = stations
	if err := config.DB.Create(&work).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create work entry: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"work": work})
}

// ListWorkEntries lists all sanctioned works with their stations
func ListWorkEntries(c *gin.Context) {
	var works []models.WorkEntry
	if err := config.DB.Preload("Stations").Find(&works).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch work entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": works})
}

// GetWorkEntry retrieves one sanctioned work by id
func GetWorkEntry(c *gin.Context) {
	id := c.Param("id")
	var work models.WorkEntry
	if err := config.DB.Preload("Stations").First(&work, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"work": work})
}

// DeleteWorkEntry removes a sanctioned work by id
func DeleteWorkEntry(c *gin.Context) {
	id := c.Param("id")
	var work models.WorkEntry
	if err := config.DB.First(&work, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work entry not found"})
		return
	}
	// Select clears the workentry_stations join rows with the entry.
	if err := config.DB.Select("Stations").Delete(&work).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete work entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work entry deleted"})
}
