package controllers

import (
	"net/http"
	"strconv"
	"time"

	"rail_assets/internal/config"
	"rail_assets/internal/models"

	"github.com/gin-gonic/gin"
)

// Grouped aggregates for the dashboard. Each endpoint is one query over the
// synced tables; rendering and export belong to the front-end.

type labelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type labelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// StationUnitCount counts leasable units per station
func StationUnitCount(c *gin.Context) {
	var rows []labelCount
	err := config.DB.Model(&models.Unit{}).
		Select("station_code AS label, COUNT(*) AS count").
		Where("station_code IS NOT NULL").
		Group("station_code").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// StationTotalEarnings sums receipts per station
func StationTotalEarnings(c *gin.Context) {
	var rows []labelValue
	err := config.DB.Model(&models.Earning{}).
		Select("station_code AS label, SUM(amount) AS value").
		Where("station_code IS NOT NULL").
		Group("station_code").
		Order("value DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// EarningsByPaymentHead sums receipts per payment head
func EarningsByPaymentHead(c *gin.Context) {
	var rows []labelValue
	err := config.DB.Model(&models.Earning{}).
		Select("payment_head AS label, SUM(amount) AS value").
		Group("payment_head").
		Order("value DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// EarningsByZone sums receipts per railway zone
func EarningsByZone(c *gin.Context) {
	var rows []labelValue
	err := config.DB.Model(&models.Earning{}).
		Select("stations.zone AS label, SUM(earnings.amount) AS value").
		Joins("JOIN stations ON stations.station_code = earnings.station_code").
		Group("stations.zone").
		Order("value DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// EarningsByDivision sums receipts per division
func EarningsByDivision(c *gin.Context) {
	var rows []labelValue
	err := config.DB.Model(&models.Earning{}).
		Select("stations.division AS label, SUM(earnings.amount) AS value").
		Joins("JOIN stations ON stations.station_code = earnings.station_code").
		Group("stations.division").
		Order("value DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// RevenueTrend sums receipts per month over the last N months (default 12)
func RevenueTrend(c *gin.Context) {
	months, err := strconv.Atoi(c.DefaultQuery("months", "12"))
	if err != nil || months < 1 || months > 120 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "months must be between 1 and 120"})
		return
	}
	since := time.Now().AddDate(0, -months, 0)

	var rows []labelValue
	err = config.DB.Model(&models.Earning{}).
		Select("to_char(date_of_receipt, 'YYYY-MM') AS label, SUM(amount) AS value").
		Where("date_of_receipt >= ?", since).
		Group("label").
		Order("label").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// TopUnits ranks units by total receipts
func TopUnits(c *gin.Context) { rankUnits(c, "DESC") }

// BottomUnits ranks units by total receipts, lowest first
func BottomUnits(c *gin.Context) { rankUnits(c, "ASC") }

func rankUnits(c *gin.Context, direction string) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	var rows []labelValue
	err = config.DB.Model(&models.Earning{}).
		Select("unit_no AS label, SUM(amount) AS value").
		Group("unit_no").
		Order("value " + direction).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

type deadUnitRow struct {
	UnitNo       string  `json:"unit_no"`
	StationCode  *string `json:"station_code"`
	LicenseeName string  `json:"licensee_name"`
}

// DeadUnits lists units with no earnings recorded against them at all
func DeadUnits(c *gin.Context) {
	var rows []deadUnitRow
	err := config.DB.Model(&models.Unit{}).
		Select("units.unit_no, units.station_code, units.licensee_name").
		Joins("LEFT JOIN earnings ON earnings.unit_no = units.unit_no").
		Where("earnings.earning_id IS NULL").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// ChronicDefaulters lists units whose most recent payment (or, absent any,
// whose contract start) is more than 60 days in the past.
func ChronicDefaulters(c *gin.Context) {
	cutoff := time.Now().AddDate(0, 0, -60)

	var rows []deadUnitRow
	err := config.DB.Model(&models.Unit{}).
		Select("units.unit_no, units.station_code, units.licensee_name").
		Where("COALESCE((SELECT MAX(e.date_of_receipt) FROM earnings e WHERE e.unit_no = units.unit_no), units.contract_from) < ?", cutoff).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// PaymentStatusSummary buckets every unit by its license payment standing:
// paid (covered for 30+ days), upcoming (runs out within 30 days), overdue
// (already past), unpaid (no payment ever recorded).
func PaymentStatusSummary(c *gin.Context) {
	today := time.Now()
	plus30 := today.AddDate(0, 0, 30)

	counts := map[string]int64{}
	type bucket struct {
		name string
		cond string
		args []interface{}
	}
	buckets := []bucket{
		{"paid", "license_paid_upto >= ?", []interface{}{plus30}},
		{"upcoming", "license_paid_upto >= ? AND license_paid_upto < ?", []interface{}{today, plus30}},
		{"overdue", "license_paid_upto < ?", []interface{}{today}},
		{"unpaid", "license_paid_upto IS NULL", nil},
	}
	for _, b := range buckets {
		var n int64
		if err := config.DB.Model(&models.Unit{}).Where(b.cond, b.args...).Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
			return
		}
		counts[b.name] = n
	}

	c.JSON(http.StatusOK, counts)
}

type stationPaymentRow struct {
	Station  string `json:"station"`
	Paid     int64  `json:"paid"`
	Upcoming int64  `json:"upcoming"`
	Overdue  int64  `json:"overdue"`
	Unpaid   int64  `json:"unpaid"`
}

// StationPaymentStatus gives the same buckets per station
func StationPaymentStatus(c *gin.Context) {
	today := time.Now()
	plus30 := today.AddDate(0, 0, 30)

	var rows []stationPaymentRow
	err := config.DB.Model(&models.Unit{}).
		Select(`station_code AS station,
			SUM(CASE WHEN license_paid_upto >= ? THEN 1 ELSE 0 END) AS paid,
			SUM(CASE WHEN license_paid_upto >= ? AND license_paid_upto < ? THEN 1 ELSE 0 END) AS upcoming,
			SUM(CASE WHEN license_paid_upto < ? THEN 1 ELSE 0 END) AS overdue,
			SUM(CASE WHEN license_paid_upto IS NULL THEN 1 ELSE 0 END) AS unpaid`,
			plus30, today, plus30, today).
		Where("station_code IS NOT NULL").
		Group("station_code").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// UnitsByZone counts units per railway zone
func UnitsByZone(c *gin.Context) {
	var rows []labelCount
	err := config.DB.Model(&models.Unit{}).
		Select("stations.zone AS label, COUNT(*) AS count").
		Joins("JOIN stations ON stations.station_code = units.station_code").
		Group("stations.zone").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// TopStationsByFootfall lists the busiest stations
func TopStationsByFootfall(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	var stations []models.Station
	if err := config.DB.Order("footfall DESC").Limit(limit).Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stations})
}

// ParkingAvailability counts stations with and without parking per zone
func ParkingAvailability(c *gin.Context) {
	type parkingRow struct {
		Zone        string `json:"zone"`
		WithParking int64  `json:"with_parking"`
		Without     int64  `json:"without_parking"`
	}
	var rows []parkingRow
	err := config.DB.Model(&models.Station{}).
		Select(`zone,
			SUM(CASE WHEN parking THEN 1 ELSE 0 END) AS with_parking,
			SUM(CASE WHEN parking THEN 0 ELSE 1 END) AS without`).
		Group("zone").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
