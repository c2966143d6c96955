package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rail_assets/internal/config"
	"rail_assets/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Station{}, &models.Unit{}, &models.Earning{}))
	config.DB = db
}

func get(t *testing.T, handler gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func datePtr(t time.Time) *time.Time { return &t }

func TestDeadUnits(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, config.DB.Create(&models.Unit{UnitNo: "U-1", LicenseeName: "A"}).Error)
	require.NoError(t, config.DB.Create(&models.Unit{UnitNo: "U-2", LicenseeName: "B"}).Error)
	require.NoError(t, config.DB.Create(&models.Earning{
		UnitNo: "U-1", Amount: 100, DedupKey: "U-1|||100.00",
	}).Error)

	w := get(t, DeadUnits, "/reports/dead-units")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []deadUnitRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "U-2", body.Data[0].UnitNo)
}

func TestPaymentStatusSummary(t *testing.T) {
	setupTestDB(t)
	now := time.Now()
	units := []models.Unit{
		{UnitNo: "paid", LicensePaidUpto: datePtr(now.AddDate(0, 0, 45))},
		{UnitNo: "upcoming", LicensePaidUpto: datePtr(now.AddDate(0, 0, 10))},
		{UnitNo: "overdue", LicensePaidUpto: datePtr(now.AddDate(0, 0, -10))},
		{UnitNo: "unpaid"},
	}
	for i := range units {
		require.NoError(t, config.DB.Create(&units[i]).Error)
	}

	w := get(t, PaymentStatusSummary, "/reports/payment-status-summary")
	require.Equal(t, http.StatusOK, w.Code)

	var counts map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.EqualValues(t, 1, counts["paid"])
	assert.EqualValues(t, 1, counts["upcoming"])
	assert.EqualValues(t, 1, counts["overdue"])
	assert.EqualValues(t, 1, counts["unpaid"])
}

func TestTopUnitsLimitValidation(t *testing.T) {
	setupTestDB(t)
	w := get(t, TopUnits, "/reports/top-units")
	assert.Equal(t, http.StatusOK, w.Code)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reports/top-units", TopUnits)
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/top-units?limit=0", nil)
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}
