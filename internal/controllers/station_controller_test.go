package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rail_assets/internal/config"
	"rail_assets/internal/models"
)

func TestDeleteStationCascade(t *testing.T) {
	setupTestDB(t)
	ndls, bct := "NDLS", "BCT"
	require.NoError(t, config.DB.Create(&models.Station{StationCode: ndls, StationName: "New Delhi"}).Error)
	require.NoError(t, config.DB.Create(&models.Station{StationCode: bct, StationName: "Mumbai Central"}).Error)
	require.NoError(t, config.DB.Create(&models.Unit{UnitNo: "U-1", StationCode: &ndls}).Error)
	require.NoError(t, config.DB.Create(&models.Unit{UnitNo: "U-2", StationCode: &bct}).Error)
	// U-1's earning never resolved a station code of its own; it still
	// belongs to NDLS through the unit and must go with it.
	require.NoError(t, config.DB.Create(&models.Earning{UnitNo: "U-1", Amount: 500}).Error)
	require.NoError(t, config.DB.Create(&models.Earning{UnitNo: "U-2", StationCode: &bct, Amount: 300}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/stations/:station_code", DeleteStation)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/stations/NDLS", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var units, earnings int64
	require.NoError(t, config.DB.Model(&models.Unit{}).Count(&units).Error)
	require.NoError(t, config.DB.Model(&models.Earning{}).Count(&earnings).Error)
	assert.EqualValues(t, 1, units)
	assert.EqualValues(t, 1, earnings)

	var left models.Earning
	require.NoError(t, config.DB.First(&left).Error)
	assert.Equal(t, "U-2", left.UnitNo)
}
