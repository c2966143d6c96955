package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rail_assets/internal/config"
	"rail_assets/internal/models"
)

func TestUpdateEarningRecomputesDedupKey(t *testing.T) {
	setupTestDB(t)
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	seed := models.Earning{UnitNo: "U-101", DateOfReceipt: &d, ReceiptNo: "MR-77", Amount: 1500}
	require.NoError(t, config.DB.Create(&seed).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/earnings/:id", UpdateEarning)

	body := `{"unit_no":"U-101","date_of_receipt":"2024-03-15T00:00:00Z","receipt_no":"MR-78","amount":1600}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/earnings/%d", seed.EarningID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// A re-sync of the edited receipt must merge onto this row, so the
	// stored key has to follow the edited values.
	var got models.Earning
	require.NoError(t, config.DB.First(&got, "earning_id = ?", seed.EarningID).Error)
	assert.Equal(t, "U-101|2024-03-15|MR-78|1600.00", got.DedupKey)
}
