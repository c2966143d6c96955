package controllers

import (
	"net/http"

	"rail_assets/internal/config"
	"rail_assets/internal/sheets"

	"github.com/gin-gonic/gin"
)

// HealthSheet probes every configured tab of the source sheet and reports
// the row count or the failure per tab, without writing anything.
func HealthSheet(c *gin.Context) {
	cfg := config.LoadSource()
	if id := c.Query("sheet_id"); id != "" {
		cfg.SheetID = id
	}

	client, err := sheets.NewClient(c.Request.Context(), cfg)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	tabs := gin.H{}
	healthy := true
	for _, tab := range cfg.Tabs {
		records, err := client.Fetch(c.Request.Context(), tab)
		if err != nil {
			tabs[tab] = gin.H{"ok": false, "error": err.Error()}
			healthy = false
			continue
		}
		tabs[tab] = gin.H{"ok": true, "records": len(records)}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"sheet_id": cfg.SheetID, "tabs": tabs})
}
