package controllers

import (
	"errors"
	"net/http"

	"rail_assets/internal/config"
	"rail_assets/internal/sheets"
	"rail_assets/internal/syncer"

	"github.com/gin-gonic/gin"
)

// newSyncer wires a sheet client and the database into a Syncer for this
// request. The sheet_id query param overrides the configured default so the
// dashboard can point a manual run at another spreadsheet.
func newSyncer(c *gin.Context) (*syncer.Syncer, error) {
	cfg := config.LoadSource()
	if id := c.Query("sheet_id"); id != "" {
		cfg.SheetID = id
	}
	if cfg.SheetID == "" {
		return nil, errors.New("no sheet id configured; set SHEET_ID or pass ?sheet_id=")
	}

	client, err := sheets.NewClient(c.Request.Context(), cfg)
	if err != nil {
		return nil, err
	}
	return syncer.New(config.DB, client), nil
}

// SyncAll runs the full sheet sync: Stations, then Units, then Earnings.
// A stage failure stops the run; the response summary still reports the
// stages that committed, so "nothing synced" and "partially synced" stay
// distinguishable.
func SyncAll(c *gin.Context) {
	s, err := newSyncer(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := s.SyncAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  err.Error(),
			"synced": summary,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detail":  "All data synced successfully.",
		"summary": summary,
	})
}

// SyncStations syncs only the Stations tab
func SyncStations(c *gin.Context) { syncOne(c, sheets.TabStations) }

// SyncUnits syncs only the Units tab
func SyncUnits(c *gin.Context) { syncOne(c, sheets.TabUnits) }

// SyncEarnings syncs only the Earnings tab
func SyncEarnings(c *gin.Context) { syncOne(c, sheets.TabEarnings) }

func syncOne(c *gin.Context, tab string) {
	s, err := newSyncer(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.SyncTab(c.Request.Context(), tab)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, sheets.ErrUnknownTab) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detail":  tab + " synced successfully",
		"updated": res.Updated,
		"skipped": res.Skipped,
	})
}
