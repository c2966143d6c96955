package scheduler

import (
	"context"

	cron "github.com/robfig/cron/v3"
	logrus "github.com/sirupsen/logrus"

	"rail_assets/internal/config"
	"rail_assets/internal/sheets"
	"rail_assets/internal/syncer"
)

// Start schedules the daily full sheet sync, 2 AM by default (override with
// SYNC_CRON). The job runs the orchestrator in-process; nothing here
// serializes against a manual sync triggered over HTTP at the same moment.
func Start() *cron.Cron {
	spec := config.GetEnv("SYNC_CRON", "0 2 * * *")
	c := cron.New()
	if _, err := c.AddFunc(spec, runSyncAll); err != nil {
		logrus.Errorf("invalid SYNC_CRON %q: %v", spec, err)
		return c
	}
	c.Start()
	logrus.Infof("scheduled daily sheet sync (%s)", spec)
	return c
}

func runSyncAll() {
	cfg := config.LoadSource()
	if cfg.SheetID == "" {
		logrus.Warn("periodic sync skipped: no SHEET_ID configured")
		return
	}

	ctx := context.Background()
	client, err := sheets.NewClient(ctx, cfg)
	if err != nil {
		logrus.Errorf("periodic sync: %v", err)
		return
	}

	sum, err := syncer.New(config.DB, client).SyncAll(ctx)
	if err != nil {
		logrus.Errorf("periodic sync failed: %v", err)
		return
	}
	logrus.Infof("periodic sync complete: %d stations, %d units, %d earnings updated",
		sum.Stations.Updated, sum.Units.Updated, sum.Earnings.Updated)
}
