package syncer

import (
	"context"
	"errors"
	"fmt"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rail_assets/internal/models"
	"rail_assets/internal/sheets"
)

// Result is the per-tab sync outcome. Updated counts every row merged,
// including rows whose values did not change; merge is a full overwrite by
// design, not a diff.
type Result struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Summary is the combined outcome of a full sync run. The dangling counts
// are referential-integrity warnings, not failures: the sheet is allowed to
// reference stations and units it never defines.
type Summary struct {
	Stations Result `json:"stations"`
	Units    Result `json:"units"`
	Earnings Result `json:"earnings"`

	DanglingUnits    int64 `json:"dangling_units"`
	DanglingEarnings int64 `json:"dangling_earnings"`
}

// Syncer coordinates one sheet source against one database. Callers must
// serialize overlapping runs themselves; concurrent SyncAll invocations
// against the same tables are not coordinated here.
type Syncer struct {
	db  *gorm.DB
	src sheets.Source
}

func New(db *gorm.DB, src sheets.Source) *Syncer {
	return &Syncer{db: db, src: src}
}

// SyncTab dispatches one tab by name. Unknown names surface the adapter's
// allowlist error without touching the network.
func (s *Syncer) SyncTab(ctx context.Context, tab string) (Result, error) {
	switch tab {
	case sheets.TabStations:
		return s.SyncStations(ctx)
	case sheets.TabUnits:
		return s.SyncUnits(ctx)
	case sheets.TabEarnings:
		return s.SyncEarnings(ctx)
	}
	return Result{}, fmt.Errorf("%w %q", sheets.ErrUnknownTab, tab)
}

// SyncStations pulls the Stations tab and merges every mappable row,
// replacing all fields of existing rows with the same station code.
func (s *Syncer) SyncStations(ctx context.Context) (Result, error) {
	records, err := s.src.Fetch(ctx, sheets.TabStations)
	if err != nil {
		return Result{}, err
	}

	var stations []models.Station
	skipped := 0
	for _, rec := range records {
		st, err := mapStation(rec)
		if err != nil {
			skipped++
			logrus.Warnf("stations sync: %v", err)
			continue
		}
		stations = append(stations, st)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range stations {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "station_code"}},
				UpdateAll: true,
			}).Create(&stations[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("stations upsert: %w", err)
	}

	res := Result{Updated: len(stations), Skipped: skipped}
	logrus.Infof("stations sync complete: %d updated, %d skipped", res.Updated, res.Skipped)
	return res, nil
}

// SyncUnits pulls the Units tab and merges by unit number.
func (s *Syncer) SyncUnits(ctx context.Context) (Result, error) {
	records, err := s.src.Fetch(ctx, sheets.TabUnits)
	if err != nil {
		return Result{}, err
	}

	var units []models.Unit
	skipped := 0
	for _, rec := range records {
		u, err := mapUnit(rec)
		if err != nil {
			skipped++
			logrus.Warnf("units sync: %v", err)
			continue
		}
		units = append(units, u)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range units {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "unit_no"}},
				UpdateAll: true,
			}).Create(&units[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("units upsert: %w", err)
	}

	res := Result{Updated: len(units), Skipped: skipped}
	logrus.Infof("units sync complete: %d updated, %d skipped", res.Updated, res.Skipped)
	return res, nil
}

// SyncEarnings pulls the Earnings tab and merges on the derived natural
// dedup key, since the sheet never carries the surrogate earning id.
func (s *Syncer) SyncEarnings(ctx context.Context) (Result, error) {
	records, err := s.src.Fetch(ctx, sheets.TabEarnings)
	if err != nil {
		return Result{}, err
	}

	var earnings []models.Earning
	skipped := 0
	for _, rec := range records {
		e, err := mapEarning(rec)
		if err != nil {
			skipped++
			logrus.Warnf("earnings sync: %v", err)
			continue
		}
		earnings = append(earnings, e)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range earnings {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "dedup_key"}},
				UpdateAll: true,
			}).Create(&earnings[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("earnings upsert: %w", err)
	}

	res := Result{Updated: len(earnings), Skipped: skipped}
	logrus.Infof("earnings sync complete: %d updated, %d skipped", res.Updated, res.Skipped)
	return res, nil
}

// SyncAll runs the three tab syncs strictly in dependency order: units
// reference stations and earnings reference units, so parents go first to
// keep the window of dangling references as small as possible. The first
// stage failure stops the run; stages already committed stay committed, and
// the returned summary shows how far it got.
func (s *Syncer) SyncAll(ctx context.Context) (Summary, error) {
	var sum Summary
	var err error

	if sum.Stations, err = s.SyncStations(ctx); err != nil {
		return sum, fmt.Errorf("stations stage: %w", err)
	}
	if sum.Units, err = s.SyncUnits(ctx); err != nil {
		return sum, fmt.Errorf("units stage: %w", err)
	}
	if sum.Earnings, err = s.SyncEarnings(ctx); err != nil {
		return sum, fmt.Errorf("earnings stage: %w", err)
	}

	sum.DanglingUnits, sum.DanglingEarnings = s.checkReferences(ctx)
	return sum, nil
}

// checkReferences counts rows whose foreign references resolve to nothing
// after a full run. They are reported as warnings rather than rejected:
// the source data is not ours to police at ingest time.
func (s *Syncer) checkReferences(ctx context.Context) (danglingUnits, danglingEarnings int64) {
	db := s.db.WithContext(ctx)

	err := db.Model(&models.Unit{}).
		Where("station_code IS NOT NULL AND station_code NOT IN (?)",
			db.Model(&models.Station{}).Select("station_code")).
		Count(&danglingUnits).Error
	if err != nil {
		logrus.Warnf("integrity check (units): %v", err)
	}

	err = db.Model(&models.Earning{}).
		Where("unit_no NOT IN (?)", db.Model(&models.Unit{}).Select("unit_no")).
		Count(&danglingEarnings).Error
	if err != nil {
		logrus.Warnf("integrity check (earnings): %v", err)
	}

	if danglingUnits > 0 || danglingEarnings > 0 {
		logrus.Warnf("dangling references after sync: %d units, %d earnings", danglingUnits, danglingEarnings)
	}
	return danglingUnits, danglingEarnings
}

// IsSkip reports whether err is a row-level skip.
func IsSkip(err error) bool {
	var se *SkipError
	return errors.As(err, &se)
}
