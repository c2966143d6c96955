package syncer

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rail_assets/internal/models"
	"rail_assets/internal/sheets"
)

// fakeSource serves canned records per tab and records the fetch order.
type fakeSource struct {
	tabs    map[string][]sheets.Record
	fail    map[string]error
	fetched []string
}

func (f *fakeSource) Fetch(_ context.Context, tab string) ([]sheets.Record, error) {
	f.fetched = append(f.fetched, tab)
	if err := f.fail[tab]; err != nil {
		return nil, err
	}
	return f.tabs[tab], nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Station{}, &models.Unit{}, &models.Earning{}))
	return db
}

func stationRec(code, name string) sheets.Record {
	return sheets.Record{"station code": code, "station name": name}
}

func TestSyncStations(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{tabs: map[string][]sheets.Record{
		sheets.TabStations: {
			stationRec("NDLS", "New Delhi"),
			stationRec("BCT", "Mumbai Central"),
			{"station name": "No Code Here"},
		},
	}}
	s := New(db, src)
	ctx := context.Background()

	res, err := s.SyncStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Updated: 2, Skipped: 1}, res)

	var count int64
	require.NoError(t, db.Model(&models.Station{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSyncStationsIdempotent(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{tabs: map[string][]sheets.Record{
		sheets.TabStations: {
			{"station code": "NDLS", "station name": "New Delhi", "footfall": "100"},
		},
	}}
	s := New(db, src)
	ctx := context.Background()

	first, err := s.SyncStations(ctx)
	require.NoError(t, err)
	second, err := s.SyncStations(ctx)
	require.NoError(t, err)

	// A repeat sync re-merges every row; it is a full overwrite, not a
	// no-op skip.
	assert.Equal(t, first, second)
	assert.Equal(t, 1, second.Updated)

	var stations []models.Station
	require.NoError(t, db.Find(&stations).Error)
	require.Len(t, stations, 1)
	assert.Equal(t, 100, stations[0].Footfall)
}

func TestSyncStationsOverwritesChangedFields(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{tabs: map[string][]sheets.Record{
		sheets.TabStations: {
			{"station code": "NDLS", "station name": "New Delhi", "zone": "NR", "footfall": "100"},
		},
	}}
	s := New(db, src)
	ctx := context.Background()

	_, err := s.SyncStations(ctx)
	require.NoError(t, err)

	// Zone disappears from the source; the merge must clear it, not keep
	// the stale value.
	src.tabs[sheets.TabStations] = []sheets.Record{
		{"station code": "NDLS", "station name": "New Delhi", "footfall": "250"},
	}
	_, err = s.SyncStations(ctx)
	require.NoError(t, err)

	var st models.Station
	require.NoError(t, db.First(&st, "station_code = ?", "NDLS").Error)
	assert.Equal(t, 250, st.Footfall)
	assert.Equal(t, "", st.Zone)
}

func TestSyncUnitsCounts(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{tabs: map[string][]sheets.Record{
		sheets.TabUnits: {
			{"unit no.": "U-1", "station": "NDLS"},
			{"unit no.": "U-2"},
			{"station": "BCT"}, // no unit no
		},
	}}
	s := New(db, src)

	res, err := s.SyncUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 3, res.Updated+res.Skipped, "every fetched row is either merged or counted as skipped")
}

func TestSyncEarningsDedup(t *testing.T) {
	db := testDB(t)
	row := sheets.Record{
		"unit no.":                 "U-1",
		"date of receipt":          "2024-03-15",
		"amount":                   "1500",
		"mr no/uts no/ challan no": "MR-1",
	}
	src := &fakeSource{tabs: map[string][]sheets.Record{
		sheets.TabEarnings: {row},
	}}
	s := New(db, src)
	ctx := context.Background()

	_, err := s.SyncEarnings(ctx)
	require.NoError(t, err)
	_, err = s.SyncEarnings(ctx)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Earning{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "re-syncing an unchanged receipt must not duplicate it")
}

func TestSyncAllOrderAndIntegrity(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{tabs: map[string][]sheets.Record{
		sheets.TabStations: {stationRec("NDLS", "New Delhi")},
		sheets.TabUnits: {
			{"unit no.": "U-1", "station": "NDLS Platform 1"},
			{"unit no.": "U-2", "station": "GHOST station"},
		},
		sheets.TabEarnings: {
			{"unit no.": "U-1", "amount": "100"},
			{"unit no.": "U-404", "amount": "50"},
		},
	}}
	s := New(db, src)

	sum, err := s.SyncAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{sheets.TabStations, sheets.TabUnits, sheets.TabEarnings}, src.fetched,
		"parents must sync before their dependents")

	// U-1's station reference resolves to a committed station row.
	var unit models.Unit
	require.NoError(t, db.First(&unit, "unit_no = ?", "U-1").Error)
	require.NotNil(t, unit.StationCode)
	var station models.Station
	require.NoError(t, db.First(&station, "station_code = ?", *unit.StationCode).Error)

	assert.EqualValues(t, 1, sum.DanglingUnits, "U-2 points at a station the sheet never defined")
	assert.EqualValues(t, 1, sum.DanglingEarnings, "U-404 has no unit row")
}

func TestSyncAllFailFast(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{
		tabs: map[string][]sheets.Record{
			sheets.TabStations: {stationRec("NDLS", "New Delhi")},
		},
		fail: map[string]error{
			sheets.TabUnits: &sheets.FetchError{Tab: sheets.TabUnits, Err: errors.New("boom")},
		},
	}
	s := New(db, src)

	sum, err := s.SyncAll(context.Background())
	require.Error(t, err)

	var fe *sheets.FetchError
	assert.True(t, errors.As(err, &fe))

	// The stations stage is durable; the earnings stage never ran.
	assert.Equal(t, 1, sum.Stations.Updated)
	assert.NotContains(t, src.fetched, sheets.TabEarnings)
	var count int64
	require.NoError(t, db.Model(&models.Station{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSyncTabUnknown(t *testing.T) {
	s := New(testDB(t), &fakeSource{})
	_, err := s.SyncTab(context.Background(), "Budget")
	assert.ErrorIs(t, err, sheets.ErrUnknownTab)
}
