package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeHeaders(t *testing.T) {
	headers := dedupeHeaders([]interface{}{"Name", "Name", " STATION CODE ", "name"})
	assert.Equal(t, []string{"name", "name_2", "station code", "name_3"}, headers)
}

func TestRowRecord(t *testing.T) {
	headers := dedupeHeaders([]interface{}{"Name", "Name", "Footfall"})

	t.Run("DuplicateColumnsStayAddressable", func(t *testing.T) {
		rec, empty := rowRecord(headers, []interface{}{"first", "second", float64(1200)})
		require.False(t, empty)
		assert.Equal(t, "first", rec["name"])
		assert.Equal(t, "second", rec["name_2"])
		assert.Equal(t, "1200", rec["footfall"])
	})

	t.Run("ShortRowPadsWithEmpty", func(t *testing.T) {
		rec, empty := rowRecord(headers, []interface{}{"only"})
		require.False(t, empty)
		assert.Equal(t, "", rec["name_2"])
		assert.Equal(t, "", rec["footfall"])
	})

	t.Run("BlankRowIsFlagged", func(t *testing.T) {
		_, empty := rowRecord(headers, []interface{}{"", "  ", nil})
		assert.True(t, empty)
	})
}

func TestBuildRecords(t *testing.T) {
	headers := dedupeHeaders([]interface{}{"Name", "Footfall"})
	records := buildRecords(headers, [][]interface{}{
		{"NDLS", "1200"},
		{"", ""},
		{"BCT", "900"},
		{"", ""},
		{nil, "  "},
	})

	// Interior blank rows survive for the mappers to count; the trailing
	// blank boundary does not.
	require.Len(t, records, 3)
	assert.Equal(t, "NDLS", records[0]["name"])
	assert.Equal(t, "", records[1]["name"])
	assert.Equal(t, "BCT", records[2]["name"])
}

func TestConfigAllows(t *testing.T) {
	cfg := Config{Tabs: []string{TabStations, TabUnits, TabEarnings}}
	assert.True(t, cfg.allows("Stations"))
	assert.False(t, cfg.allows("Budget"))
	assert.False(t, cfg.allows("stations"))
}
