// internal/models/station.go
package models

// Station represents a physical railway station with its commercial-asset
// attributes. Rows are keyed by the railway's short station code and are
// fully replaced on every sheet sync.
//
// Unit.StationCode and Earning.StationCode reference this key but are not
// backed by enforced foreign keys: the sheet routinely produces references
// that resolve only after a later sync pass (or never), and ingestion must
// tolerate them. Cascade deletion is handled by the delete handlers instead.
type Station struct {
	StationCode string `gorm:"primaryKey" json:"station_code"`
	StationName string `gorm:"not null" json:"station_name" binding:"required"`

	Division       string `json:"division"`
	Zone           string `json:"zone"`
	Section        string `json:"section"`
	CMI            string `json:"cmi"`
	DEN            string `json:"den"`
	SrDEN          string `json:"sr_den"`
	Categorisation string `json:"categorisation"`

	EarningsRange  string `json:"earnings_range"`
	PassengerRange string `json:"passenger_range"`
	Footfall       int    `json:"footfall"`

	// Platforms keeps the raw sheet text ("1, 2/3"); PlatformCount is the
	// largest platform number found in it.
	Platforms     string `json:"platforms"`
	PlatformCount int    `json:"platform_count"`
	PlatformType  string `json:"platform_type"`

	Parking   bool `json:"parking"`
	PayAndUse bool `json:"pay_and_use"`

	// Daily operational statistics, zero when the sheet has no figure.
	NoOfTrainsDealt int     `json:"no_of_trains_dealt"`
	TktsPerDay      int     `json:"tkts_per_day"`
	PassPerDay      int     `json:"pass_per_day"`
	EarningsPerDay  float64 `json:"earnings_per_day"`
	FootfallsPerDay int     `json:"footfalls_per_day"`
}
