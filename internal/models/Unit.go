// internal/models/unit.go
package models

import (
	"time"
)

// Unit is a leasable commercial space (kiosk, stall, ...) tied to exactly one
// station. StationCode is nil when no code could be extracted from the sheet's
// free-text station cell; the unit is still kept, orphaned.
type Unit struct {
	UnitNo string `gorm:"primaryKey" json:"unit_no"`

	TypeOfUnit      string  `json:"type_of_unit"`
	StationCode     *string `gorm:"index" json:"station_code"`
	StationCategory string  `json:"station_category"`
	OldCategory     string  `json:"old_category"`
	PfNo            string  `json:"pf_no"`
	PeggedLocation  string  `json:"pegged_location"`
	ReservationCat  string  `json:"reservation_cat"`
	TypeOfAllotment string  `json:"type_of_allotment"`
	LicenseeName    string  `json:"licensee_name"`

	LicenseFee   float64    `json:"license_fee"`
	ContractFrom *time.Time `json:"contract_from"`
	ContractTo   *time.Time `json:"contract_to"`

	// nil means no payment was ever recorded, which is distinct from a past
	// date (paid once, now overdue).
	LicensePaidUpto *time.Time `json:"license_paid_upto"`

	UnitStatus string `json:"unit_status"`
}
