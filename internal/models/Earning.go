// internal/models/earning.go
package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Earning is one receipt of payment against a unit.
//
// EarningID is a local autoincrement surrogate and never comes from the
// sheet. Sync upserts merge on DedupKey, a natural composite of
// unit_no, date_of_receipt, receipt_no and amount, so re-syncing unchanged
// source data converges instead of piling up duplicate rows.
type Earning struct {
	EarningID uint   `gorm:"primaryKey;autoIncrement" json:"earning_id"`
	DedupKey  string `gorm:"uniqueIndex;not null" json:"-"`

	DateOfReceipt *time.Time `json:"date_of_receipt"`
	UnitNo        string     `gorm:"index;not null" json:"unit_no"`
	StationCode   *string    `gorm:"index" json:"station_code"`
	PfNo          string     `json:"pf_no"`
	LicenseeName  string     `json:"licensee_name"`

	PaymentHead    string     `json:"payment_head"`
	PaymentSubHead string     `json:"payment_sub_head"`
	PeriodFrom     *time.Time `json:"period_from"`
	PeriodTo       *time.Time `json:"period_to"`

	Amount float64 `json:"amount"`
	Gst    float64 `json:"gst"`

	ReceiptType string     `json:"receipt_type"`
	ReceiptNo   string     `json:"receipt_no"`
	MrDate      *time.Time `json:"mr_date"`

	// "unassessed case" flag from the sheet's free-text U/A CASE column.
	UACase bool `json:"ua_case"`

	Remarks string `json:"remarks"`
}

// ComputeDedupKey derives the natural merge identity of a receipt. Absent
// dates serialize as empty segments so the key stays stable across syncs.
func (e *Earning) ComputeDedupKey() string {
	date := ""
	if e.DateOfReceipt != nil {
		date = e.DateOfReceipt.Format("2006-01-02")
	}
	return fmt.Sprintf("%s|%s|%s|%.2f", e.UnitNo, date, e.ReceiptNo, e.Amount)
}

// BeforeSave fills the dedup key for rows created outside the sync path.
func (e *Earning) BeforeSave(tx *gorm.DB) error {
	if e.DedupKey == "" {
		e.DedupKey = e.ComputeDedupKey()
	}
	return nil
}
