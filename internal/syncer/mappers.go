// Package syncer drives the sheet-to-database synchronization: it maps raw
// sheet records onto the canonical entities and merges them into storage one
// transaction per tab, Stations before Units before Earnings.
package syncer

import (
	"regexp"
	"strings"

	"rail_assets/internal/models"
	"rail_assets/internal/normalize"
	"rail_assets/internal/sheets"
)

// SkipError marks a row that cannot become an entity (missing primary key
// material). Skips are counted, never fatal.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return "row skipped: " + e.Reason }

// Station cells often hold free text like "NDLS - New Delhi"; the leading
// run of 2-5 capitals is taken as the code. Same heuristic for units and
// earnings.
var reStationCode = regexp.MustCompile(`^[A-Z]{2,5}`)

// first returns the first non-empty value among the alias spellings a field
// has carried across sheet revisions. Keys are the adapter's normalized
// lower-case form.
func first(rec sheets.Record, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(rec[k]); v != "" {
			return v
		}
	}
	return ""
}

func extractStationCode(raw string) *string {
	if code := reStationCode.FindString(strings.TrimSpace(raw)); code != "" {
		return &code
	}
	return nil
}

// mapStation builds a Station from one raw record. Records without both a
// station code and a name are skipped; a station cannot exist without them.
func mapStation(rec sheets.Record) (models.Station, error) {
	code := first(rec, "station code", "station_code")
	name := first(rec, "station name", "station_name")
	if code == "" || name == "" {
		return models.Station{}, &SkipError{Reason: "missing station code or name"}
	}

	platforms := first(rec, "number of platforms", "platforms")

	return models.Station{
		StationCode: code,
		StationName: name,

		Division:       first(rec, "division"),
		Zone:           first(rec, "zone"),
		Section:        first(rec, "section"),
		CMI:            first(rec, "cmi"),
		DEN:            first(rec, "den"),
		SrDEN:          first(rec, "sr den", "sr_den"),
		Categorisation: first(rec, "categorisation", "categorization"),

		EarningsRange:  first(rec, "earnings range", "earnings_range"),
		PassengerRange: first(rec, "passenger range", "passenger_range"),
		Footfall:       normalize.SafeInt(first(rec, "footfall"), 0),

		Platforms:     platforms,
		PlatformCount: normalize.MaxInt(platforms, 0),
		PlatformType:  first(rec, "platform type", "platform_type"),

		Parking:   normalize.ParseBool(rec["parking"]),
		PayAndUse: normalize.ParseBool(first(rec, "pay & use", "pay and use")),

		NoOfTrainsDealt: normalize.SafeInt(first(rec, "no of trains dealt", "no. of trains dealt", "trains dealt"), 0),
		TktsPerDay:      normalize.SafeInt(first(rec, "tkts/day", "tkts per day"), 0),
		PassPerDay:      normalize.SafeInt(first(rec, "pass/day", "pass per day"), 0),
		EarningsPerDay:  normalize.SafeFloat(first(rec, "earnings/day", "earnings per day"), 0),
		FootfallsPerDay: normalize.SafeInt(first(rec, "footfalls/day", "footfalls per day"), 0),
	}, nil
}

// mapUnit builds a Unit from one raw record. Only the unit number is
// required; the station code is a lossy extraction from free text and the
// unit is kept even when it yields nothing.
func mapUnit(rec sheets.Record) (models.Unit, error) {
	unitNo := first(rec, "unit no.", "unit no", "unit_no")
	if unitNo == "" {
		return models.Unit{}, &SkipError{Reason: "missing unit no"}
	}

	return models.Unit{
		UnitNo: unitNo,

		TypeOfUnit:      first(rec, "type of unit", "type_of_unit"),
		StationCode:     extractStationCode(rec["station"]),
		StationCategory: first(rec, "station category", "station_category"),
		OldCategory:     first(rec, "old category", "old_category"),
		PfNo:            first(rec, "pf no.", "pf no", "pf_no"),
		PeggedLocation:  first(rec, "pegged location", "pegged_location"),
		ReservationCat:  first(rec, "reservation category", "reservation cat", "reservation_cat"),
		TypeOfAllotment: first(rec, "type of allotment", "type_of_allotment"),
		LicenseeName:    first(rec, "name of licensee", "licensee name", "licensee_name"),

		LicenseFee:      normalize.SafeFloat(first(rec, "license fee", "license_fee"), 0),
		ContractFrom:    normalize.ParseDate(first(rec, "contract from", "contract_from")),
		ContractTo:      normalize.ParseDate(first(rec, "contract to", "contract_to")),
		LicensePaidUpto: normalize.ParseDate(first(rec, "license paid upto", "license_paid_upto")),

		UnitStatus: first(rec, "unit status", "unit_status"),
	}, nil
}

// mapEarning builds an Earning from one raw record, deriving the natural
// dedup key the merge runs on.
func mapEarning(rec sheets.Record) (models.Earning, error) {
	unitNo := first(rec, "unit no.", "unit no", "unit_no")
	if unitNo == "" {
		return models.Earning{}, &SkipError{Reason: "missing unit no"}
	}

	dateOfReceipt := normalize.ParseDate(first(rec, "date of receipt", "date_of_receipt"))
	amount := normalize.SafeFloat(first(rec, "amount"), 0)
	receiptNo := first(rec, "mr no/uts no/ challan no", "receipt type", "reciept type")

	e := models.Earning{
		DateOfReceipt: dateOfReceipt,
		UnitNo:        unitNo,
		StationCode:   extractStationCode(rec["station"]),
		PfNo:          first(rec, "pf no.", "pf no", "pf_no"),
		LicenseeName:  first(rec, "name of licensee", "licensee name", "licensee_name"),

		PaymentHead:    first(rec, "payment head", "payment_head"),
		PaymentSubHead: first(rec, "payment sub-head", "payment sub head", "payment_sub_head"),
		PeriodFrom:     normalize.ParseDate(first(rec, "period from", "period_from")),
		PeriodTo:       normalize.ParseDate(first(rec, "period to", "period_to")),

		Amount: amount,
		Gst:    normalize.SafeFloat(first(rec, "gst"), 0),

		ReceiptType: first(rec, "receipt type", "reciept type", "receipt_type"),
		ReceiptNo:   receiptNo,
		MrDate:      normalize.ParseDate(first(rec, "mr date", "mr_date")),

		UACase:  normalize.ParseBool(rec["u/a case"]),
		Remarks: first(rec, "remarks"),
	}
	e.DedupKey = e.ComputeDedupKey()
	return e, nil
}
